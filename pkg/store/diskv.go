package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
)

// ErrNotFound is returned when no entry carries the requested id.
var ErrNotFound = errors.New("store: entry not found")

// Persistence is the persistence contract for mood log entries. All returns
// entries in creation order.
type Persistence interface {
	All(ctx context.Context) []*mood.Entry
	Get(ctx context.Context, id string) (*mood.Entry, error)
	Create(e *mood.Entry) error
	Update(e *mood.Entry) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) int
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := filepath.Join(cfg.BasePath(), "logs")
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*mood.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &mood.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	if e.ID == "" {
		e.ID = keyToPathTransform(key).FileName
	}
	return e, nil
}

func (p *persistence) All(ctx context.Context) []*mood.Entry {
	all := make([]*mood.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortEntries(all)
	return all
}

func (p *persistence) Get(ctx context.Context, id string) (*mood.Entry, error) {
	key, err := p.keyFor(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.read(key)
}

func (p *persistence) Count(ctx context.Context) int {
	count := 0
	for range p.d.Keys(ctx.Done()) {
		count++
	}
	return count
}

func (p *persistence) Create(e *mood.Entry) error {
	return p.write(e)
}

func (p *persistence) Update(e *mood.Entry) error {
	if e == nil || e.ID == "" {
		return errors.New("store: entry id required for update")
	}
	if _, err := p.keyFor(context.Background(), e.ID); err != nil {
		return err
	}
	return p.write(e)
}

func (p *persistence) write(e *mood.Entry) error {
	if e == nil {
		return errors.New("store: nil entry")
	}
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(toKey(e), data)
}

func (p *persistence) Delete(ctx context.Context, id string) error {
	key, err := p.keyFor(ctx, id)
	if err != nil {
		return err
	}
	return p.d.Erase(key)
}

// keyFor scans for the key whose file name matches id. The journal is a
// personal data set, small enough that a linear scan stays cheap.
func (p *persistence) keyFor(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrNotFound
	}
	for key := range p.d.Keys(ctx.Done()) {
		if keyToPathTransform(key).FileName == id {
			return key, nil
		}
	}
	return "", ErrNotFound
}

func sortEntries(entries []*mood.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		lt := entries[i].Created()
		rt := entries[j].Created()
		switch {
		case lt.IsZero() && rt.IsZero():
			return entries[i].ID < entries[j].ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return entries[i].ID < entries[j].ID
			}
			return lt.Before(rt)
		}
	})
}

const (
	layoutBucket  = "2006-01"
	bucketUndated = "undated"
)

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}

// toKey makes `bucket/id` where bucket is the creation month.
func toKey(e *mood.Entry) string {
	bucket := bucketUndated
	if at := e.Created(); !at.IsZero() {
		bucket = at.UTC().Format(layoutBucket)
	}
	if e.ID == "" {
		e.ID = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return bucket + "/" + e.ID
}

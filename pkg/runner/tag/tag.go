// Package tag provides the runners that manage the tag palette.
package tag

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/printers"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/settings"
)

// List prints every configured tag.
type List struct {
	Settings *settings.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not list tags, no settings")
	}
	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Tags(n.Settings.Tags())
	return nil
}

// Add creates a tag with a fresh id.
type Add struct {
	Title     string
	Color     string
	Settings  *settings.Store
	Telemetry composer.Telemetry
}

func (n *Add) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not add tag, no settings")
	}
	color := n.Color
	if color == "" {
		color = settings.ColorNames[0]
	}
	if !validColor(color) {
		return fmt.Errorf("unknown color %q", color)
	}

	tag := mood.Tag{
		ID:    uuid.NewString(),
		Title: n.Title,
		Color: color,
	}
	if err := n.Settings.AddTag(tag); err != nil {
		return err
	}
	if n.Telemetry != nil {
		n.Telemetry.Track("tag_create", map[string]any{
			"titleLength":   len([]rune(tag.Title)),
			"containsEmoji": containsEmoji(tag.Title),
			"color":         tag.Color,
		})
	}
	fmt.Println("added", tag.Title)
	return nil
}

// Remove deletes a tag by id. Existing entries keep their references.
type Remove struct {
	ID       string
	Settings *settings.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Settings == nil {
		return errors.New("can not remove tag, no settings")
	}
	if n.ID == "" {
		return errors.New("can not remove tag, no id")
	}
	return n.Settings.RemoveTag(n.ID)
}

func validColor(name string) bool {
	for _, c := range settings.ColorNames {
		if c == name {
			return true
		}
	}
	return false
}

func containsEmoji(s string) bool {
	for _, r := range s {
		if r >= 0x1F300 && r <= 0x1FAFF {
			return true
		}
		if r >= 0x2600 && r <= 0x27BF {
			return true
		}
	}
	return false
}

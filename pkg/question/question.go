// Package question supplies the optional feedback prompt shown at the end
// of the composition wizard. A provider resolves at most one question per
// session; absence of a question simply omits the feedback step.
package question

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Question is a single feedback prompt.
type Question struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Provider resolves the question to ask, or nil when there is none.
type Provider interface {
	Question(ctx context.Context) (*Question, error)
}

// Static cycles through a fixed question list by day, so the prompt varies
// without any remote dependency.
type Static struct {
	Questions []Question
	now       func() time.Time
}

// NewStatic returns a Static provider with the built-in question set.
func NewStatic() *Static {
	return &Static{
		Questions: []Question{
			{ID: "missing_feature", Text: "What is one thing you wish pixy could do?"},
			{ID: "logging_habit", Text: "What usually reminds you to log your mood?"},
			{ID: "favorite_part", Text: "What do you like most about pixy so far?"},
		},
		now: time.Now,
	}
}

func (s *Static) Question(ctx context.Context) (*Question, error) {
	if len(s.Questions) == 0 {
		return nil, nil
	}
	now := s.now
	if now == nil {
		now = time.Now
	}
	q := s.Questions[now().YearDay()%len(s.Questions)]
	return &q, nil
}

// HTTP fetches the current question from a JSON endpoint. A non-200
// response or an empty body resolves to no question rather than an error
// surfaced to the wizard.
type HTTP struct {
	URL    string
	Client *http.Client
}

// NewHTTP returns a provider for the given endpoint.
func NewHTTP(url string) *HTTP {
	return &HTTP{
		URL:    url,
		Client: &http.Client{Timeout: 5 * time.Second},
	}
}

func (h *HTTP) Question(ctx context.Context) (*Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("question: build request: %w", err)
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("question: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("question: unexpected status %s", resp.Status)
	}

	var q Question
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return nil, fmt.Errorf("question: decode response: %w", err)
	}
	if q.Text == "" {
		return nil, nil
	}
	return &q, nil
}

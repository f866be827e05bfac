// Package composertui renders the composition wizard with Bubble Tea. The
// model owns no wizard logic: every decision flows through the
// composer.Session, and the model mirrors its position via hooks.
package composertui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textarea"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/mood"
	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/tui/theme"
)

// Config assembles the wizard surface and its session.
type Config struct {
	Logs      composer.LogStore
	Settings  composer.SettingsStore
	Telemetry composer.Telemetry
	Question  *composer.Question

	ExistingID  string
	StartStep   composer.Step
	Date        string
	ShowDisable bool
}

type pendingPrompt struct {
	kind composer.PromptKind
	then func(confirmed bool)
}

// Model is the Bubble Tea model for one wizard session.
type Model struct {
	session *composer.Session
	tags    []mood.Tag
	theme   theme.Theme

	width  int
	height int
	index  int

	ratingCursor int
	tagCursor    int
	message      textarea.Model
	feedback     textinput.Model

	prompt  *pendingPrompt
	failure string
	done    bool
}

// New builds the model and opens its session.
func New(ctx context.Context, cfg Config) (*Model, error) {
	msgInput := textarea.New()
	msgInput.Placeholder = "Anything on your mind?"

	fbInput := textinput.New()
	fbInput.Placeholder = "Type your answer…"
	fbInput.Prompt = ""

	m := &Model{
		theme:    theme.Default(),
		message:  msgInput,
		feedback: fbInput,
	}
	if cfg.Settings != nil {
		m.tags = cfg.Settings.Tags()
	}

	sess, err := composer.Open(ctx, composer.Config{
		Logs:        cfg.Logs,
		Settings:    cfg.Settings,
		Prompter:    m,
		Telemetry:   cfg.Telemetry,
		Question:    cfg.Question,
		ExistingID:  cfg.ExistingID,
		StartStep:   cfg.StartStep,
		Date:        cfg.Date,
		ShowDisable: cfg.ShowDisable,
		Hooks: composer.Hooks{
			ScrollTo:     func(i int) { m.index = i },
			FocusMessage: func() { m.message.Focus() },
			Dismiss:      func() { m.done = true },
			Failed:       func(err error) { m.failure = err.Error() },
		},
	})
	if err != nil {
		return nil, err
	}
	m.session = sess
	m.index = sess.Index()
	m.message.SetValue(sess.Draft().Entry().Message)
	if r := sess.Draft().Rating(); r.Valid() {
		m.ratingCursor = r.Index()
	} else {
		m.ratingCursor = mood.RatingNeutral.Index()
	}
	if sess.Current() == composer.StepMessage {
		m.message.Focus()
	}
	return m, nil
}

// Run drives a full wizard session in the terminal.
func Run(ctx context.Context, cfg Config) error {
	m, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// Ask implements composer.Prompter as a modal overlay.
func (m *Model) Ask(kind composer.PromptKind, then func(confirmed bool)) {
	m.prompt = &pendingPrompt{kind: kind, then: then}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.message.SetWidth(min(60, max(20, v.Width-8)))
		m.message.SetHeight(5)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(v)
	}
	return m, nil
}

func (m *Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	pressed := key.String()

	if m.prompt != nil {
		return m.handlePromptKey(pressed)
	}

	if pressed == "ctrl+c" {
		return m, tea.Quit
	}
	if pressed == "esc" {
		m.session.Cancel()
		return m.finishOr(nil)
	}

	step := m.session.Current()

	// Typed input steps swallow most keys.
	if step == composer.StepMessage && m.message.Focused() {
		switch pressed {
		case "tab":
			m.message.Blur()
			m.session.Next()
			return m.finishOr(nil)
		case "shift+tab":
			m.message.Blur()
			m.session.Back()
			return m, nil
		default:
			var cmd tea.Cmd
			m.message, cmd = m.message.Update(key)
			m.session.SetMessage(m.message.Value())
			return m.finishOr(cmd)
		}
	}
	if step == composer.StepFeedback {
		switch pressed {
		case "enter":
			m.session.SendFeedback(m.feedback.Value())
			return m.finishOr(nil)
		case "ctrl+x":
			if m.session.ShowDisable() {
				m.session.DisableStep(composer.StepFeedback)
				return m.finishOr(nil)
			}
		default:
			var cmd tea.Cmd
			m.feedback, cmd = m.feedback.Update(key)
			return m, cmd
		}
		return m, nil
	}

	switch pressed {
	case "right", "l", "enter":
		m.session.Next()
		return m.finishOr(nil)
	case "left", "h":
		m.session.Back()
		return m, nil
	case "d":
		if m.session.Editing() {
			m.session.Remove()
			return m.finishOr(nil)
		}
	case "ctrl+x":
		if m.session.ShowDisable() && (step == composer.StepTags || step == composer.StepMessage) {
			m.session.DisableStep(step)
			return m.finishOr(nil)
		}
	}

	switch step {
	case composer.StepRating:
		return m.handleRatingKey(pressed)
	case composer.StepTags:
		return m.handleTagsKey(pressed)
	case composer.StepReminder:
		switch pressed {
		case "y":
			m.session.EnableReminder()
			return m.finishOr(nil)
		case "n":
			m.session.Next()
			return m.finishOr(nil)
		}
	}

	return m, nil
}

func (m *Model) handlePromptKey(pressed string) (tea.Model, tea.Cmd) {
	p := m.prompt
	switch pressed {
	case "y", "enter":
		m.prompt = nil
		p.then(true)
		return m.finishOr(nil)
	case "n", "esc":
		m.prompt = nil
		p.then(false)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleRatingKey(pressed string) (tea.Model, tea.Cmd) {
	scale := mood.Scale()
	switch pressed {
	case "up", "k":
		if m.ratingCursor < len(scale)-1 {
			m.ratingCursor++
		}
	case "down", "j":
		if m.ratingCursor > 0 {
			m.ratingCursor--
		}
	case "space":
		m.session.SetRating(scale[m.ratingCursor])
		return m.finishOr(nil)
	default:
		// Number keys pick a face directly, worst to best.
		if len(pressed) == 1 && pressed[0] >= '1' && pressed[0] <= '7' {
			m.ratingCursor = int(pressed[0] - '1')
			m.session.SetRating(scale[m.ratingCursor])
			return m.finishOr(nil)
		}
	}
	return m, nil
}

func (m *Model) handleTagsKey(pressed string) (tea.Model, tea.Cmd) {
	switch pressed {
	case "up", "k":
		if m.tagCursor > 0 {
			m.tagCursor--
		}
	case "down", "j":
		if m.tagCursor < len(m.tags)-1 {
			m.tagCursor++
		}
	case "space":
		if m.tagCursor < len(m.tags) {
			m.toggleTag(m.tags[m.tagCursor])
		}
	}
	return m, nil
}

func (m *Model) toggleTag(tag mood.Tag) {
	refs := m.session.Draft().Entry().Tags
	kept := make([]mood.TagReference, 0, len(refs)+1)
	removed := false
	for _, ref := range refs {
		if ref.ID == tag.ID {
			removed = true
			continue
		}
		kept = append(kept, ref)
	}
	if !removed {
		kept = append(kept, mood.TagReference{ID: tag.ID, Title: tag.Title})
	}
	m.session.SetTags(kept)
}

// finishOr quits once the session dismissed itself.
func (m *Model) finishOr(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.done {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.titleLine()))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render(m.stepper()))
	b.WriteString("\n\n")
	b.WriteString(m.stepBody())
	b.WriteString("\n\n")
	if m.failure != "" {
		b.WriteString(m.theme.Error.Render("could not save: " + m.failure))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Help.Render(m.helpLine()))

	content := b.String()
	if m.prompt != nil {
		return m.promptOverlay(width)
	}
	return content
}

func (m *Model) titleLine() string {
	if m.session.Editing() {
		return "Edit entry · " + m.session.Draft().Entry().Title()
	}
	return "New entry · " + m.session.Draft().Entry().Title()
}

func (m *Model) stepper() string {
	steps := m.session.Steps()
	if len(steps) == 1 {
		return ""
	}
	dots := make([]string, len(steps))
	for i := range steps {
		if i == m.index {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}
	return strings.Join(dots, " ")
}

func (m *Model) stepBody() string {
	switch m.session.Current() {
	case composer.StepRating:
		return m.ratingBody()
	case composer.StepTags:
		return m.tagsBody()
	case composer.StepMessage:
		return m.message.View()
	case composer.StepReminder:
		return m.theme.Body.Render(
			"That was your first entry. 🎉\n\nWant a daily reminder to log your mood?")
	case composer.StepFeedback:
		q := m.session.Question()
		text := "Anything you want to tell us?"
		if q != nil {
			text = q.Text
		}
		return m.theme.Body.Render(text) + "\n\n" + m.feedback.View()
	}
	return ""
}

func (m *Model) ratingBody() string {
	scale := mood.Scale()
	chosen := m.session.Draft().Rating()
	lines := make([]string, 0, len(scale))
	// Best mood on top, like the faces column in the app.
	for i := len(scale) - 1; i >= 0; i-- {
		r := scale[i]
		marker := "  "
		if i == m.ratingCursor {
			marker = "→ "
		}
		line := fmt.Sprintf("%s%s  %s", marker, r, r.Meaning())
		if r == chosen {
			line = m.theme.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) tagsBody() string {
	if len(m.tags) == 0 {
		return m.theme.Faint.Render("No tags yet. Create some with `pixy tags add`.")
	}
	active := m.session.Draft().Entry().TagIDs()
	lines := make([]string, 0, len(m.tags))
	for i, tag := range m.tags {
		marker := "  "
		if i == m.tagCursor {
			marker = "→ "
		}
		box := "[ ]"
		if _, ok := active[tag.ID]; ok {
			box = "[x]"
		}
		line := fmt.Sprintf("%s%s %s", marker, box, tag.Title)
		if _, ok := active[tag.ID]; ok {
			line = m.theme.Selected.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) helpLine() string {
	parts := []string{}
	switch m.session.Current() {
	case composer.StepRating:
		parts = append(parts, "1-7 pick mood", "↑/↓ move", "space select")
	case composer.StepTags:
		parts = append(parts, "↑/↓ move", "space toggle")
	case composer.StepMessage:
		parts = append(parts, "type your note", "tab next", "shift+tab back")
	case composer.StepReminder:
		parts = append(parts, "y enable reminder", "n skip")
	case composer.StepFeedback:
		parts = append(parts, "type answer", "enter send")
	}
	if m.session.Current() != composer.StepMessage {
		if m.session.CanGoBack() {
			parts = append(parts, "←/→ steps")
		} else {
			parts = append(parts, "→ next")
		}
	}
	if m.session.Editing() && m.session.Current() != composer.StepMessage {
		parts = append(parts, "d delete")
	}
	parts = append(parts, "esc close")
	return strings.Join(parts, " · ")
}

var promptTitles = map[composer.PromptKind]string{
	composer.PromptCancel:          "Discard changes?",
	composer.PromptDisableStep:     "Hide this step?",
	composer.PromptDisableFeedback: "Stop asking for feedback?",
	composer.PromptRemove:          "Delete this entry?",
}

var promptBodies = map[composer.PromptKind]string{
	composer.PromptCancel:          "Your edits will be lost.",
	composer.PromptDisableStep:     "You can re-enable it anytime in settings.",
	composer.PromptDisableFeedback: "We read every answer, but this is up to you.",
	composer.PromptRemove:          "This cannot be undone.",
}

func (m *Model) promptOverlay(width int) string {
	height := m.height
	if height <= 0 {
		height = 24
	}
	title := promptTitles[m.prompt.kind]
	body := promptBodies[m.prompt.kind]
	modal := m.theme.Modal.Frame.Render(
		m.theme.Modal.Title.Render(title) + "\n\n" +
			m.theme.Modal.Body.Render(body) + "\n\n" +
			m.theme.Help.Render("y confirm · n keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, modal)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

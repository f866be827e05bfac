// Package prompt implements the wizard's confirmation contract for plain
// terminal commands (no TUI): a y/N question on stdin.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jtsilverio/pixy-mood-tracker-app/pkg/composer"
)

var wording = map[composer.PromptKind]string{
	composer.PromptCancel:          "Discard your changes?",
	composer.PromptDisableStep:     "Hide this step for future entries? You can re-enable it anytime.",
	composer.PromptDisableFeedback: "Stop asking for feedback? We read every answer.",
	composer.PromptRemove:          "Delete this entry? This cannot be undone.",
}

// Terminal asks confirmations on the controlling terminal.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// New returns a Terminal bound to stdin/stdout.
func New() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stdout}
}

// Ask implements composer.Prompter. Anything but an explicit yes declines.
func (t *Terminal) Ask(kind composer.PromptKind, then func(confirmed bool)) {
	text, ok := wording[kind]
	if !ok {
		text = "Are you sure?"
	}
	fmt.Fprintf(t.Out, "%s [y/N] ", text)

	line, err := bufio.NewReader(t.In).ReadString('\n')
	if err != nil {
		then(false)
		return
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	then(answer == "y" || answer == "yes")
}

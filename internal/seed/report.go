package seed

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zseed/internal/identity"
	"golang.org/x/term"
)

// Plan describes a run before it starts.
type Plan struct {
	Target     string
	Count      int
	StartIndex int
	FirstEmail string
}

// Reporter receives progress as a run proceeds.
type Reporter interface {
	Start(p Plan)
	Begin(id identity.Identity)
	Finish(o Outcome)
	Done(s Summary)
}

// Discard is a Reporter that drops everything.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Start(Plan)              {}
func (discard) Begin(identity.Identity) {}
func (discard) Finish(Outcome)          {}
func (discard) Done(Summary)            {}

var summaryStyle = lipgloss.NewStyle().Bold(true)

// Console writes human readable progress. Output is styled only when the
// writer is a terminal.
type Console struct {
	w      io.Writer
	styled bool
}

// NewConsole creates a console reporter writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, styled: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *Console) render(s lipgloss.Style, text string) string {
	if !c.styled {
		return text
	}
	return s.Render(text)
}

// Start prints the run banner.
func (c *Console) Start(p Plan) {
	fmt.Fprintln(c.w, "starting seed process")
	if p.Target != "" {
		fmt.Fprintf(c.w, "  target: %s\n", p.Target)
	}
	fmt.Fprintf(c.w, "  creating %d users from index %d %s\n",
		p.Count, p.StartIndex, c.render(zstyle.MutedText, "("+p.FirstEmail+")"))
}

// Begin prints the identity being processed, without a newline.
func (c *Console) Begin(id identity.Identity) {
	fmt.Fprintf(c.w, "processing %s... ", id.Email)
}

// Finish completes the identity's line and lists absorbed warnings.
func (c *Console) Finish(o Outcome) {
	if !o.OK() {
		fmt.Fprintln(c.w, c.render(zstyle.StatusErr, "failed: "+o.Err.Error()))
		return
	}

	status := "ok"
	if n := len(o.Warnings); n > 0 {
		status += fmt.Sprintf(" (%d %s)", n, plural(n, "warning", "warnings"))
	}
	fmt.Fprintln(c.w, c.render(zstyle.StatusOK, status))

	for _, w := range o.Warnings {
		fmt.Fprintf(c.w, "  %s %s\n", c.render(zstyle.StatusWarn, "warning:"), w)
	}
}

// Done prints the final summary line.
func (c *Console) Done(s Summary) {
	fmt.Fprintln(c.w)
	if s.Interrupted {
		fmt.Fprintln(c.w, c.render(zstyle.StatusWarn,
			fmt.Sprintf("interrupted after %d of %d users", s.Attempted, s.Requested)))
	}
	fmt.Fprintln(c.w, c.render(summaryStyle,
		fmt.Sprintf("seeding complete: successfully processed %s users", s)))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

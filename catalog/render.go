package catalog

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Section prints a "━━━ title ━━━" banner. Color is only emitted when w is a
// terminal; buffers and pipes get plain text.
func Section(w io.Writer, title string) {
	style := lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12"))
	fmt.Fprintf(w, "\n%s\n", style.Render("━━━ "+title+" ━━━"))
}

// Runner runs demos one after another under section banners.
type Runner struct {
	Out    io.Writer
	Logger *slog.Logger
}

// NewRunner returns a Runner writing to out. A nil logger discards logs.
func NewRunner(out io.Writer, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{Out: out, Logger: logger}
}

// Run executes each demo in order.
func (r *Runner) Run(demos ...Demo) {
	for _, d := range demos {
		r.Logger.Debug("running demo", "name", d.Name, "family", d.Family)
		Section(r.Out, d.Title)
		d.Run(r.Out)
		r.Logger.Debug("demo finished", "name", d.Name)
	}
}

// Table renders the demo listing.
func Table(w io.Writer, demos []Demo) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Family", "Summary"})
	for _, d := range demos {
		t.AppendRow(table.Row{d.Name, d.Family, d.Summary})
	}
	fmt.Fprintln(w, t.Render())
}

// Describe prints a demo's teaching notes: intent, pros, cons and the roles
// table. Headings follow the same styling rules as Section.
func Describe(w io.Writer, d Demo) {
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	Section(w, d.Title)
	fmt.Fprintf(w, "%s\n", d.Intent)

	fmt.Fprintf(w, "\n%s\n", heading.Render("Pros"))
	for _, p := range d.Pros {
		fmt.Fprintf(w, "  + %s\n", p)
	}

	fmt.Fprintf(w, "\n%s\n", heading.Render("Cons"))
	for _, c := range d.Cons {
		fmt.Fprintf(w, "  - %s\n", c)
	}

	fmt.Fprintf(w, "\n%s\n", heading.Render("Roles"))
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Role", "Played by"})
	for _, r := range d.Roles {
		t.AppendRow(table.Row{r.Name, r.Description})
	}
	fmt.Fprintln(w, t.Render())
}

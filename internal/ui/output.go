package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// SummaryRow is one labeled line of a summary card.
type SummaryRow struct {
	Label string
	Value string
}

// Output prints the post-generation messages.
type Output struct {
	theme  *Theme
	writer io.Writer
}

// NewOutput creates an Output writing to w.
func NewOutput(theme *Theme, w io.Writer) *Output {
	return &Output{theme: theme, writer: w}
}

// Banner prints a bold title followed by a muted subtitle line.
func (o *Output) Banner(title, subtitle string) {
	if o.theme.NoColor {
		_, _ = fmt.Fprintf(o.writer, "\n%s\n%s\n\n", title, subtitle)
		return
	}
	t := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(o.theme.Colors.Primary)).Render(title)
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(o.theme.Colors.Muted)).Render(subtitle)
	_, _ = fmt.Fprintf(o.writer, "\n%s\n%s\n\n", t, s)
}

// Summary prints a bordered card with a title and the given rows.
// Labels are padded to the widest one.
func (o *Output) Summary(title string, rows []SummaryRow) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r.Label))
	}

	var b strings.Builder
	if o.theme.NoColor {
		b.WriteString(title + "\n")
		for _, r := range rows {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, r.Label, r.Value)
		}
		_, _ = io.WriteString(o.writer, b.String())
		return
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(o.theme.Colors.Primary))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(o.theme.Colors.Muted)).Width(width + 2)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(o.theme.Colors.Secondary))

	lines := []string{titleStyle.Render(title), ""}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(r.Label), valueStyle.Render(r.Value)))
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(o.theme.Colors.Primary)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	_, _ = fmt.Fprintln(o.writer, card)
}

// Success prints a single success line.
func (o *Output) Success(msg string) {
	o.line("✓", o.theme.Colors.Success, msg)
}

// Warn prints a single warning line.
func (o *Output) Warn(msg string) {
	o.line("!", o.theme.Colors.Warning, msg)
}

// Error prints a single error line.
func (o *Output) Error(msg string) {
	o.line("✗", o.theme.Colors.Error, msg)
}

func (o *Output) line(icon, color, msg string) {
	if o.theme.NoColor {
		_, _ = fmt.Fprintf(o.writer, "%s %s\n", icon, msg)
		return
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	_, _ = fmt.Fprintln(o.writer, style.Render(icon+" "+msg))
}

// NextSteps prints the shell commands the user runs after generation.
// With colors enabled the list is rendered as markdown with glamour; a
// render failure falls back to plain lines.
func (o *Output) NextSteps(commands []string) {
	plain := nextStepsPlain(commands)
	if o.theme.NoColor {
		_, _ = io.WriteString(o.writer, plain)
		return
	}

	style := "dark"
	if o.theme.Mode == "light" {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		_, _ = io.WriteString(o.writer, plain)
		return
	}
	out, err := r.Render(nextStepsMarkdown(commands))
	if err != nil {
		_, _ = io.WriteString(o.writer, plain)
		return
	}
	_, _ = io.WriteString(o.writer, out)
}

func nextStepsMarkdown(commands []string) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n```sh\n")
	for _, c := range commands {
		b.WriteString(c + "\n")
	}
	b.WriteString("```\n")
	return b.String()
}

func nextStepsPlain(commands []string) string {
	var b strings.Builder
	b.WriteString("\nNext steps:\n")
	for _, c := range commands {
		b.WriteString("  " + c + "\n")
	}
	return b.String()
}

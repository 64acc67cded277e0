package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/calvinalkan/tusk/internal/task"
)

var (
	colorHigh   = lipgloss.Color("160") // Red
	colorMedium = lipgloss.Color("214") // Orange/Yellow
	colorLow    = lipgloss.Color("241") // Gray
	colorDone   = lipgloss.Color("42")  // Green
)

type styles struct {
	header   lipgloss.Style
	done     lipgloss.Style
	doneMark lipgloss.Style
	priority map[task.Priority]lipgloss.Style
}

// newStyles binds styles to w. In auto mode color is used only when w is a
// terminal.
func newStyles(w io.Writer, mode string) styles {
	r := lipgloss.NewRenderer(w)

	switch mode {
	case task.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case task.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		header:   r.NewStyle().Bold(true),
		done:     r.NewStyle().Faint(true).Strikethrough(true),
		doneMark: r.NewStyle().Foreground(colorDone).Bold(true),
		priority: map[task.Priority]lipgloss.Style{
			task.PriorityHigh:   r.NewStyle().Foreground(colorHigh).Bold(true),
			task.PriorityMedium: r.NewStyle().Foreground(colorMedium),
			task.PriorityLow:    r.NewStyle().Foreground(colorLow),
		},
	}
}

// renderTasks prints the account's tasks, one numbered line each:
//
//	Tasks for account 'acme':
//	1. [ ] buy milk (Low)
//	2. [X] urgent fix (High)
func renderTasks(o *IO, st styles, name string, acc *task.Account) {
	if len(acc.Tasks) == 0 {
		o.Printf("No tasks available for account '%s'!\n", name)

		return
	}

	o.Println(st.header.Render(fmt.Sprintf("Tasks for account '%s':", name)))

	for i, t := range acc.Tasks {
		mark := " "
		desc := t.Description

		if t.Completed {
			mark = st.doneMark.Render("X")
			desc = st.done.Render(desc)
		}

		prio := st.priority[t.Priority].Render(t.Priority.String())

		o.Printf("%d. [%s] %s (%s)\n", i+1, mark, desc, prio)
	}
}

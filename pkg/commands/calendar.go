package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/dirsh/pkg/types"
)

// calendarCommand prints the current month as a grid. The clock is a
// field so tests can render a fixed month.
type calendarCommand struct {
	base
	now func() time.Time
}

func (c *calendarCommand) Execute(cursor string) types.Outcome {
	return types.TextOutcome(renderMonth(c.now()))
}

func (c *calendarCommand) Usage() string {
	return `Press "calendar" to show current month`
}

func renderMonth(t time.Time) string {
	loc := t.Location()
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, loc)

	title := fmt.Sprintf("%s %d", t.Month(), t.Year())
	pad := (20 - len(title)) / 2
	if pad < 0 {
		pad = 0
	}

	lines := []string{
		strings.Repeat(" ", pad) + title,
		"Su Mo Tu We Th Fr Sa",
	}

	cells := make([]string, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, "  ")
	}
	for day := 1; day <= last.Day(); day++ {
		cells = append(cells, fmt.Sprintf("%2d", day))
		if len(cells) == 7 {
			lines = append(lines, strings.Join(cells, " "))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/clue-solve/nonogram/internal/board"
)

// progressRedrawEvery throttles the in-place progress bar redraw: a wide
// line can have millions of candidates, and repainting the terminal for
// every single one would dominate wall time.
const progressRedrawEvery = 1991

const progressBarWidth = 40

// Console is the full-screen, ANSI backend: it takes over the terminal's
// alternate screen buffer while the solver is actively narrowing a line,
// highlighting that line in yellow, and returns the terminal to normal
// once the solver goes idle, solves, or fails. It falls back to a spinner
// for the brief Loading/Idle phases before the first line is touched.
type Console struct {
	interval time.Duration

	spin        *spinner.Spinner
	inAltScreen bool
	highlight   *color.Color

	ticks int
}

// NewConsole returns a Console backend. interval, if positive, is slept
// after each line redraw, slowing the animation down for a human watching
// a puzzle that would otherwise solve too fast to see.
func NewConsole(interval time.Duration) *Console {
	return &Console{
		interval:  interval,
		highlight: color.New(color.FgYellow),
	}
}

func (c *Console) ChangeState(state State) {
	if state.Kind == Solving {
		c.enterAltScreen()
	} else {
		c.leaveAltScreen()
	}

	switch state.Kind {
	case Loading:
		c.startSpinner(state.Message)
	case Idle:
		c.stopSpinner()
		fmt.Println("ready to solve")
	case Solving:
		c.drawSolving(state)
	case Solved:
		fmt.Println("solved!")
		fmt.Println(state.Grid.String())
	case Failed:
		color.New(color.FgRed).Printf("failed: %s\n", state.Message)
	}
}

func (c *Console) startSpinner(msg string) {
	if c.spin == nil {
		c.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		_ = c.spin.Color("cyan", "bold")
		c.spin.Start()
	}
	c.spin.Suffix = " " + msg
}

func (c *Console) stopSpinner() {
	if c.spin != nil {
		c.spin.Stop()
	}
}

func (c *Console) enterAltScreen() {
	if c.inAltScreen {
		return
	}
	c.stopSpinner()
	c.inAltScreen = true
	fmt.Print("\x1b[?1049h\x1b[2J\x1b[?25l")
}

func (c *Console) leaveAltScreen() {
	if !c.inAltScreen {
		return
	}
	c.inAltScreen = false
	fmt.Print("\x1b[2J\x1b[?1049l\x1b[?25h")
}

func (c *Console) drawSolving(state State) {
	fmt.Print("\x1b[H")

	lines := strings.Split(state.Grid.String(), "\n")
	for row, line := range lines {
		fmt.Print("\x1b[K")
		if state.Line.Axis == board.Row && row == state.Line.Index {
			c.highlight.Print(line)
			c.highlight.Print(" ←")
		} else if state.Line.Axis == board.Column {
			c.printColumnHighlighted(line, state.Line.Index)
		} else {
			fmt.Print(line, "  ")
		}
		fmt.Println()
	}

	fmt.Print("\x1b[K")
	if state.Line.Axis == board.Column {
		for i := 0; i < state.Grid.Cols(); i++ {
			if i == state.Line.Index {
				c.highlight.Print("^ ")
			} else {
				fmt.Print("  ")
			}
		}
	}
	fmt.Println()
	fmt.Printf("%d lines still waiting\n", state.Remaining)

	if c.interval > 0 {
		time.Sleep(c.interval)
	}
}

func (c *Console) printColumnHighlighted(line string, col int) {
	for i, ch := range line {
		if i == col {
			c.highlight.Print(string(ch))
		} else {
			fmt.Print(string(ch))
		}
	}
}

func (c *Console) UpdateProgress(done, total int) {
	if !c.inAltScreen {
		return
	}
	if done%progressRedrawEvery != 0 && done != total {
		return
	}

	filled := int((float64(done) / float64(total)) * progressBarWidth)
	fmt.Print("\x1b[K")
	fmt.Printf("\r[%s%s] %d/%d",
		strings.Repeat("#", filled),
		strings.Repeat(" ", progressBarWidth-filled),
		done, total)
}

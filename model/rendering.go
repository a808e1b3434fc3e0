package model

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering of a finite viewport
// centred on the origin of the unbounded plane. Only the first two
// coordinate components are displayed.
type TerminalRenderer struct {
	Width  int
	Height int
}

// Display renders the viewport to the terminal
func (r *TerminalRenderer) Display(l *Life) {
	var (
		b    strings.Builder
		minX = -int64(r.Width / 2)
		minY = -int64(r.Height / 2)
	)
	for y := range r.Height {
		for x := range r.Width {
			if l.GetCell(C(minX+int64(x), minY+int64(y))) {
				b.WriteString(gridPosBlock)
			} else {
				b.WriteString(gridPosEmpty)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}

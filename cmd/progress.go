package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/kebairia/addonsbackup/internal/logger"
)

const barWidth = 30

// progress renders status updates. On a terminal the current line is
// rewritten with a bar; anywhere else every update gets its own line.
type progress struct {
	out   io.Writer
	log   logger.Logger
	tty   bool
	width int
}

func newProgress(out io.Writer, log logger.Logger) *progress {
	p := &progress{out: out, log: log}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.tty = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			p.width = w
		}
	}
	return p
}

func statusLine(percent int, message string) string {
	return fmt.Sprintf("%d%% Completed - %s", percent, message)
}

func renderBar(percent, width int) string {
	percent = max(0, min(percent, 100))
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat(" ", width-filled) + "]"
}

func (p *progress) update(percent int, message string) {
	p.log.Debug("progress", "percent", percent, "message", message)
	line := statusLine(percent, message)
	if !p.tty {
		fmt.Fprintln(p.out, line)
		return
	}
	line = renderBar(percent, barWidth) + " " + line
	if p.width > 1 && len(line) >= p.width {
		line = line[:p.width-1]
	}
	fmt.Fprintf(p.out, "\r\033[K%s", line)
}

func (p *progress) finish(err error) {
	if p.tty {
		fmt.Fprintln(p.out)
	}
	if err != nil {
		fmt.Fprintln(p.out, "Error Occurred :(")
		fmt.Fprintf(p.out, "FATAL ERROR: %v\n", err)
		return
	}
	fmt.Fprintln(p.out, "Finished!")
}

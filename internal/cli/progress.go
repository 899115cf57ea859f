package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// progress reports one step of a command on a side channel, normally the
// command's stderr. A nil *progress is valid and prints nothing.
type progress struct {
	out     io.Writer
	started time.Time
}

func startProgress(out io.Writer, label string) *progress {
	if !progressEnabled(out) {
		return nil
	}
	fmt.Fprintf(out, "%s... ", label)
	return &progress{out: out, started: time.Now()}
}

func (p *progress) Done() {
	if p == nil {
		return
	}
	fmt.Fprintf(p.out, "done (%s)\n", formatDuration(time.Since(p.started)))
}

func (p *progress) Fail(err error) {
	if p == nil {
		return
	}
	if err != nil {
		fmt.Fprintf(p.out, "failed: %v\n", err)
		return
	}
	fmt.Fprintln(p.out, "failed")
}

// progressEnabled reports whether step output belongs on out. Only a
// terminal gets it, so piped stderr stays clean.
func progressEnabled(out io.Writer) bool {
	if IsJSONOutput() || noProgress {
		return false
	}
	if _, ok := os.LookupEnv("MODETOGGLE_NO_PROGRESS"); ok {
		return false
	}
	if _, ok := os.LookupEnv("NO_PROGRESS"); ok {
		return false
	}
	file, ok := out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	if d < time.Second {
		return d.Round(10 * time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}

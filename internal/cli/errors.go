package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// PreflightError reports a condition that stops a command before it runs,
// with guidance for the user.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}

func printError(out io.Writer, err error) {
	var preflight *PreflightError
	if errors.As(err, &preflight) {
		lines := []string{"Error: " + preflight.Message}
		if preflight.Hint != "" {
			lines = append(lines, "Hint: "+preflight.Hint)
		}
		if preflight.NextStep != "" {
			lines = append(lines, "Next: "+preflight.NextStep)
		}
		fmt.Fprintln(out, strings.Join(lines, "\n"))
		return
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}

package errhandler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/numscribe/internal/compiler"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether err comes from the user aborting a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// HandleError prints err for the user and returns the process exit code.
func HandleError(err error) int {
	if err == nil {
		return 0
	}

	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	var mpe *compiler.MalformedPostingError
	if errors.As(err, &mpe) {
		pterm.Error.Println(Capitalize(err.Error()))
		pterm.Info.Println(MalformedPostingHint(mpe))
		return 1
	}

	lines := strings.Split(err.Error(), "\n")
	pterm.Error.Println(Capitalize(lines[0]))
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) != "" {
			pterm.Println("  - " + line)
		}
	}
	return 1
}

// MalformedPostingHint explains a rejected posting in terms of its reason.
func MalformedPostingHint(mpe *compiler.MalformedPostingError) string {
	if strings.Contains(mpe.Reason, "unknown") {
		return fmt.Sprintf("Posting %d uses a destination type or amount mode the compiler does not know; nothing was generated.", mpe.Index+1)
	}
	return fmt.Sprintf("Posting %d has destination data that does not match its destination type; nothing was generated.", mpe.Index+1)
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

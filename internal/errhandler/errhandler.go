package errhandler

import (
	"errors"
	"os"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/apperrors"
	"github.com/pterm/pterm"
)

// Exit codes
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitInvalid   = 2
	ExitNotFound  = 3
	ExitConflict  = 4
	ExitCancelled = ExitOK
)

const dependentTransactionsMsg = "This account has transactions associated with it. " +
	"Please delete or move these transactions before deleting the account."

// IsInterrupt reports whether the user aborted a prompt.
func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// Message maps err to the text shown to the user and the process exit code.
func Message(err error) (string, int) {
	switch {
	case IsInterrupt(err):
		return "Operation Cancelled", ExitCancelled
	case errors.Is(err, apperrors.ErrHasDependentTransactions):
		return dependentTransactionsMsg, ExitConflict
	case errors.Is(err, apperrors.ErrNotFound):
		return capitalize(err.Error()), ExitNotFound
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnknownCurrency):
		return capitalize(err.Error()), ExitInvalid
	default:
		return capitalize(err.Error()), ExitFailure
	}
}

// HandleError prints err and exits.
func HandleError(err error) {
	msg, code := Message(err)
	if code == ExitCancelled {
		pterm.Warning.Println(msg)
	} else {
		pterm.Error.Println(msg)
	}
	os.Exit(code)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

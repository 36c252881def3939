package ticket

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTicketMismatch is matched by every *MismatchError.
	ErrTicketMismatch = errors.New("branch and message tickets do not match")

	// ErrEmptyMessage is returned when no message text is left after parsing.
	ErrEmptyMessage = errors.New("commit message is empty")
)

// MismatchError reports the two conflicting tickets.
type MismatchError struct {
	Branch  string
	Message string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: branch has %s, message has %s", ErrTicketMismatch, e.Branch, e.Message)
}

// Is makes errors.Is(err, ErrTicketMismatch) succeed.
func (e *MismatchError) Is(target error) bool {
	return target == ErrTicketMismatch
}

// Compose builds the commit message for branch from the raw message text.
//
// Rules are applied in order, first match wins:
//  1. both carry tickets and they differ: MismatchError
//  2. branch ticket, message has text but no ticket: "<branch ticket> <Text>"
//  3. message has ticket and text: "<message ticket> <Text>"
//  4. message has no text: ErrEmptyMessage
//  5. no tickets anywhere: "<Text>"
func Compose(branch, message string) (string, error) {
	branchTicket, _ := Parse(branch)
	msgTicket, rest := Parse(message)

	// Whitespace-only text counts as no text at all.
	if rest != nil && strings.TrimSpace(*rest) == "" {
		rest = nil
	}

	switch {
	case branchTicket != nil && msgTicket != nil && *branchTicket != *msgTicket:
		return "", &MismatchError{Branch: *branchTicket, Message: *msgTicket}
	case branchTicket != nil && msgTicket == nil && rest != nil:
		return *branchTicket + " " + Capitalize(*rest), nil
	case msgTicket != nil && rest != nil:
		return *msgTicket + " " + Capitalize(*rest), nil
	case rest == nil:
		return "", ErrEmptyMessage
	default:
		return Capitalize(*rest), nil
	}
}

package wizard

import (
	"errors"
	"strings"
)

var (
	ErrEmptyReason  = errors.New("rejection reason is required")
	ErrEmptyMessage = errors.New("message is required")
)

// Note is operator-supplied text sent along with a status change.
type Note struct {
	value string
}

func NewRejectionReason(s string) (Note, error) {
	return newNote(s, ErrEmptyReason)
}

func NewUpdateMessage(s string) (Note, error) {
	return newNote(s, ErrEmptyMessage)
}

func NewComplaintMessage(s string) (Note, error) {
	return newNote(s, ErrEmptyMessage)
}

func newNote(s string, emptyErr error) (Note, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Note{}, emptyErr
	}
	return Note{value: v}, nil
}

func (n Note) String() string {
	return n.value
}

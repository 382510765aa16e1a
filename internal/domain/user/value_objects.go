package user

import (
	"errors"
	"strings"
)

var (
	ErrEmptyID     = errors.New("user id must not be empty")
	ErrInvalidType = errors.New("invalid user type")
)

type ID struct {
	value string
}

func NewID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, ErrEmptyID
	}
	return ID{value: s}, nil
}

func (id ID) Value() string {
	return id.value
}

func (id ID) String() string {
	return id.value
}

package user

import "strings"

type Type string

const (
	TypeVIP    Type = "VIP"
	TypeNormal Type = "NORMAL"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeVIP, TypeNormal:
		return true
	default:
		return false
	}
}

func (t Type) IsVIP() bool {
	return t == TypeVIP
}

func NewType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

package operator

import (
	"errors"
	"strings"
)

var ErrInvalidRole = errors.New("invalid operator role")

// Role is the company console role carried in operator tokens.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleApprover Role = "approver"
	RoleAdmin    Role = "admin"
)

func NewRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleViewer, RoleApprover, RoleAdmin:
		return r, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

var roleLevel = map[Role]int{
	RoleViewer:   1,
	RoleApprover: 2,
	RoleAdmin:    3,
}

func (r Role) AtLeast(min Role) bool {
	have, ok := roleLevel[r]
	want, minOK := roleLevel[min]
	return ok && minOK && have >= want
}

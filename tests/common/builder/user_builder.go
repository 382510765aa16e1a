//go:build unit || e2e

package builder

import (
	"vip-discount/internal/domain/user"
)

type UserBuilder struct {
	ID   string
	Type string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:   "user1",
		Type: "VIP",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	id, err := user.NewID(u.ID)
	if err != nil {
		return nil, err
	}

	userType, err := user.NewType(u.Type)
	if err != nil {
		return nil, err
	}

	return user.NewUser(id, userType), nil
}

// MustBuildDomain is for fixtures that are known to be valid.
func (u *UserBuilder) MustBuildDomain() *user.User {
	usr, err := u.BuildDomain()
	if err != nil {
		panic(err)
	}
	return usr
}

// Fluent builder methods
func (u *UserBuilder) WithID(id string) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithType(userType string) *UserBuilder {
	u.Type = userType
	return u
}

func (u *UserBuilder) AsVIP() *UserBuilder {
	u.Type = user.TypeVIP.String()
	return u
}

func (u *UserBuilder) AsNormal() *UserBuilder {
	u.Type = user.TypeNormal.String()
	return u
}

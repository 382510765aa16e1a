package user

// User is the buyer as seen by the pricing rules: an identifier and a membership tier.
// It carries no lifecycle beyond a single calculation.
type User struct {
	id       ID
	userType Type
}

func NewUser(id ID, userType Type) *User {
	return &User{
		id:       id,
		userType: userType,
	}
}

func (u *User) ID() ID     { return u.id }
func (u *User) Type() Type { return u.userType }
func (u *User) IsVIP() bool {
	return u != nil && u.userType.IsVIP()
}

package domain

// User represents a Petstore user entity. The username acts as the natural
// key when present; the password is held in plain text, a property of this
// reference system.
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Status    int32
}

// HasUsername reports whether the user can be stored at all. Users without
// a username are silently skipped by create operations.
func (u *User) HasUsername() bool {
	return u != nil && u.Username != ""
}

// Clone returns a copy so stored state never aliases caller memory.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

package domain

// User represents a registered account.
//
// Passwords are stored and compared in plain text. That is the compatibility
// contract of the persisted record layout, not an oversight; this catalog has
// no real authentication by design.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CredentialsMatch reports whether the given credentials exactly match this
// account. Comparison is case-sensitive on both fields.
func (u *User) CredentialsMatch(email, password string) bool {
	return u.Email == email && u.Password == password
}

package model

// UserID uniquely identifies a registered account
type UserID string

// Account is a registered user together with their stored credential
type Account struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"` // unique, compared case-sensitively
	Password string `json:"password"`
}

// Session is the public projection of an Account held while a user is signed in.
// It deliberately has no credential field.
type Session struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SessionFor builds the session projection of an account
func SessionFor(a *Account) *Session {
	return &Session{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
	}
}

// Valid reports whether a restored session record is usable
func (s *Session) Valid() bool {
	return s != nil && s.ID != ""
}

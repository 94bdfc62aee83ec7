package model

// IdentityChange is emitted whenever the signed-in identity changes.
// Either side may be nil (anonymous).
type IdentityChange struct {
	Previous *Session
	Current  *Session
}

// Authenticated reports whether the change leaves a user signed in
func (c IdentityChange) Authenticated() bool {
	return c.Current != nil
}

package domain

// Identity is the authenticated actor handed over by the identity provider.
// The zero value means "not authenticated".
type Identity struct {
	UserID string
	Email  string
}

func (i Identity) Authenticated() bool {
	return i.UserID != ""
}

package store

// Session is a fully isolated copy of a seed store. Interactive surfaces
// exposed to more than one user must give each user their own session; the
// design carries no cross-session sharing or locking contract.
type Session struct {
	*Store
}

// NewSession deep-copies every object in the seed store so the session can
// mutate schemas and records without touching the seed or other sessions.
func NewSession(seed *Store) *Session {
	session := &Session{Store: New()}
	if seed == nil {
		return session
	}
	for _, name := range seed.Names() {
		if object, err := seed.Object(name); err == nil {
			session.Add(object.Clone())
		}
	}
	return session
}

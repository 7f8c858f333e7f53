package domain

// Session is the in-memory record of whether, and as whom, the client
// is authenticated. It is owned by the application session store and
// mutated only through its Login, Logout and UpdateProfile operations.
type Session struct {
	Account    *Account
	Credential string
	// Initializing is true only during the one-time startup recovery
	// check and becomes false exactly once per process lifetime.
	Initializing bool
}

// Authenticated holds iff both the credential and the account are
// present.
func (s Session) Authenticated() bool {
	return s.Credential != "" && s.Account != nil
}

// SessionSnapshot is the durable subset of a session, persisted by a
// SessionRepository so a login survives process restarts. The bearer
// credential is kept apart in a CredentialStore.
type SessionSnapshot struct {
	Account         *Account
	RememberedRoute string
}

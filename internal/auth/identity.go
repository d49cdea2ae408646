package auth

// Identity is the verified caller identity for one request. It is
// resolved fresh against the provider on every privileged request and
// never cached beyond the request lifetime.
type Identity struct {
	ID    string // provider-authoritative user id
	Email string // email on record for the identity
}

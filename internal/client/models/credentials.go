// Package models contains the client-side domain types: credentials,
// profiles, service records, campus records, and settings.
package models

// Credentials is the combined session state persisted after a successful
// login. Passport is always present; CuAuth is set only when the secondary
// campus-system authentication succeeded and must never be required for
// primary-session use.
type Credentials struct {
	Username string `json:"username"`
	Passport string `json:"passport"`
	CuAuth   string `json:"cu_auth,omitempty"`
}

// HasCampusToken reports whether the secondary campus session is linked.
func (c Credentials) HasCampusToken() bool {
	return c.CuAuth != ""
}

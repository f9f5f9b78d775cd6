package models

// UserProfile holds backend-sourced user attributes. It is overwritten on
// every successful "me" fetch and survives logout so the login form can be
// prefilled on the next start.
type UserProfile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

package models

// User is the identity returned by the inventory service for an account
// together with the storages it owns. A freshly fetched User always replaces
// the previous one; fields are never merged.
type User struct {
	// Username is the unique account name. It is also the first path segment
	// of every storage and item endpoint.
	Username string `json:"username"`

	// DisplayName is the optional human-readable name. The server falls back
	// to the username when it was not provided at registration.
	DisplayName *string `json:"display_name"`

	// Storages is the user's storage list in server order.
	Storages []Storage `json:"storages"`
}

// Name returns DisplayName when set and Username otherwise.
func (u User) Name() string {
	if u.DisplayName != nil && *u.DisplayName != "" {
		return *u.DisplayName
	}
	return u.Username
}

// Credentials is the username/password pair used for registration and login.
// It is sent form-encoded as an OAuth2 password grant.
type Credentials struct {
	Username string
	Password string
}

// FormData returns the password grant form fields expected by the
// credentials endpoints.
func (c Credentials) FormData() map[string]string {
	return map[string]string{
		"grant_type":    "password",
		"username":      c.Username,
		"password":      c.Password,
		"scope":         "",
		"client_id":     "",
		"client_secret": "",
	}
}

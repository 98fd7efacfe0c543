package domain

import "fmt"

// User is the authenticated identity as the backend reports it.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Session pairs the identity with its bearer token. The pair is set and
// cleared as a whole; a session with only one half is invalid.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

func (s Session) LoggedIn() bool {
	return s.User != nil && s.Token != ""
}

func (s Session) Validate() error {
	if (s.User == nil) != (s.Token == "") {
		return fmt.Errorf("user and token must be set together")
	}
	return nil
}

// AuthenticationError carries the backend's rejection message for a login
// attempt. Message may be empty; Error falls back to a generic one.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "invalid credentials"
	}
	return e.Message
}

// Registration is the payload sent to the register endpoint.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"password"`
}

func (r Registration) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

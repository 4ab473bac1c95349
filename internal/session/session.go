// Package session holds the authenticated user's token and profile. The
// gateway reads the token on every authenticated call and clears the whole
// session when the server reports it expired.
package session

import "errors"

// ErrIncompleteSession is returned by Set when a session carries a token
// without a user, or a user without a token.
var ErrIncompleteSession = errors.New("session: token and user must be set together")

// User is the profile stored next to the token.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u User) IsAdmin() bool { return u.Role == "ADMIN" }

// DisplayName returns "First Last", falling back to the email.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	default:
		return u.Email
	}
}

// Initial returns the upper-cased first letter of the first name, or "U".
func (u User) Initial() string {
	if u.FirstName == "" {
		return "U"
	}
	r := []rune(u.FirstName)[0]
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return string(r)
}

// Session pairs a bearer token with the profile it was issued for.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Empty reports whether neither token nor user is set.
func (s Session) Empty() bool { return s.Token == "" && s.User == nil }

// Valid reports whether token and user are both present.
func (s Session) Valid() bool { return s.Token != "" && s.User != nil }

// Store is durable key-value persistence for the session.
type Store interface {
	// Get returns a copy of the current session and whether one is present.
	Get() (Session, bool)
	// Token returns the stored token, or "" when logged out.
	Token() string
	// Set replaces the session. Both token and user are required.
	Set(Session) error
	// Clear removes token and user together.
	Clear() error
}

func clone(s Session) Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arithahq/aritha/api/types/users"
	"github.com/arithahq/aritha/cmd/aritha/config/open"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hectane/go-acl"
	yaml "gopkg.in/yaml.v3"
)

var ErrNotLoggedIn = errors.New("not logged in")
var ErrSessionExpired = errors.New("session expired")

// Session is the client-side state created at login and destroyed at logout
// or when the backend answers 401.
//
// It is the only state the console persists besides profiles. Components read
// it through typed accessors; nothing else should peek at the session file.
type Session struct {
	// bearer token for the HR API.
	Token string `yaml:"token"`

	// the authenticated account, as the backend returned it at login.
	User users.Detail `yaml:"user"`

	// role duplicated out of User for quick access control checks.
	Role string `yaml:"role"`
}

// Active reports whether a session holds a token.
func (s *Session) Active() bool {
	return s != nil && s.Token != ""
}

// IsAdmin reports whether the session user may mutate records.
//
// This gates the console UI only. The backend is never assumed to mirror
// the restriction, and server-side errors are surfaced regardless.
func (s *Session) IsAdmin() bool {
	return s.Active() && strings.EqualFold(s.Role, users.RoleAdmin)
}

// Email of the logged-in account, or "" when logged out.
func (s *Session) Email() string {
	if !s.Active() {
		return ""
	}
	return s.User.Email
}

// Expired reports whether the bearer token carries an exp claim in the past.
//
// The token is NOT verified here: the console has no key and no business
// validating it. This is a convenience to tell the user to log in again
// before the backend answers 401.
func (s *Session) Expired(now time.Time) bool {
	if !s.Active() {
		return false
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(s.Token, claims); err != nil {
		// opaque token. let the backend decide.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

// Load reads the session file.
//
// # Returns
//
// - *Session: the stored session
//
// - error: ErrNotLoggedIn when no session file exists.
func Load(path string) (*Session, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w (no session at %s)", ErrNotLoggedIn, path)
		}
		return nil, err
	}
	s := new(Session)
	if err := yaml.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Save writes the session file, accessible only by the current user.
func (s *Session) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.FileMode(0700)); err != nil {
		return err
	}
	f, err := open.NewSafeFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := acl.Chmod(path, os.FileMode(0600)); err != nil {
		return err
	}

	buf, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	_, err = f.Write(buf)
	return err
}

// Clear destroys the session file. Clearing an absent session is not an error.
func Clear(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

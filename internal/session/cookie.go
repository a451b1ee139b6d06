package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

const (
	CookieName = "user"

	// Login writes a 24h cookie; profile updates rewrite it with a one-year
	// expiry. The mismatch is inherited behavior and is kept on purpose.
	LoginMaxAge = 24 * 60 * 60
)

// User is the client-held snapshot of the authenticated profile. It is a
// copy taken at login/registration time and can drift from the server record;
// the optional fields are filled in later by profile edits.
type User struct {
	ID             int64  `json:"id,omitempty"`
	Username       string `json:"username,omitempty"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone,omitempty"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

func encode(u User) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}

	return url.QueryEscape(string(b)), nil
}

func decode(raw string) (User, error) {
	s, err := url.QueryUnescape(raw)
	if err != nil {
		return User{}, err
	}

	var u User
	if err := json.Unmarshal([]byte(s), &u); err != nil {
		return User{}, err
	}

	return u, nil
}

// WriteLogin persists the snapshot with the 24-hour post-login expiry.
func WriteLogin(w http.ResponseWriter, u User) error {
	return write(w, u, &http.Cookie{MaxAge: LoginMaxAge})
}

// WriteExtended persists the snapshot with the one-year expiry used by
// profile updates.
func WriteExtended(w http.ResponseWriter, u User) error {
	return write(w, u, &http.Cookie{Expires: time.Now().AddDate(1, 0, 0)})
}

func write(w http.ResponseWriter, u User, base *http.Cookie) error {
	v, err := encode(u)
	if err != nil {
		return err
	}

	base.Name = CookieName
	base.Value = v
	base.Path = "/"
	http.SetCookie(w, base)

	return nil
}

// Clear expires the session cookie immediately. There is no server-side
// session to tear down.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:    CookieName,
		Value:   "",
		Path:    "/",
		MaxAge:  -1,
		Expires: time.Unix(0, 0),
	})
}

// Read parses the session cookie from a request. Absent or unparseable
// cookies read as logged-out.
func Read(r *http.Request) (User, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return User{}, false
	}

	u, err := decode(c.Value)
	if err != nil {
		return User{}, false
	}

	return u, true
}

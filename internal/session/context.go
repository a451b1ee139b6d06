package session

import (
	"net/http"
	"sync"
)

// Context holds the current session user for one request/tab lifetime. It is
// initialized once from the cookie; readers before initialization see a
// logged-out state rather than blocking.
type Context struct {
	mu   sync.Mutex
	user *User
}

func NewContext() *Context {
	return &Context{}
}

// FromRequest initializes a context from the session cookie, if present.
func FromRequest(r *http.Request) *Context {
	c := NewContext()

	if u, ok := Read(r); ok {
		c.user = &u
	}

	return c
}

func (c *Context) User() (User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return User{}, false
	}

	return *c.user, true
}

// SetUser replaces the session wholesale. Passing nil logs out the context
// without touching the cookie; use Logout to clear both.
func (c *Context) SetUser(u *User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.user = u
}

// Updates carries a partial profile edit; nil fields are left untouched.
type Updates struct {
	Username       *string
	Email          *string
	FirstName      *string
	LastName       *string
	Phone          *string
	Bio            *string
	ProfilePicture *string
}

// UpdateUser shallow-merges the updates into the current user and
// re-persists the cookie with the extended expiry. A logged-out context is a
// no-op, mirroring the guard on the original updater.
func (c *Context) UpdateUser(w http.ResponseWriter, updates Updates) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user == nil {
		return nil
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	apply(&c.user.Username, updates.Username)
	apply(&c.user.Email, updates.Email)
	apply(&c.user.FirstName, updates.FirstName)
	apply(&c.user.LastName, updates.LastName)
	apply(&c.user.Phone, updates.Phone)
	apply(&c.user.Bio, updates.Bio)
	apply(&c.user.ProfilePicture, updates.ProfilePicture)

	return WriteExtended(w, *c.user)
}

// Logout clears both the cookie and the in-memory user. No server endpoint
// is called; the server never knew about the session.
func (c *Context) Logout(w http.ResponseWriter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	Clear(w)
	c.user = nil
}

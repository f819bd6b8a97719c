// Package identity resolves the caller of a request to a registered user.
package identity

import (
	"context"
	"net/http"

	"github.com/dtroode/tasktracker-server/internal/model"
)

// DefaultHeader carries the caller's email. It is an identifier, not a credential.
const DefaultHeader = "X-User-Email"

// UserFinder looks users up by email.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
}

var _ model.IdentityResolver = (*Header)(nil)

// Header trusts the email presented in a request header.
type Header struct {
	name  string
	users UserFinder
}

// NewHeader creates a resolver reading the named header. An empty name
// falls back to DefaultHeader.
func NewHeader(name string, users UserFinder) *Header {
	if name == "" {
		name = DefaultHeader
	}
	return &Header{name: name, users: users}
}

// Name returns the header the resolver reads.
func (h *Header) Name() string {
	return h.name
}

// Resolve returns the user whose email is in the header.
func (h *Header) Resolve(r *http.Request) (model.User, error) {
	return h.users.FindByEmail(r.Context(), r.Header.Get(h.name))
}

package model

import "net/http"

// IdentityResolver maps an incoming request to the calling user.
type IdentityResolver interface {
	Resolve(r *http.Request) (User, error)
}

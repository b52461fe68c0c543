package session

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// Session carries the caller's upstream credentials. It is passed explicitly
// into every fetch so no package reads ambient auth state.
type Session struct {
	Token string
}

// FromRequest builds a Session from the request's bearer token. An absent
// Authorization header yields an empty token; the upstream API rejects it.
func FromRequest(r *http.Request) Session {
	return Session{Token: jwtauth.TokenFromHeader(r)}
}

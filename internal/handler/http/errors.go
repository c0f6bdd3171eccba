// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// sessionCookieName is the cookie carrying the opaque token key for callers
// that authenticate with a session cookie instead of the Authorization
// header. The cookie is set on login and cleared on logout.
const sessionCookieName = "notes_session"

// Sentinel errors used by the authentication middleware when extracting the
// caller's credential. Callers can match against them with [errors.Is].
var (
	// ErrNoCredentials is returned when the request carries neither an
	// "Authorization" header nor a session cookie.
	ErrNoCredentials = errors.New("no authentication credentials were provided")

	// ErrEmptyToken is returned when a credential carrier is present but the
	// token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in credentials")
)

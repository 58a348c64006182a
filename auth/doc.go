// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides password hashing and session token utilities.

# Passwords

Passwords are stored as bcrypt hashes:

	hash, err := auth.HashPassword(password)
	err := auth.CheckPassword(hash, password)

CheckPassword returns ErrInvalidCredentials on mismatch.

# Session Tokens

Session tokens are HS256 JWTs carrying the username:

	token, err := auth.SignToken(name, secret, ttl)
	name, err := auth.VerifyToken(token, secret)

VerifyToken rejects anything not signed with the configured secret,
expired tokens included, and returns ErrInvalidToken.

BearerToken strips the optional "Bearer " prefix from an Authorization
header value.

# ID Generation

NewID draws a positive random int64 for account and game IDs:

	id, err := auth.NewID()
*/
package auth

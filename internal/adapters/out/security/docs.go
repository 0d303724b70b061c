// Package security implements the credential ports of the driver core:
// bcrypt password hashing and HS256-signed session tokens.
package security

// Package model defines the data structures used throughout the application.
package model

// User represents a registered account.
//
// WHY int64 FOR THE ID?
// The id column is INTEGER PRIMARY KEY AUTOINCREMENT in SQLite, and
// database/sql reports LastInsertId as an int64. Using int64 end to end
// avoids conversions at the repository boundary.
//
// PasswordDigest holds the one-way hash of the password — never the
// plaintext. The `json:"-"` tag guarantees it cannot leak into a JSON
// response, no matter which handler serializes a User.
type User struct {
	ID             int64  `json:"id"       db:"id"`
	Username       string `json:"username" db:"username"`
	PasswordDigest string `json:"-"        db:"password_digest"`
}

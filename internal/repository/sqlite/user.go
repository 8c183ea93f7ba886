package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/z1f7/832301306-contacts-backend/internal/apperror"
	"github.com/z1f7/832301306-contacts-backend/internal/model"
	"github.com/z1f7/832301306-contacts-backend/internal/repository"
)

// compile-time check that *DB implements repository.UserRepository
var _ repository.UserRepository = (*DB)(nil)

// CreateUser inserts a new user row and fills in user.ID from the
// autoincrement key. The name is distinct from the contact repository's
// Create because one *DB value implements both interfaces.
//
// DUPLICATE USERNAMES:
// The UNIQUE constraint on username is the only guard against concurrent
// registrations of the same name — SQLite enforces it atomically. The
// driver reports the violation as a *sqlite.Error with code
// SQLITE_CONSTRAINT_UNIQUE, which we translate to the Conflict domain
// error so the handler can answer 400 instead of 500.
func (db *DB) CreateUser(ctx context.Context, user *model.User) error {
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO users (username, password_digest) VALUES (?, ?)`,
		user.Username,
		user.PasswordDigest,
	)
	if err != nil {
		var serr *sqlite.Error
		if errors.As(err, &serr) && serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return apperror.Conflict("Username already exists")
		}
		return fmt.Errorf("sqlite: inserting user %q: %w", user.Username, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new user id: %w", err)
	}
	user.ID = id

	return nil
}

// FindByCredentials returns the user matching both username and password
// digest.
//
// The match happens entirely in the WHERE clause — one query, no
// application-side comparison. sql.ErrNoRows covers both an unknown
// username and a wrong password; both collapse into the same
// InvalidCredentials error on purpose, so a caller probing the endpoint
// learns nothing about which usernames exist.
func (db *DB) FindByCredentials(ctx context.Context, username, passwordDigest string) (*model.User, error) {
	var u model.User

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, username, password_digest
		 FROM users
		 WHERE username = ? AND password_digest = ?`,
		username,
		passwordDigest,
	).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordDigest,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.InvalidCredentials()
		}
		return nil, fmt.Errorf("sqlite: looking up credentials for %q: %w", username, err)
	}

	return &u, nil
}

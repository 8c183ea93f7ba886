package sqlite

import (
	"context"
	"fmt"

	"github.com/z1f7/832301306-contacts-backend/internal/apperror"
	"github.com/z1f7/832301306-contacts-backend/internal/model"
	"github.com/z1f7/832301306-contacts-backend/internal/repository"
)

// compile-time check that *DB implements repository.ContactRepository
var _ repository.ContactRepository = (*DB)(nil)

// Create inserts a contact row and fills in contact.ID.
//
// There is no existence check on contact.OwnerID — with foreign-key
// enforcement off (see sqlite.go), an insert referencing a nonexistent
// user succeeds and simply leaves a dangling reference.
func (db *DB) Create(ctx context.Context, contact *model.Contact) error {
	result, err := db.conn.ExecContext(ctx,
		`INSERT INTO contacts (user_id, name, phone, email)
		 VALUES (?, ?, ?, ?)`,
		contact.OwnerID,
		contact.Name,
		contact.Phone,
		contact.Email,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting contact: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("sqlite: reading new contact id: %w", err)
	}
	contact.ID = id

	return nil
}

// ListByOwner returns all of one owner's contacts ordered by id —
// autoincrement ids make that insertion order.
func (db *DB) ListByOwner(ctx context.Context, ownerID int64) ([]model.Contact, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, name, phone, email
		 FROM contacts
		 WHERE user_id = ?
		 ORDER BY id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing contacts for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	// Start from an empty (non-nil) slice so an owner with no contacts
	// serializes as [] rather than null.
	contacts := make([]model.Contact, 0)

	for rows.Next() {
		c := model.Contact{OwnerID: ownerID}
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("sqlite: scanning contact row: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating contacts: %w", err)
	}

	return contacts, nil
}

// Update replaces name, phone and email of the contact with contact.ID.
//
// RowsAffected is how absence is detected: zero rows matched means the id
// doesn't exist, and that is the NotFound case. The id in the WHERE clause
// is the only scoping — ownership is not re-checked.
func (db *DB) Update(ctx context.Context, contact *model.Contact) error {
	result, err := db.conn.ExecContext(ctx,
		`UPDATE contacts
		 SET name = ?, phone = ?, email = ?
		 WHERE id = ?`,
		contact.Name,
		contact.Phone,
		contact.Email,
		contact.ID,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating contact %d: %w", contact.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("Contact not found")
	}

	return nil
}

// Delete removes a contact by id.
//
// Unlike Update there is deliberately no RowsAffected check: deleting an
// id that is already gone succeeds. Delete is idempotent.
func (db *DB) Delete(ctx context.Context, id int64) error {
	_, err := db.conn.ExecContext(ctx,
		`DELETE FROM contacts WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting contact %d: %w", id, err)
	}

	return nil
}

// CountByOwner returns the number of contacts the owner has.
func (db *DB) CountByOwner(ctx context.Context, ownerID int64) (int64, error) {
	var total int64
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contacts WHERE user_id = ?`,
		ownerID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sqlite: counting contacts for owner %d: %w", ownerID, err)
	}

	return total, nil
}

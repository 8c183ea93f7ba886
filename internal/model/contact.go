package model

// Contact is a phone-book entry belonging to one user.
//
// OwnerID references users.id. The link is declared in the schema but not
// validated before insert — a contact may point at a user id that was never
// created. Listings only expose id/name/phone/email, so OwnerID carries
// `json:"-"`.
//
// Email is optional and defaults to the empty string (not NULL) — simpler to
// scan and safe to display.
type Contact struct {
	ID      int64  `json:"id"    db:"id"`
	OwnerID int64  `json:"-"     db:"user_id"`
	Name    string `json:"name"  db:"name"`
	Phone   string `json:"phone" db:"phone"`
	Email   string `json:"email" db:"email"`
}

package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/z1f7/832301306-contacts-backend/internal/apperror"
	"github.com/z1f7/832301306-contacts-backend/internal/model"
	"github.com/z1f7/832301306-contacts-backend/internal/repository"
)

// ContactService handles the contact CRUD rules.
type ContactService struct {
	contacts repository.ContactRepository
	logger   *slog.Logger
}

// NewContactService creates a ContactService.
func NewContactService(contacts repository.ContactRepository, logger *slog.Logger) *ContactService {
	return &ContactService{
		contacts: contacts,
		logger:   logger,
	}
}

// Add creates a contact for the given owner.
//
// Required: ownerID, name, phone. Email is optional and stored as the empty
// string when absent. An ownerID of 0 counts as missing — ids start at 1,
// so 0 is the "field not sent" zero value. The owner is NOT checked against
// the users table; a contact referencing an unknown owner is accepted.
func (s *ContactService) Add(ctx context.Context, ownerID int64, name, phone, email string) (*model.Contact, error) {
	if ownerID == 0 {
		return nil, apperror.MissingField("user_id", "User ID, name and phone are required")
	}
	if name == "" {
		return nil, apperror.MissingField("name", "User ID, name and phone are required")
	}
	if phone == "" {
		return nil, apperror.MissingField("phone", "User ID, name and phone are required")
	}

	contact := &model.Contact{
		OwnerID: ownerID,
		Name:    name,
		Phone:   phone,
		Email:   email,
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		s.logger.Error("failed to add contact",
			slog.Int64("ownerID", ownerID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("adding contact: %w", err)
	}

	s.logger.Info("contact added",
		slog.Int64("id", contact.ID),
		slog.Int64("ownerID", ownerID),
	)

	return contact, nil
}

// List returns the owner's contacts in insertion order. An owner with no
// contacts (or one that doesn't exist) yields an empty slice.
func (s *ContactService) List(ctx context.Context, ownerID int64) ([]model.Contact, error) {
	contacts, err := s.contacts.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to list contacts",
			slog.Int64("ownerID", ownerID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	return contacts, nil
}

// Update replaces name, phone and email of the contact with the given id.
//
// Required: name and phone; email defaults to empty — a full replace of all
// three mutable fields, not a patch. Returns NotFound when no row matched
// the id. There is no ownership check: any caller holding a contact id can
// update it.
func (s *ContactService) Update(ctx context.Context, id int64, name, phone, email string) error {
	if name == "" {
		return apperror.MissingField("name", "Name and phone are required")
	}
	if phone == "" {
		return apperror.MissingField("phone", "Name and phone are required")
	}

	contact := &model.Contact{
		ID:    id,
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := s.contacts.Update(ctx, contact); err != nil {
		return fmt.Errorf("updating contact: %w", err)
	}

	s.logger.Info("contact updated", slog.Int64("id", id))
	return nil
}

// Delete removes a contact by id. Idempotent: deleting an id that never
// existed (or was already deleted) succeeds — no absence check is made,
// unlike Update.
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("contact deleted", slog.Int64("id", id))
	return nil
}

// Count returns how many contacts the owner has; zero is a valid answer,
// always equal to the length List would return for the same owner.
func (s *ContactService) Count(ctx context.Context, ownerID int64) (int64, error) {
	total, err := s.contacts.CountByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("failed to count contacts",
			slog.Int64("ownerID", ownerID),
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("counting contacts: %w", err)
	}

	return total, nil
}

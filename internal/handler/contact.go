package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/z1f7/832301306-contacts-backend/internal/service"
)

// ContactHandler exposes the contact CRUD endpoints.
type ContactHandler struct {
	contacts *service.ContactService
	logger   *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(contacts *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		logger:   logger,
	}
}

// addContactRequest is the body of POST /contacts. Email is optional and
// defaults to "" — JSON decoding leaves absent fields at their zero value.
type addContactRequest struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

// updateContactRequest is the body of PUT /contacts/{contactID}. All three
// mutable fields are replaced; the owner is never part of an update.
type updateContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// totalResponse is the body of GET /contacts/count/{userID}.
type totalResponse struct {
	Total int64 `json:"total"`
}

// pathID parses an integer path parameter. A non-integer value is a client
// error: the route matched, but the id is unusable.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// HandleAdd creates a contact.
//
// HTTP: POST /contacts
// Body: {"user_id": 1, "name": "...", "phone": "...", "email": "..."}
//
// 201 on success; 400 when user_id, name or phone is missing. The owner id
// is not verified to exist.
func (h *ContactHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req addContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("add contact: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	if _, err := h.contacts.Add(r.Context(), req.UserID, req.Name, req.Phone, req.Email); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Msg: "Contact added successfully"})
}

// HandleList returns one owner's contacts.
//
// HTTP: GET /contacts/{userID}
//
// 200 with a JSON array in insertion order — [] (not null, not 404) when
// the owner has no contacts.
func (h *ContactHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "User ID must be an integer"})
		return
	}

	contacts, err := h.contacts.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, contacts)
}

// HandleUpdate replaces a contact's name, phone and email.
//
// HTTP: PUT /contacts/{contactID}
// Body: {"name": "...", "phone": "...", "email": "..."}
//
// 200 on success; 400 when name or phone is missing; 404 when no contact
// has that id.
func (h *ContactHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	contactID, ok := pathID(r, "contactID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Contact ID must be an integer"})
		return
	}

	var req updateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("update contact: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	if err := h.contacts.Update(r.Context(), contactID, req.Name, req.Phone, req.Email); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Msg: "Contact updated successfully"})
}

// HandleDelete removes a contact.
//
// HTTP: DELETE /contacts/{contactID}
//
// Always 200 when the statement executes — deleting an id that doesn't
// exist is still a success, unlike update's 404.
func (h *ContactHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	contactID, ok := pathID(r, "contactID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Contact ID must be an integer"})
		return
	}

	if err := h.contacts.Delete(r.Context(), contactID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Msg: "Contact deleted successfully"})
}

// HandleCount returns how many contacts an owner has.
//
// HTTP: GET /contacts/count/{userID}
//
// 200 with {"total": N}; zero is a normal answer, always equal to the
// length of the list endpoint's array for the same owner.
func (h *ContactHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userID")
	if !ok {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "User ID must be an integer"})
		return
	}

	total, err := h.contacts.Count(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, totalResponse{Total: total})
}

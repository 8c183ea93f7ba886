package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/z1f7/832301306-contacts-backend/internal/auth"
	"github.com/z1f7/832301306-contacts-backend/internal/handler"
	"github.com/z1f7/832301306-contacts-backend/internal/repository/sqlite"
	"github.com/z1f7/832301306-contacts-backend/internal/service"
)

// newTestHandlers wires the real service stack over an in-memory SQLite
// database. Handlers are thin, so testing them against the full stack
// keeps the tests honest about status codes and body shapes.
func newTestHandlers(t *testing.T) (*handler.AuthHandler, *handler.ContactHandler) {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err, "opening in-memory database")
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	authService := service.NewAuthService(db, auth.NewPasswordHasher(), logger)
	contactService := service.NewContactService(db, logger)

	return handler.NewAuthHandler(authService, logger), handler.NewContactHandler(contactService, logger)
}

// postJSON builds a JSON POST request and a recorder.
func postJSON(t *testing.T, path, body string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return httptest.NewRecorder(), req
}

func TestHandleRegister(t *testing.T) {
	authH, _ := newTestHandlers(t)

	t.Run("success", func(t *testing.T) {
		rr, req := postJSON(t, "/register", `{"username":"alice","password":"pw1"}`)
		authH.HandleRegister(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var res map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Registration successful", res["msg"])
	})

	t.Run("duplicate username", func(t *testing.T) {
		rr, req := postJSON(t, "/register", `{"username":"alice","password":"other"}`)
		authH.HandleRegister(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var res map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Username already exists", res["error"])
	})

	t.Run("missing password", func(t *testing.T) {
		rr, req := postJSON(t, "/register", `{"username":"bob"}`)
		authH.HandleRegister(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Username and password are required")
	})

	t.Run("missing username", func(t *testing.T) {
		rr, req := postJSON(t, "/register", `{"password":"pw1"}`)
		authH.HandleRegister(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		rr, req := postJSON(t, "/register", `{"username":`)
		authH.HandleRegister(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Invalid JSON body")
	})
}

func TestHandleLogin(t *testing.T) {
	authH, _ := newTestHandlers(t)

	rr, req := postJSON(t, "/register", `{"username":"alice","password":"pw1"}`)
	authH.HandleRegister(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code, "setup: register")

	t.Run("success returns user id", func(t *testing.T) {
		rr, req := postJSON(t, "/login", `{"username":"alice","password":"pw1"}`)
		authH.HandleLogin(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var res map[string]int64
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, int64(1), res["user_id"], "first registered user gets id 1")
	})

	t.Run("wrong password", func(t *testing.T) {
		rr, req := postJSON(t, "/login", `{"username":"alice","password":"nope"}`)
		authH.HandleLogin(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("unknown user is indistinguishable from wrong password", func(t *testing.T) {
		rrUnknown, reqUnknown := postJSON(t, "/login", `{"username":"nobody","password":"pw1"}`)
		authH.HandleLogin(rrUnknown, reqUnknown)

		rrWrongPw, reqWrongPw := postJSON(t, "/login", `{"username":"alice","password":"nope"}`)
		authH.HandleLogin(rrWrongPw, reqWrongPw)

		assert.Equal(t, http.StatusUnauthorized, rrUnknown.Code)
		assert.Equal(t, rrWrongPw.Code, rrUnknown.Code)
		assert.Equal(t, rrWrongPw.Body.String(), rrUnknown.Body.String(),
			"the two failure responses must be byte-identical")
	})

	t.Run("missing fields", func(t *testing.T) {
		rr, req := postJSON(t, "/login", `{"username":"alice"}`)
		authH.HandleLogin(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

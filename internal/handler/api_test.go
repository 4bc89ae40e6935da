package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laqshya/sports-facility-booking/internal/availability"
	"github.com/laqshya/sports-facility-booking/internal/config"
	"github.com/laqshya/sports-facility-booking/internal/handler"
	"github.com/laqshya/sports-facility-booking/internal/repository"
	"github.com/laqshya/sports-facility-booking/internal/router"
	"github.com/laqshya/sports-facility-booking/internal/wizard"
)

const testSecret = "api-test-secret"

// newTestServer wires the full route table against fresh in-memory
// repositories, with Redis absent so the session store and response
// cache run in their degraded in-process modes.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := config.Config{
		Env:          "test",
		JWTSecret:    testSecret,
		AccessTTLMin: 5,
		BcryptCost:   4,
	}

	identity, err := repository.NewIdentityRepo(cfg.BcryptCost)
	require.NoError(t, err)
	ledger := repository.NewLedgerRepo()
	catalog := repository.NewCatalogRepo()
	sessions := repository.NewSessionRepo(nil, time.Minute)
	classifier := availability.NewClassifier(ledger, catalog)
	wiz := wizard.NewService(catalog, classifier)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(catalog, classifier), nil, 0)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, identity, sessions), cfg.JWTSecret)
	router.RegisterUser(e, handler.NewWizardHandler(wiz, ledger), handler.NewBookingHandler(ledger), cfg.JWTSecret)
	router.RegisterAdmin(e, handler.NewAdminHandler(cfg, identity, ledger, catalog), cfg.JWTSecret)
	router.RegisterManager(e, handler.NewManagerHandler(catalog, identity), cfg.JWTSecret)
	return e
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// login authenticates one of the seeded accounts and returns the token.
func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/v1/auth/login", "",
		fmt.Sprintf(`{"email":%q,"password":%q}`, email, password))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tok, _ := decode(t, rec)["access_token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)
	rec := do(e, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodPost, "/v1/auth/login", "",
		`{"email":"user@test.com","password":"demo123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.NotEmpty(t, body["access_token"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "user", user["role"])
	assert.Equal(t, "user@test.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "demo123")

	rec = do(e, http.MethodPost, "/v1/auth/login", "",
		`{"email":"user@test.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodPost, "/v1/auth/login", "",
		`{"email":"nobody@test.com","password":"demo123"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/v1/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/v1/me", "garbage-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	tok := login(t, e, "admin@test.com", "demo123")
	rec = do(e, http.MethodGet, "/v1/me", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "admin@test.com", body["email"])
	assert.Equal(t, "admin", body["role"])
}

func TestLogoutClearsSession(t *testing.T) {
	e := newTestServer(t)
	tok := login(t, e, "user@test.com", "demo123")

	rec := do(e, http.MethodPost, "/v1/auth/logout", tok, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// The token still verifies, so /v1/me falls back to the identity
	// store rather than failing.
	rec = do(e, http.MethodGet, "/v1/me", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user@test.com", decode(t, rec)["email"])
}

func TestProfileImage(t *testing.T) {
	e := newTestServer(t)
	tok := login(t, e, "user@test.com", "demo123")

	rec := do(e, http.MethodGet, "/v1/me/profile-image", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/placeholder-user.jpg", decode(t, rec)["image"])

	rec = do(e, http.MethodPut, "/v1/me/profile-image", tok, `{"image":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPut, "/v1/me/profile-image", tok, `{"image":"data:image/png;base64,aGk="}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(e, http.MethodGet, "/v1/me/profile-image", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "data:image/png;base64,aGk=", decode(t, rec)["image"])
}

func TestPublicCatalog(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/v1/sports", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decode(t, rec)["data"].([]any)
	assert.Len(t, data, 3)

	rec = do(e, http.MethodGet, "/v1/slots", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ = decode(t, rec)["data"].([]any)
	assert.Len(t, data, 32)

	rec = do(e, http.MethodGet, "/v1/venues/venue-2/grounds", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ = decode(t, rec)["data"].([]any)
	assert.Len(t, data, 6)

	rec = do(e, http.MethodGet, "/v1/venues/venue-9/grounds", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAvailabilityEndpoint(t *testing.T) {
	e := newTestServer(t)

	rec := do(e, http.MethodGet, "/v1/availability?venue=venue-1&ground=Court+A", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/v1/availability?venue=venue-1&ground=Court+A&date=2025-06-01", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Visakhapatnam Sports Complex", body["venue"])
	slots, _ := body["slots"].([]any)
	assert.Len(t, slots, 32)
}

func TestRoleGating(t *testing.T) {
	e := newTestServer(t)
	userTok := login(t, e, "user@test.com", "demo123")
	adminTok := login(t, e, "admin@test.com", "demo123")
	managerTok := login(t, e, "manager@test.com", "demo123")

	// Booking is the user role's alone.
	rec := do(e, http.MethodPost, "/v1/wizard", adminTok, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodGet, "/v1/admin/stats", userTok, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = do(e, http.MethodGet, "/v1/admin/stats", managerTok, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodGet, "/v1/manager/courts", adminTok, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(e, http.MethodGet, "/v1/admin/stats", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWizardFlow(t *testing.T) {
	e := newTestServer(t)
	tok := login(t, e, "user@test.com", "demo123")

	rec := do(e, http.MethodPost, "/v1/wizard?sport=badminton", tok, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "sport", decode(t, rec)["step"])

	// Advancing without a ground is a state conflict.
	rec = do(e, http.MethodPost, "/v1/wizard/next", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodPost, "/v1/wizard/next", tok, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(e, http.MethodPut, "/v1/wizard/venue", tok, `{"venue_id":"venue-1","ground":"Court A"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = do(e, http.MethodPost, "/v1/wizard/next", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(e, http.MethodPut, "/v1/wizard/slot", tok, `{"date":"01-06-2025","time":"10:00 AM"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(e, http.MethodPut, "/v1/wizard/slot", tok, `{"date":"2025-06-01","time":"10:00 AM"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = do(e, http.MethodPost, "/v1/wizard/next", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "payment", decode(t, rec)["step"])

	rec = do(e, http.MethodPost, "/v1/wizard/confirm", tok, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	booking := decode(t, rec)
	assert.Equal(t, "Badminton", booking["sport"])
	assert.Equal(t, "confirmed", booking["status"])
	assert.Equal(t, 500.0, booking["price"])
	assert.Equal(t, 30.0, booking["duration"])
	id, _ := booking["id"].(string)
	require.NotEmpty(t, id)

	// The session is gone once confirmed.
	rec = do(e, http.MethodGet, "/v1/wizard", tok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The confirmed slot is now unavailable to the next session.
	rec = do(e, http.MethodPost, "/v1/wizard?sport=badminton", tok, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = do(e, http.MethodPost, "/v1/wizard/next", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodPut, "/v1/wizard/venue", tok, `{"venue_id":"venue-1","ground":"Court A"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodPost, "/v1/wizard/next", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(e, http.MethodPut, "/v1/wizard/slot", tok, `{"date":"2025-06-01","time":"10:00 AM"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Listing, bill and cancel round out the booking surface.
	rec = do(e, http.MethodGet, "/v1/bookings", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, decode(t, rec)["total"])

	rec = do(e, http.MethodGet, "/v1/bookings/"+id+"/bill", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	bill := decode(t, rec)
	qr, _ := bill["qr"].(string)
	assert.True(t, strings.HasPrefix(qr, "data:image/png;base64,"))

	rec = do(e, http.MethodPost, "/v1/bookings/"+id+"/cancel", tok, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(e, http.MethodGet, "/v1/bookings?q=badminton", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decode(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "cancelled", data[0].(map[string]any)["status"])
}

func TestWizardWithoutSession(t *testing.T) {
	e := newTestServer(t)
	tok := login(t, e, "user@test.com", "demo123")

	rec := do(e, http.MethodGet, "/v1/wizard", tok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(e, http.MethodPost, "/v1/wizard/next", tok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(e, http.MethodPost, "/v1/wizard/confirm", tok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodPost, "/v1/wizard?sport=chess", tok, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBillOwnership(t *testing.T) {
	e := newTestServer(t)
	adminTok := login(t, e, "admin@test.com", "demo123")

	// Seed a booking for another user through the admin surface.
	rec := do(e, http.MethodPost, "/v1/admin/bookings", adminTok,
		`{"user_id":"99","sport":"Cricket","venue":"Rushikonda Indoor Arena","ground":"Arena 1","date":"2025-06-02"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id, _ := decode(t, rec)["id"].(string)
	require.NotEmpty(t, id)

	userTok := login(t, e, "user@test.com", "demo123")
	rec = do(e, http.MethodGet, "/v1/bookings/"+id+"/bill", userTok, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Cancelling a foreign booking is silently ignored.
	rec = do(e, http.MethodPost, "/v1/bookings/"+id+"/cancel", userTok, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(e, http.MethodGet, "/v1/admin/bookings", adminTok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decode(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "confirmed", data[0].(map[string]any)["status"])
}

func TestAdminUsersAndStats(t *testing.T) {
	e := newTestServer(t)
	tok := login(t, e, "admin@test.com", "demo123")

	rec := do(e, http.MethodGet, "/v1/admin/users", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3.0, decode(t, rec)["total"])

	rec = do(e, http.MethodPost, "/v1/admin/users", tok, `{"name":"New Player","email":"new@test.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.Equal(t, "user", created["role"])
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	// Duplicate email is rejected.
	rec = do(e, http.MethodPost, "/v1/admin/users", tok, `{"name":"Dup","email":"new@test.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/v1/admin/users?q=player", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, decode(t, rec)["total"])

	rec = do(e, http.MethodDelete, "/v1/admin/users/"+id, tok, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(e, http.MethodGet, "/v1/admin/users", tok, "")
	assert.Equal(t, 3.0, decode(t, rec)["total"])

	rec = do(e, http.MethodPost, "/v1/admin/bookings", tok,
		`{"user_id":"1","sport":"Tennis","venue":"Beach Road Sports Hub","ground":"Hub 1","date":"2025-06-03","price":450}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/v1/admin/stats", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode(t, rec)
	assert.Equal(t, 3.0, stats["total_users"])
	assert.Equal(t, 1.0, stats["total_bookings"])
	assert.Equal(t, 450.0, stats["revenue"])
}

func TestManagerCatalogWrites(t *testing.T) {
	e := newTestServer(t)
	tok := login(t, e, "manager@test.com", "demo123")

	rec := do(e, http.MethodGet, "/v1/manager/courts", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4.0, decode(t, rec)["total"])

	rec = do(e, http.MethodPost, "/v1/manager/sports", tok,
		`{"name":"Squash","price":"350","description":"Fast glass-court squash"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	// Non-positive price is a validation failure.
	rec = do(e, http.MethodPost, "/v1/manager/sports", tok, `{"name":"Padel","price":"0"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodGet, "/v1/sports", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decode(t, rec)["data"].([]any)
	assert.Len(t, data, 4)

	rec = do(e, http.MethodPost, "/v1/manager/coupons", tok,
		`{"code":"monsoon25","discount":"25","description":"Monsoon season","expiry_date":"2025-09-30"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "MONSOON25")

	rec = do(e, http.MethodGet, "/v1/manager/search?q=monsoon", tok, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "MONSOON25")
}

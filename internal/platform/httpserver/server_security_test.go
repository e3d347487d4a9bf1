package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	identityservice "pawsure/contexts/identity-access/identity-service"
	identitycrypto "pawsure/contexts/identity-access/identity-service/adapters/crypto"
	identityentities "pawsure/contexts/identity-access/identity-service/domain/entities"
	dashboardservice "pawsure/contexts/internal-ops/dashboard-service"
	searchservice "pawsure/contexts/internal-ops/search-service"
	applicationservice "pawsure/contexts/policy-operations/application-service"
	applicationentities "pawsure/contexts/policy-operations/application-service/domain/entities"
	claimservice "pawsure/contexts/policy-operations/claim-service"
	paymentservice "pawsure/contexts/policy-operations/payment-service"
	petservice "pawsure/contexts/policy-operations/pet-service"
	petentities "pawsure/contexts/policy-operations/pet-service/domain/entities"
	"pawsure/internal/platform/httpserver"
)

var signingSecret = []byte("in-memory-signing-secret")

type testEnv struct {
	handler      http.Handler
	applications applicationservice.Module
	pets         petservice.Module
	identity     identityservice.Module
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	identity := identityservice.NewInMemoryModule(nil, nil)
	applications := applicationservice.NewInMemoryModule(nil, nil)
	claims := claimservice.NewInMemoryModule(nil, nil)
	pets := petservice.NewInMemoryModule(nil, nil)
	payments := paymentservice.NewInMemoryModule(nil, nil)
	dashboard := dashboardservice.NewInMemoryModule(nil)
	search := searchservice.NewInMemoryModule(nil)

	server := httpserver.New(httpserver.Modules{
		Identity:     identity,
		Applications: applications,
		Claims:       claims,
		Pets:         pets,
		Payments:     payments,
		Dashboard:    dashboard,
		Search:       search,
	}, signingSecret, nil, ":0")

	return testEnv{
		handler:      server.Handler(),
		applications: applications,
		pets:         pets,
		identity:     identity,
	}
}

func sessionToken(t *testing.T, userID string, role identityentities.Role) string {
	t.Helper()
	issuer := identitycrypto.JWTSessionIssuer{Secret: signingSecret}
	token, _, err := issuer.Issue(userID, role, time.Hour)
	if err != nil {
		t.Fatalf("issuing session token failed: %v", err)
	}
	return token
}

func doRequest(t *testing.T, handler http.Handler, method string, target string, body string, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{"/api/pets", "/api/applications", "/api/claims", "/api/payments", "/api/dashboard/stats"} {
		rec := doRequest(t, env.handler, http.MethodGet, target, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", target, rec.Code)
		}
		if body := strings.TrimSpace(rec.Body.String()); body != `{"success":false,"error":"Unauthorized"}` {
			t.Fatalf("%s: unexpected body %s", target, body)
		}
	}
}

func TestCrossOwnerPetReadIsForbidden(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()
	if err := env.pets.Store.CreatePet(context.Background(), petentities.Pet{
		PetID:       "pet-1",
		OwnerUserID: "cust-1",
		Name:        "Milo",
		Species:     "dog",
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		t.Fatalf("seeding pet failed: %v", err)
	}

	rec := doRequest(t, env.handler, http.MethodGet, "/api/pets/pet-1", "", sessionToken(t, "cust-2", identityentities.RoleCustomer))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"success":false,"error":"Forbidden"}` {
		t.Fatalf("unexpected body %s", body)
	}

	rec = doRequest(t, env.handler, http.MethodGet, "/api/pets/pet-1", "", sessionToken(t, "cust-1", identityentities.RoleCustomer))
	if rec.Code != http.StatusOK {
		t.Fatalf("owner read expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterWithoutSubmittedApplication(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(t, env.handler, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","fullName":"Alice Meyer","password":"secret-password","role":"customer"}`, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body failed: %v", err)
	}
	if envelope.Success || envelope.Error != "No submitted application found for this email." {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
}

func TestSubmitApplicationResponseMessage(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now().UTC()
	ctx := context.Background()
	if err := env.applications.Store.CreateApplication(ctx, applicationentities.Application{
		ApplicationID: "app-1",
		PolicyNumber:  "PI-TEST01",
		CustomerID:    "cust-1",
		PetID:         "pet-1",
		Status:        applicationentities.ApplicationStatusSubmitted,
		CoverageLimit: 5000,
		Premium:       42.50,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}); err != nil {
		t.Fatalf("seeding application failed: %v", err)
	}

	rec := doRequest(t, env.handler, http.MethodPost, "/api/applications/app-1/submit", "", sessionToken(t, "admin-1", identityentities.RoleAdmin))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body failed: %v", err)
	}
	if !envelope.Success || !strings.Contains(envelope.Message, "temporary password sent via email") {
		t.Fatalf("unexpected envelope: %+v", envelope)
	}
	if provisioned := env.applications.Provisioner.Provisioned(); len(provisioned) != 1 || provisioned[0] != "cust-1" {
		t.Fatalf("expected credentials provisioned for cust-1, got %v", provisioned)
	}
}

func TestListPetsReturnsPaginationEnvelope(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	now := time.Now().UTC()
	for _, id := range []string{"pet-1", "pet-2", "pet-3"} {
		if err := env.pets.Store.CreatePet(ctx, petentities.Pet{
			PetID:       id,
			OwnerUserID: "cust-1",
			Name:        "Milo " + id,
			Species:     "dog",
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			t.Fatalf("seeding pet failed: %v", err)
		}
	}

	rec := doRequest(t, env.handler, http.MethodGet, "/api/pets?page=1&limit=2", "", sessionToken(t, "cust-1", identityentities.RoleCustomer))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Items      []json.RawMessage `json:"items"`
			Pagination struct {
				Page  int   `json:"page"`
				Limit int   `json:"limit"`
				Total int64 `json:"total"`
				Pages int64 `json:"pages"`
			} `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decoding body failed: %v", err)
	}
	p := envelope.Data.Pagination
	if len(envelope.Data.Items) != 2 || p.Page != 1 || p.Limit != 2 || p.Total != 3 || p.Pages != 2 {
		t.Fatalf("unexpected page envelope: items=%d pagination=%+v", len(envelope.Data.Items), p)
	}
}

func TestLoginSetsSessionCookie(t *testing.T) {
	env := newTestEnv(t)

	env.identity.Store.SetSubmittedApplicationEmail("carol@example.com", true)
	rec := doRequest(t, env.handler, http.MethodPost, "/api/auth/register",
		`{"email":"carol@example.com","fullName":"Carol Diaz","password":"secret-password","role":"customer"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("registration expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, env.handler, http.MethodPost, "/api/auth/login",
		`{"email":"carol@example.com","password":"secret-password"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "session" {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil || sessionCookie.Value == "" || !sessionCookie.HttpOnly {
		t.Fatalf("expected an http-only session cookie, got %+v", sessionCookie)
	}

	// The cookie must authenticate subsequent requests.
	req := httptest.NewRequest(http.MethodGet, "/api/pets", nil)
	req.AddCookie(sessionCookie)
	next := httptest.NewRecorder()
	env.handler.ServeHTTP(next, req)
	if next.Code != http.StatusOK {
		t.Fatalf("cookie auth expected 200, got %d: %s", next.Code, next.Body.String())
	}
}

func TestBearerHeaderFallback(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pets", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, "cust-1", identityentities.RoleCustomer))
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("bearer auth expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegistrationTokenIssueIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)

	rec := doRequest(t, env.handler, http.MethodPost, "/api/auth/registration-tokens",
		`{"email":"bob@example.com"}`, sessionToken(t, "cust-1", identityentities.RoleCustomer))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"success":false,"error":"Forbidden"}` {
		t.Fatalf("unexpected body %s", body)
	}

	rec = doRequest(t, env.handler, http.MethodPost, "/api/auth/registration-tokens",
		`{"email":"bob@example.com"}`, sessionToken(t, "admin-1", identityentities.RoleAdmin))
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin issue expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

package httpserver

import (
	"log/slog"
	"net/http"

	identityservice "pawsure/contexts/identity-access/identity-service"
	dashboardservice "pawsure/contexts/internal-ops/dashboard-service"
	searchservice "pawsure/contexts/internal-ops/search-service"
	applicationservice "pawsure/contexts/policy-operations/application-service"
	claimservice "pawsure/contexts/policy-operations/claim-service"
	paymentservice "pawsure/contexts/policy-operations/payment-service"
	petservice "pawsure/contexts/policy-operations/pet-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "pawsure/internal/platform/httpserver/docs"
)

type Server struct {
	mux       *http.ServeMux
	logger    *slog.Logger
	addr      string
	jwtSecret []byte

	identity     identityservice.Module
	applications applicationservice.Module
	claims       claimservice.Module
	pets         petservice.Module
	payments     paymentservice.Module
	dashboard    dashboardservice.Module
	search       searchservice.Module
}

type Modules struct {
	Identity     identityservice.Module
	Applications applicationservice.Module
	Claims       claimservice.Module
	Pets         petservice.Module
	Payments     paymentservice.Module
	Dashboard    dashboardservice.Module
	Search       searchservice.Module
}

func New(modules Modules, jwtSecret []byte, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		jwtSecret:    jwtSecret,
		identity:     modules.Identity,
		applications: modules.Applications,
		claims:       modules.Claims,
		pets:         modules.Pets,
		payments:     modules.Payments,
		dashboard:    modules.Dashboard,
		search:       modules.Search,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for httptest.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	s.mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	s.mux.HandleFunc("POST /api/auth/verify", s.handleVerifyEmail)
	s.mux.HandleFunc("POST /api/auth/registration-tokens", s.requireAdmin(s.handleIssueRegistrationToken))

	s.mux.HandleFunc("GET /api/users", s.requireAuth(s.handleListUsers))
	s.mux.HandleFunc("GET /api/users/{user_id}", s.requireAuth(s.handleGetUser))
	s.mux.HandleFunc("PUT /api/users/{user_id}", s.requireAuth(s.handleUpdateUser))
	s.mux.HandleFunc("DELETE /api/users/{user_id}", s.requireAuth(s.handleDeleteUser))

	s.mux.HandleFunc("POST /api/applications", s.requireAuth(s.handleCreateApplication))
	s.mux.HandleFunc("GET /api/applications", s.requireAuth(s.handleListApplications))
	s.mux.HandleFunc("GET /api/applications/submitted", s.requireAuth(s.handleListSubmittedApplications))
	s.mux.HandleFunc("GET /api/applications/in-progress", s.requireAuth(s.handleListInProgressApplications))
	s.mux.HandleFunc("GET /api/applications/active", s.requireAuth(s.handleListActiveApplications))
	s.mux.HandleFunc("GET /api/applications/{application_id}", s.requireAuth(s.handleGetApplication))
	s.mux.HandleFunc("PUT /api/applications/{application_id}", s.requireAuth(s.handleUpdateApplication))
	s.mux.HandleFunc("POST /api/applications/{application_id}/submit", s.requireAuth(s.handleSubmitApplication))
	s.mux.HandleFunc("POST /api/applications/{application_id}/approve", s.requireAuth(s.handleApproveApplication))
	s.mux.HandleFunc("POST /api/applications/{application_id}/decline", s.requireAuth(s.handleDeclineApplication))
	s.mux.HandleFunc("POST /api/applications/{application_id}/activate", s.requireAuth(s.handleActivateApplication))
	s.mux.HandleFunc("POST /api/applications/{application_id}/deactivate", s.requireAuth(s.handleDeactivateApplication))

	s.mux.HandleFunc("POST /api/claims", s.requireAuth(s.handleFileClaim))
	s.mux.HandleFunc("GET /api/claims", s.requireAuth(s.handleListClaims))
	s.mux.HandleFunc("GET /api/claims/queue", s.requireAuth(s.handleClaimQueue))
	s.mux.HandleFunc("GET /api/claims/history", s.requireAuth(s.handleClaimHistory))
	s.mux.HandleFunc("GET /api/claims/{claim_id}", s.requireAuth(s.handleGetClaim))
	s.mux.HandleFunc("PUT /api/claims/{claim_id}/approve", s.requireAuth(s.handleApproveClaim))
	s.mux.HandleFunc("PUT /api/claims/{claim_id}/reject", s.requireAuth(s.handleRejectClaim))
	s.mux.HandleFunc("PUT /api/claims/{claim_id}/process", s.requireAuth(s.handleProcessClaim))
	s.mux.HandleFunc("PUT /api/claims/{claim_id}/pending", s.requireAuth(s.handleReturnClaimToPending))

	s.mux.HandleFunc("POST /api/pets", s.requireAuth(s.handleCreatePet))
	s.mux.HandleFunc("GET /api/pets", s.requireAuth(s.handleListPets))
	s.mux.HandleFunc("GET /api/pets/{pet_id}", s.requireAuth(s.handleGetPet))
	s.mux.HandleFunc("PUT /api/pets/{pet_id}", s.requireAuth(s.handleUpdatePet))
	s.mux.HandleFunc("DELETE /api/pets/{pet_id}", s.requireAuth(s.handleDeletePet))

	s.mux.HandleFunc("POST /api/payments", s.requireAuth(s.handleRecordPayment))
	s.mux.HandleFunc("GET /api/payments", s.requireAuth(s.handleListPayments))
	s.mux.HandleFunc("GET /api/payments/{payment_id}", s.requireAuth(s.handleGetPayment))

	s.mux.HandleFunc("GET /api/dashboard/stats", s.requireAuth(s.handleDashboardStats))
	s.mux.HandleFunc("GET /api/search", s.requireAuth(s.handleSearch))
}

package unit

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	identityservice "pawsure/contexts/identity-access/identity-service"
	"pawsure/contexts/identity-access/identity-service/domain/entities"
	domainerrors "pawsure/contexts/identity-access/identity-service/domain/errors"
	httptransport "pawsure/contexts/identity-access/identity-service/transport/http"
)

func TestRegisterCustomerRequiresSubmittedApplication(t *testing.T) {
	module := identityservice.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	_, err := module.Handler.RegisterHandler(ctx, httptransport.RegisterRequest{
		Email:    "nobody@example.com",
		FullName: "No Body",
		Password: "secret-password",
		Role:     "customer",
	})
	if !errors.Is(err, domainerrors.ErrNoSubmittedApplication) {
		t.Fatalf("expected no-submitted-application error, got %v", err)
	}

	module.Store.SetSubmittedApplicationEmail("alice@example.com", true)
	resp, err := module.Handler.RegisterHandler(ctx, httptransport.RegisterRequest{
		Email:    "alice@example.com",
		FullName: "Alice Meyer",
		Password: "secret-password",
		Role:     "customer",
		Phone:    "555-0100",
		City:     "Portland",
	})
	if err != nil {
		t.Fatalf("eligible registration failed: %v", err)
	}
	if resp.User.Role != "customer" {
		t.Fatalf("expected customer role, got %s", resp.User.Role)
	}
}

func TestRegisterCustomerWithRegistrationToken(t *testing.T) {
	module := identityservice.NewInMemoryModule([]entities.User{{
		UserID:    "admin-1",
		Email:     "admin@pawsure.io",
		Role:      entities.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	}}, nil)
	ctx := context.Background()

	token, err := module.Handler.IssueRegistrationTokenHandler(ctx, "admin-1", "admin", httptransport.IssueRegistrationTokenRequest{
		Email: "bob@example.com",
	})
	if err != nil {
		t.Fatalf("issuing registration token failed: %v", err)
	}

	_, err = module.Handler.RegisterHandler(ctx, httptransport.RegisterRequest{
		Email:             "bob@example.com",
		FullName:          "Bob Lang",
		Password:          "secret-password",
		Role:              "customer",
		RegistrationToken: token.Token,
	})
	if err != nil {
		t.Fatalf("token registration failed: %v", err)
	}

	// The token is single-use.
	_, err = module.Handler.RegisterHandler(ctx, httptransport.RegisterRequest{
		Email:             "bob2@example.com",
		FullName:          "Bob Lang",
		Password:          "secret-password",
		Role:              "customer",
		RegistrationToken: token.Token,
	})
	if !errors.Is(err, domainerrors.ErrRegistrationTokenInvalid) {
		t.Fatalf("expected reused token to be rejected, got %v", err)
	}
}

func TestLoginIssuesSessionToken(t *testing.T) {
	module := identityservice.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	module.Store.SetSubmittedApplicationEmail("carol@example.com", true)
	if _, err := module.Handler.RegisterHandler(ctx, httptransport.RegisterRequest{
		Email:    "carol@example.com",
		FullName: "Carol Diaz",
		Password: "secret-password",
		Role:     "customer",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	session, err := module.Handler.LoginHandler(ctx, httptransport.LoginRequest{
		Email:    "carol@example.com",
		Password: "secret-password",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Token == "" {
		t.Fatalf("expected a session token")
	}

	_, err = module.Handler.LoginHandler(ctx, httptransport.LoginRequest{
		Email:    "carol@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestProvisionCredentialsSendsTemporaryPassword(t *testing.T) {
	module := identityservice.NewInMemoryModule([]entities.User{{
		UserID:    "cust-1",
		Email:     "dana@example.com",
		FullName:  "Dana Moore",
		Role:      entities.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}}, nil)
	ctx := context.Background()

	if err := module.Provision.Execute(ctx, "cust-1"); err != nil {
		t.Fatalf("provisioning failed: %v", err)
	}

	user, err := module.Store.GetUser(ctx, "cust-1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if user.PasswordHash == "" {
		t.Fatalf("expected a stored password hash after provisioning")
	}

	sent := module.Notifier.Sent()
	if len(sent) != 1 || sent[0].Kind != "temporary_credentials" {
		t.Fatalf("expected one temporary credentials mail, got %+v", sent)
	}
	if sent[0].TempPassword == "" || sent[0].VerifyURL == "" {
		t.Fatalf("expected temp password and verify link, got %+v", sent[0])
	}

	// The mailed temporary password must match the stored credential.
	if _, err := module.Handler.LoginHandler(ctx, httptransport.LoginRequest{
		Email:    "dana@example.com",
		Password: sent[0].TempPassword,
	}); err != nil {
		t.Fatalf("login with temporary password failed: %v", err)
	}
}

func TestProvisionCredentialsSwallowsMailFailure(t *testing.T) {
	module := identityservice.NewInMemoryModule([]entities.User{{
		UserID:    "cust-2",
		Email:     "erin@example.com",
		Role:      entities.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}}, nil)
	module.Notifier.FailNext = errors.New("smtp unreachable")

	if err := module.Provision.Execute(context.Background(), "cust-2"); err != nil {
		t.Fatalf("expected mail failure to be swallowed, got %v", err)
	}
}

func TestVerifyEmailConsumesToken(t *testing.T) {
	module := identityservice.NewInMemoryModule([]entities.User{{
		UserID:    "cust-3",
		Email:     "finn@example.com",
		Role:      entities.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}}, nil)
	ctx := context.Background()

	if err := module.Provision.Execute(ctx, "cust-3"); err != nil {
		t.Fatalf("provisioning failed: %v", err)
	}
	sent := module.Notifier.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected one mail, got %d", len(sent))
	}
	_, token, ok := strings.Cut(sent[0].VerifyURL, "token=")
	if !ok {
		t.Fatalf("verify link missing token parameter: %s", sent[0].VerifyURL)
	}

	if err := module.Handler.VerifyEmailHandler(ctx, httptransport.VerifyEmailRequest{Token: token}); err != nil {
		t.Fatalf("verification failed: %v", err)
	}
	user, _ := module.Store.GetUser(ctx, "cust-3")
	if user.EmailVerifiedAt == nil {
		t.Fatalf("expected email verified timestamp")
	}

	err := module.Handler.VerifyEmailHandler(ctx, httptransport.VerifyEmailRequest{Token: token})
	if !errors.Is(err, domainerrors.ErrVerificationTokenInvalid) {
		t.Fatalf("expected consumed token to be rejected, got %v", err)
	}
}

func TestDeleteUserRefusesWhileOwningApplications(t *testing.T) {
	module := identityservice.NewInMemoryModule([]entities.User{{
		UserID:    "cust-4",
		Email:     "gail@example.com",
		Role:      entities.RoleCustomer,
		CreatedAt: time.Now().UTC(),
	}}, nil)
	ctx := context.Background()

	module.Store.SetApplicationCount("cust-4", 2)
	err := module.Handler.DeleteUserHandler(ctx, "admin", "cust-4")
	if !errors.Is(err, domainerrors.ErrUserOwnsApplications) {
		t.Fatalf("expected owns-applications guard, got %v", err)
	}

	if err := module.Handler.DeleteUserHandler(ctx, "customer", "cust-4"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected non-admin delete to be forbidden, got %v", err)
	}

	module.Store.SetApplicationCount("cust-4", 0)
	if err := module.Handler.DeleteUserHandler(ctx, "admin", "cust-4"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}

func TestGetUserIsSelfOrAdmin(t *testing.T) {
	module := identityservice.NewInMemoryModule([]entities.User{
		{UserID: "cust-5", Email: "hugo@example.com", Role: entities.RoleCustomer, CreatedAt: time.Now().UTC()},
		{UserID: "cust-6", Email: "iris@example.com", Role: entities.RoleCustomer, CreatedAt: time.Now().UTC()},
	}, nil)
	ctx := context.Background()

	if _, err := module.Handler.GetUserHandler(ctx, "cust-5", "customer", "cust-5"); err != nil {
		t.Fatalf("self read failed: %v", err)
	}
	if _, err := module.Handler.GetUserHandler(ctx, "cust-5", "customer", "cust-6"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected cross-user read to be forbidden, got %v", err)
	}
	if _, err := module.Handler.GetUserHandler(ctx, "admin-9", "admin", "cust-6"); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
}

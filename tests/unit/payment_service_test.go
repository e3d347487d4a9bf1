package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	paymentservice "pawsure/contexts/policy-operations/payment-service"
	"pawsure/contexts/policy-operations/payment-service/domain/entities"
	domainerrors "pawsure/contexts/policy-operations/payment-service/domain/errors"
	"pawsure/contexts/policy-operations/payment-service/ports"
	httptransport "pawsure/contexts/policy-operations/payment-service/transport/http"
)

func seededPayment(id string, applicationID string, amount float64) entities.Payment {
	now := time.Now().UTC()
	return entities.Payment{
		PaymentID:     id,
		ApplicationID: applicationID,
		Amount:        amount,
		Method:        "card",
		PaidAt:        now,
		CreatedAt:     now,
	}
}

func TestRecordPaymentChecksApplicationOwnership(t *testing.T) {
	module := paymentservice.NewInMemoryModule(nil, nil)
	ctx := context.Background()

	module.Store.SeedPolicy(ports.PolicySummary{ApplicationID: "app-1", CustomerID: "cust-1"})

	resp, err := module.Handler.RecordPaymentHandler(ctx, "cust-1", "customer", httptransport.RecordPaymentRequest{
		ApplicationID: "app-1",
		Amount:        42.50,
		Method:        "card",
	})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if resp.Payment.PaidAt == "" {
		t.Fatalf("expected paidAt to default to now, got %+v", resp.Payment)
	}

	_, err = module.Handler.RecordPaymentHandler(ctx, "cust-2", "customer", httptransport.RecordPaymentRequest{
		ApplicationID: "app-1",
		Amount:        42.50,
		Method:        "card",
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	_, err = module.Handler.RecordPaymentHandler(ctx, "cust-1", "customer", httptransport.RecordPaymentRequest{
		ApplicationID: "app-missing",
		Amount:        42.50,
		Method:        "card",
	})
	if !errors.Is(err, domainerrors.ErrApplicationNotFound) {
		t.Fatalf("expected unknown application to be rejected, got %v", err)
	}
}

func TestRecordPaymentValidatesInput(t *testing.T) {
	module := paymentservice.NewInMemoryModule(nil, nil)
	module.Store.SeedPolicy(ports.PolicySummary{ApplicationID: "app-1", CustomerID: "cust-1"})

	_, err := module.Handler.RecordPaymentHandler(context.Background(), "cust-1", "customer", httptransport.RecordPaymentRequest{
		ApplicationID: "app-1",
		Amount:        0,
		Method:        "card",
	})
	if !errors.Is(err, domainerrors.ErrInvalidPaymentInput) {
		t.Fatalf("expected invalid input for zero amount, got %v", err)
	}
}

func TestListPaymentsIsOwnerScoped(t *testing.T) {
	module := paymentservice.NewInMemoryModule([]entities.Payment{
		seededPayment("pay-1", "app-1", 42.50),
		seededPayment("pay-2", "app-2", 99.00),
		seededPayment("pay-3", "app-1", 42.50),
	}, nil)
	module.Store.SeedPolicy(ports.PolicySummary{ApplicationID: "app-1", CustomerID: "cust-1"})
	module.Store.SeedPolicy(ports.PolicySummary{ApplicationID: "app-2", CustomerID: "cust-2"})
	ctx := context.Background()

	resp, total, err := module.Handler.ListPaymentsHandler(ctx, "cust-1", "customer", "", 1, 20)
	if err != nil {
		t.Fatalf("customer list failed: %v", err)
	}
	if total != 2 || len(resp.Items) != 2 {
		t.Fatalf("expected two owned payments, got total=%d items=%d", total, len(resp.Items))
	}
	for _, item := range resp.Items {
		if item.ApplicationID != "app-1" {
			t.Fatalf("foreign payment leaked: %+v", item)
		}
	}

	_, total, err = module.Handler.ListPaymentsHandler(ctx, "admin-1", "admin", "", 1, 20)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected all payments for admin, got %d", total)
	}

	_, err = module.Handler.GetPaymentHandler(ctx, "cust-2", "customer", "pay-1")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected cross-owner read to be forbidden, got %v", err)
	}
}

package postgresadapter

import (
	"strings"
	"time"

	"pawsure/contexts/policy-operations/payment-service/domain/entities"
)

type paymentModel struct {
	PaymentID     string    `gorm:"column:payment_id;primaryKey"`
	ApplicationID string    `gorm:"column:application_id"`
	Amount        float64   `gorm:"column:amount"`
	Method        string    `gorm:"column:method"`
	Reference     string    `gorm:"column:reference"`
	PaidAt        time.Time `gorm:"column:paid_at"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (paymentModel) TableName() string {
	return "payments"
}

func paymentModelFromEntity(payment entities.Payment) paymentModel {
	return paymentModel{
		PaymentID:     strings.TrimSpace(payment.PaymentID),
		ApplicationID: strings.TrimSpace(payment.ApplicationID),
		Amount:        payment.Amount,
		Method:        strings.TrimSpace(payment.Method),
		Reference:     strings.TrimSpace(payment.Reference),
		PaidAt:        payment.PaidAt.UTC(),
		CreatedAt:     payment.CreatedAt.UTC(),
	}
}

func (m paymentModel) toEntity() entities.Payment {
	return entities.Payment{
		PaymentID:     m.PaymentID,
		ApplicationID: m.ApplicationID,
		Amount:        m.Amount,
		Method:        m.Method,
		Reference:     m.Reference,
		PaidAt:        m.PaidAt.UTC(),
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

type applicationProjectionModel struct {
	ApplicationID string `gorm:"column:application_id;primaryKey"`
	CustomerID    string `gorm:"column:customer_id"`
}

func (applicationProjectionModel) TableName() string {
	return "applications"
}

package service

import (
	"context"
	"time"
)

// ConfirmationToken proves a contribution was paid.
type ConfirmationToken struct {
	Token       string
	Amount      int64
	Provider    string
	ConfirmedAt time.Time
}

// PaymentConfirmer confirms a contribution before an entitlement is written.
type PaymentConfirmer interface {
	ConfirmPayment(ctx context.Context, amount int64) (*ConfirmationToken, error)
}

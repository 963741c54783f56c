// Package payment holds payment confirmation adapters.
package payment

import (
	"context"
	"log/slog"
	"time"

	domainerrors "pesantren/internal/domain/errors"
	"pesantren/internal/domain/service"

	"github.com/google/uuid"
)

// StubProvider names the confirmer in issued tokens.
const StubProvider = "stub"

// stubConfirmer confirms every positive amount without contacting a gateway.
// It stands in until a real payment provider is integrated.
type stubConfirmer struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewStubConfirmer creates the development payment confirmer.
func NewStubConfirmer(logger *slog.Logger) service.PaymentConfirmer {
	logger.Warn("Using stub payment confirmer, contributions are not charged")

	return &stubConfirmer{
		logger: logger,
		now:    time.Now,
	}
}

// ConfirmPayment implements service.PaymentConfirmer.
func (c *stubConfirmer) ConfirmPayment(ctx context.Context, amount int64) (*service.ConfirmationToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, domainerrors.ErrPaymentNotConfirmed.WrapMessage("amount must be positive")
	}

	token := &service.ConfirmationToken{
		Token:       "stub-" + uuid.NewString(),
		Amount:      amount,
		Provider:    StubProvider,
		ConfirmedAt: c.now(),
	}
	c.logger.DebugContext(ctx, "Stub payment confirmed",
		slog.Int64("amount", amount),
		slog.String("token", token.Token),
	)

	return token, nil
}

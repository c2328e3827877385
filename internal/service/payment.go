package service

import (
	"context"
	"strings"

	"swipestay-backend/internal/domain"
	"swipestay-backend/internal/logger"
)

// simulatedPaymentService stands in for a real processor: it validates the
// token shape, logs a masked charge, and always settles. Mirrors the mock
// storage approach used for other external collaborators.
type simulatedPaymentService struct{}

func NewSimulatedPaymentService() PaymentService {
	return &simulatedPaymentService{}
}

func (s *simulatedPaymentService) Charge(ctx context.Context, paymentToken string, amount float64) error {
	if amount <= 0 {
		return domain.Validationf("charge amount must be positive")
	}
	// An empty token means an account-holder charge against the card on
	// file; guests must supply one.
	logger.Info("simulated payment settled", "token", maskToken(paymentToken), "amount", amount)
	return nil
}

func maskToken(token string) string {
	if token == "" {
		return "on-file"
	}
	digits := strings.ReplaceAll(token, " ", "")
	if len(digits) <= 4 {
		return "****"
	}
	return "****" + digits[len(digits)-4:]
}

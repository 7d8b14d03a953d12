package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"jamii-hub/mtaani/internal/db/repositories"
	"jamii-hub/mtaani/internal/metrics"
	"jamii-hub/mtaani/internal/models/dtos/requests"
	"jamii-hub/mtaani/internal/models/entities"
)

// TicketService issues event tickets. The qr code is generated server
// side at purchase time; clients never supply one.
type TicketService struct {
	store      repositories.Store
	metricsReg *metrics.MetricsRegistry
}

func NewTicketService(store repositories.Store, metricsReg *metrics.MetricsRegistry) *TicketService {
	return &TicketService{store: store, metricsReg: metricsReg}
}

func (s *TicketService) Purchase(ctx context.Context, req *requests.CreateTicket) (*entities.Ticket, error) {
	qrCode, err := generateQRCode()
	if err != nil {
		return nil, err
	}

	ticket, err := s.store.CreateTicket(ctx, &entities.Ticket{
		EventID: req.EventID,
		UserID:  req.UserID,
		QRCode:  qrCode,
	})
	if err != nil {
		return nil, err
	}

	if s.metricsReg != nil {
		s.metricsReg.TicketsIssuedTotal.Inc()
	}

	return ticket, nil
}

// generateQRCode returns a 32-char hex token (16 random bytes).
func generateQRCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate qr code: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

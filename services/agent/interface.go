// File: services/agent/interface.go
package agent

import (
	"context"
	"time"

	"tailortalk/models"

	"go.uber.org/zap"
)

// Service turns a free-text chat message into a structured booking response.
// Implementations must return a well-formed envelope for every input and
// never surface an error to the caller.
type Service interface {
	ProcessMessage(ctx context.Context, req models.ChatRequest) *models.ChatResponse
}

// DefaultService is the keyword-driven booking agent. It is stateless across
// calls and safe for concurrent use: the catalog is read-only after
// construction and the only external input besides the message is the clock.
type DefaultService struct {
	Catalog []models.SalonService
	Logger  *zap.Logger

	// Now is the clock used for slot suggestions. Overridable in tests.
	Now func() time.Time
}

// NewDefaultService constructs an agent over the given service catalog.
func NewDefaultService(catalog []models.SalonService, logger *zap.Logger) *DefaultService {
	return &DefaultService{
		Catalog: catalog,
		Logger:  logger,
		Now:     time.Now,
	}
}

func (s *DefaultService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

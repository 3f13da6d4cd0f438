package audit

import (
	"context"
	"fmt"
	"time"

	"chefpay/internal/logging"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type Service struct {
	repo   Repository
	now    func() time.Time
	logger zerolog.Logger
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:   repo,
		now:    time.Now,
		logger: logging.Component("audit"),
	}
}

// Record stores a submission, assigning its id and timestamp.
func (s *Service) Record(ctx context.Context, sub Submission) (*Submission, error) {
	sub.ID = uuid.New()
	sub.CreatedAt = s.now().UTC()

	if err := s.repo.Insert(ctx, sub); err != nil {
		return nil, fmt.Errorf("record submission: %w", err)
	}

	s.logger.Info().
		Str("id", sub.ID.String()).
		Int("canteen_id", sub.CanteenID).
		Str("user_id", sub.UserID).
		Str("status", string(sub.Status)).
		Msg("submission recorded")

	return &sub, nil
}

// List returns the latest submissions for a canteen. The limit is clamped
// to [1, MaxLimit]; zero means DefaultLimit.
func (s *Service) List(ctx context.Context, canteenID, limit int) ([]Submission, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	subs, err := s.repo.ListByCanteen(ctx, canteenID, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	if subs == nil {
		subs = []Submission{}
	}
	return subs, nil
}

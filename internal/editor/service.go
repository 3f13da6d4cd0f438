package editor

import (
	"context"
	"encoding/json"
	"errors"

	"chefpay/internal/audit"
	"chefpay/internal/core"
	"chefpay/internal/logging"
	"chefpay/internal/menu"

	"github.com/rs/zerolog"
)

// Auditor records submit attempts.
type Auditor interface {
	Record(ctx context.Context, s audit.Submission) (*audit.Submission, error)
}

type Service struct {
	store  *Store
	syncer *menu.Syncer
	audit  Auditor
	logger zerolog.Logger
}

func NewService(store *Store, syncer *menu.Syncer, auditor Auditor) *Service {
	return &Service{
		store:  store,
		syncer: syncer,
		audit:  auditor,
		logger: logging.Component("editor"),
	}
}

// Open loads the canteen's menu into a fresh editor for the user. A failed
// load still opens the editor with an empty assignment; the error is kept on
// the editor for display.
func (s *Service) Open(ctx context.Context, p core.Principal, canteenID int) (*Editor, error) {
	a, loadErr := s.syncer.Load(ctx, canteenID)
	if loadErr != nil {
		if errors.Is(loadErr, menu.ErrInvalidTenant) {
			return nil, loadErr
		}

		s.logger.Warn().Err(loadErr).
			Int("canteen_id", canteenID).
			Str("user_id", p.UserID).
			Msg("menu load failed, opening empty editor")

		var err error
		if a, err = menu.NewAssignment(canteenID); err != nil {
			return nil, err
		}
	}

	e := newEditor(p.UserID, a, loadErr)
	s.store.Put(e)

	s.logger.Info().
		Str("session_id", e.ID.String()).
		Int("canteen_id", canteenID).
		Str("user_id", p.UserID).
		Msg("editor opened")

	return e, nil
}

// Get returns the user's editor for the canteen.
func (s *Service) Get(p core.Principal, canteenID int) (*Editor, error) {
	e, ok := s.store.Get(p.UserID)
	if !ok || e.CanteenID != canteenID {
		return nil, ErrNoEditor
	}
	return e, nil
}

// Cancel resets and closes the user's editor. A submit already in flight
// still completes, but its outcome no longer reaches any editor.
func (s *Service) Cancel(p core.Principal, canteenID int) error {
	e, err := s.Get(p, canteenID)
	if err != nil {
		return err
	}

	e.reset()
	s.store.Delete(p.UserID, e.ID)

	s.logger.Info().
		Str("session_id", e.ID.String()).
		Int("canteen_id", canteenID).
		Msg("editor cancelled")
	return nil
}

// SubmitResult describes a successful submit.
type SubmitResult struct {
	MenuID    int                    `json:"menu_id"`
	Request   menu.UpdateMenuRequest `json:"request"`
	ItemCount int                    `json:"item_count"`
}

// Submit validates the editor's assignment and sends it to the canteen API.
// Success resets the assignment and closes the editor. Failure leaves both as
// they were.
func (s *Service) Submit(ctx context.Context, p core.Principal, canteenID int) (*SubmitResult, error) {
	e, err := s.Get(p, canteenID)
	if err != nil {
		return nil, err
	}

	a, err := e.beginSubmit()
	if err != nil {
		var verrs menu.ValidationErrors
		if errors.As(err, &verrs) {
			s.record(ctx, p, e.Assignment(), nil, audit.StatusRejected, err)
		}
		return nil, err
	}

	req := menu.BuildUpdatePayload(a)

	// The remote call outlives a dropped client connection.
	saveErr := s.syncer.Save(context.WithoutCancel(ctx), a)
	e.finishSubmit(saveErr == nil)

	if saveErr != nil {
		s.logger.Error().Err(saveErr).
			Str("session_id", e.ID.String()).
			Int("canteen_id", canteenID).
			Msg("menu submit failed")
		s.record(ctx, p, a, &req, audit.StatusFailed, saveErr)
		return nil, saveErr
	}

	s.store.Delete(p.UserID, e.ID)
	s.record(ctx, p, a, &req, audit.StatusSucceeded, nil)

	s.logger.Info().
		Str("session_id", e.ID.String()).
		Int("canteen_id", canteenID).
		Msg("menu submitted, editor closed")

	menuID, _ := a.RemoteMenuID()
	return &SubmitResult{
		MenuID:    menuID,
		Request:   req,
		ItemCount: a.TotalSelectedCount(),
	}, nil
}

func (s *Service) record(
	ctx context.Context,
	p core.Principal,
	a *menu.Assignment,
	req *menu.UpdateMenuRequest,
	status audit.Status,
	cause error,
) {
	if s.audit == nil {
		return
	}

	sub := audit.Submission{
		CanteenID: a.TenantID(),
		UserID:    p.UserID,
		UserEmail: p.Email,
		MenuType:  string(a.Mode()),
		ItemCount: a.TotalSelectedCount(),
		Status:    status,
	}
	if id, ok := a.RemoteMenuID(); ok {
		sub.MenuID = &id
	}
	if req != nil {
		if raw, err := json.Marshal(req); err == nil {
			sub.Payload = raw
		}
	}
	if cause != nil {
		sub.Error = cause.Error()
	}

	if _, err := s.audit.Record(context.WithoutCancel(ctx), sub); err != nil {
		s.logger.Warn().Err(err).
			Int("canteen_id", sub.CanteenID).
			Msg("failed to record submission")
	}
}

package settlement

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"

	"github.com/azmirfakkri/jomsplit/internal/bill"
	"github.com/azmirfakkri/jomsplit/internal/session"
)

// Common errors
var (
	ErrSettlementNotFound      = errors.New("settlement not found")
	ErrSessionNotFound         = errors.New("session not found")
	ErrParticipantNotInSession = errors.New("participant is not part of this session")
	ErrCannotSettleSelf        = errors.New("cannot record a settlement with yourself")
)

// Service handles settlement business logic
type Service struct {
	repo     Repository
	sessions session.Repository
	bills    *bill.Service
}

// NewService creates a new settlement service
func NewService(repo Repository, sessions session.Repository, bills *bill.Service) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		bills:    bills,
	}
}

// Plan computes the session's settle-up transfer plan from current balances.
func (s *Service) Plan(ctx context.Context, sessionID string) (*bill.SummaryResponse, error) {
	summary, err := s.bills.Summary(ctx, sessionID)
	if err != nil {
		if errors.Is(err, bill.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return summary, nil
}

// Record persists a real-world settle-up payment between two participants.
func (s *Service) Record(ctx context.Context, req *RecordSettlementRequest) (*Settlement, error) {
	if req.FromParticipant == req.ToParticipant {
		return nil, ErrCannotSettleSelf
	}

	names, err := s.participantNames(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	fromName, ok := names[req.FromParticipant]
	if !ok {
		return nil, ErrParticipantNotInSession
	}
	toName, ok := names[req.ToParticipant]
	if !ok {
		return nil, ErrParticipantNotInSession
	}

	settlement := &Settlement{
		ID:              uuid.NewString(),
		SessionID:       req.SessionID,
		FromParticipant: req.FromParticipant,
		ToParticipant:   req.ToParticipant,
		Amount:          math.Round(req.Amount*100) / 100,
		Method:          req.Method,
		Note:            req.Note,
		FromName:        fromName,
		ToName:          toName,
	}
	if err := s.repo.Create(ctx, settlement); err != nil {
		return nil, err
	}
	return settlement, nil
}

// ListBySession retrieves a session's recorded settlements with names resolved
func (s *Service) ListBySession(ctx context.Context, sessionID string) ([]*Settlement, error) {
	names, err := s.participantNames(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	settlements, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for _, settlement := range settlements {
		// Names of removed participants resolve to empty strings.
		settlement.FromName = names[settlement.FromParticipant]
		settlement.ToName = names[settlement.ToParticipant]
	}
	return settlements, nil
}

// Delete removes a recorded settlement
func (s *Service) Delete(ctx context.Context, id string) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrSettlementNotFound
	}
	return nil
}

func (s *Service) participantNames(ctx context.Context, sessionID string) (map[string]string, error) {
	sess, err := s.sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	participants, err := s.sessions.ListParticipants(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}
	return names, nil
}

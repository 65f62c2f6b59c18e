package session

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrDuplicateName       = errors.New("a participant with this name already exists in the session")
	ErrCodeExhausted       = errors.New("could not allocate a unique session code")
)

// codeAlphabet omits characters that read ambiguously on a receipt-side
// screen share (0/O, 1/I/L).
const (
	codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

// Service handles session business logic
type Service struct {
	repo Repository
}

// NewService creates a new session service with repository dependency injected
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new session with a unique share code
func (s *Service) Create(ctx context.Context, createdBy string, req *CreateSessionRequest) (*Session, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := generateCode()
		if err != nil {
			return nil, err
		}

		existing, err := s.repo.GetSessionByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			slog.Debug("session code collision, retrying", "code", code)
			continue
		}

		sess := &Session{
			ID:        uuid.NewString(),
			Code:      code,
			Name:      strings.TrimSpace(req.Name),
			CreatedBy: createdBy,
		}
		if err := s.repo.CreateSession(ctx, sess); err != nil {
			return nil, err
		}
		return sess, nil
	}
	return nil, ErrCodeExhausted
}

// GetByID retrieves a session by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Session, error) {
	sess, err := s.repo.GetSessionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// GetByCode retrieves a session by its share code
func (s *Service) GetByCode(ctx context.Context, code string) (*Session, error) {
	sess, err := s.repo.GetSessionByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Rename updates a session's display name
func (s *Service) Rename(ctx context.Context, id string, req *UpdateSessionRequest) (*Session, error) {
	sess, err := s.repo.UpdateSessionName(ctx, id, strings.TrimSpace(req.Name))
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Delete removes a session and everything scoped to it
func (s *Service) Delete(ctx context.Context, id string) error {
	sess, err := s.repo.GetSessionByID(ctx, id)
	if err != nil {
		return err
	}
	if sess == nil {
		return ErrSessionNotFound
	}
	return s.repo.DeleteSession(ctx, id)
}

// AddParticipant adds a person to a session. Names must be unique within the
// session since they are the only identity participants have on screen.
func (s *Service) AddParticipant(ctx context.Context, sessionID string, req *AddParticipantRequest) (*Participant, error) {
	sess, err := s.repo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	name := strings.TrimSpace(req.Name)
	existing, err := s.repo.ListParticipants(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if strings.EqualFold(p.Name, name) {
			return nil, ErrDuplicateName
		}
	}

	participant := &Participant{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Name:      name,
	}
	if err := s.repo.AddParticipant(ctx, participant); err != nil {
		return nil, err
	}
	return participant, nil
}

// ListParticipants retrieves a session's participants in join order
func (s *Service) ListParticipants(ctx context.Context, sessionID string) ([]*Participant, error) {
	sess, err := s.repo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return s.repo.ListParticipants(ctx, sessionID)
}

// RemoveParticipant removes a person from a session. Items referencing the
// removed participant are not rewritten; their shares simply stop counting
// when balances are next recomputed.
func (s *Service) RemoveParticipant(ctx context.Context, sessionID, participantID string) error {
	participant, err := s.repo.GetParticipant(ctx, participantID)
	if err != nil {
		return err
	}
	if participant == nil || participant.SessionID != sessionID {
		return ErrParticipantNotFound
	}
	return s.repo.RemoveParticipant(ctx, participantID)
}

// generateCode returns a random share code drawn from codeAlphabet
func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}

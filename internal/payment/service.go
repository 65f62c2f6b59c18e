package payment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/azmirfakkri/jomsplit/internal/bill"
	"github.com/azmirfakkri/jomsplit/internal/bill/split"
	"github.com/azmirfakkri/jomsplit/internal/session"
)

// Common errors
var (
	ErrProfileNotFound         = errors.New("payment profile not found")
	ErrSessionNotFound         = errors.New("session not found")
	ErrParticipantNotInSession = errors.New("participant is not part of this session")
	ErrUnsupportedMethod       = errors.New("unsupported payment method")
)

// Service handles payment profile registration and share-link generation
type Service struct {
	repo     Repository
	sessions session.Repository
	bills    *bill.Service
}

// NewService creates a new payment service
func NewService(repo Repository, sessions session.Repository, bills *bill.Service) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		bills:    bills,
	}
}

// UpsertProfile registers (or replaces) a participant's handle for a method
func (s *Service) UpsertProfile(ctx context.Context, req *UpsertProfileRequest) (*Profile, error) {
	method := Method(strings.ToUpper(req.Method))
	if !method.Valid() {
		return nil, ErrUnsupportedMethod
	}

	sess, err := s.sessions.GetSessionByID(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	participant, err := s.sessions.GetParticipant(ctx, req.ParticipantID)
	if err != nil {
		return nil, err
	}
	if participant == nil || participant.SessionID != req.SessionID {
		return nil, ErrParticipantNotInSession
	}

	profile := &Profile{
		ID:            uuid.NewString(),
		SessionID:     req.SessionID,
		ParticipantID: req.ParticipantID,
		Method:        method,
		Handle:        strings.TrimSpace(req.Handle),
	}
	if err := s.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ListProfiles retrieves a session's registered payment profiles
func (s *Service) ListProfiles(ctx context.Context, sessionID string) ([]*Profile, error) {
	sess, err := s.sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return s.repo.ListBySession(ctx, sessionID)
}

// DeleteProfile removes a registered payment profile
func (s *Service) DeleteProfile(ctx context.Context, id string) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return ErrProfileNotFound
	}
	return nil
}

// SettlementLinks turns the session's settle-up plan into shareable payment
// reminders. Each transfer becomes one link; when the creditor registered a
// payment profile, the reminder names the channel and handle to pay to.
func (s *Service) SettlementLinks(ctx context.Context, sessionID string) ([]*Link, error) {
	sess, err := s.sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}

	summary, err := s.bills.Summary(ctx, sessionID)
	if err != nil {
		if errors.Is(err, bill.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	profiles, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	profileByParticipant := make(map[string]*Profile, len(profiles))
	for _, p := range profiles {
		// First registered profile wins; participants rarely have more
		// than one and the order is stable (creation order).
		if _, ok := profileByParticipant[p.ParticipantID]; !ok {
			profileByParticipant[p.ParticipantID] = p
		}
	}

	links := make([]*Link, len(summary.Transfers))
	for i, transfer := range summary.Transfers {
		links[i] = s.buildLink(sess.Name, transfer, profileByParticipant[transfer.To])
	}
	return links, nil
}

func (s *Service) buildLink(sessionName string, transfer split.Transfer, profile *Profile) *Link {
	link := &Link{
		FromParticipant: transfer.From,
		FromName:        transfer.FromName,
		ToParticipant:   transfer.To,
		ToName:          transfer.ToName,
		Amount:          transfer.Amount,
	}

	message := fmt.Sprintf("Hi %s! You owe %s %s for %q.",
		transfer.FromName, transfer.ToName, FormatRM(transfer.Amount), sessionName)
	if profile != nil {
		link.Method = profile.Method
		link.MethodLabel = profile.Method.Label()
		link.Handle = profile.Handle
		message = fmt.Sprintf("%s Pay via %s: %s", message, profile.Method.Label(), profile.Handle)
	}

	link.Message = message
	link.ShareURL = "https://wa.me/?text=" + url.QueryEscape(message)
	return link
}

// FormatRM renders an amount as a Malaysian Ringgit display string,
// e.g. "RM 1,234.56". Negative amounts keep their sign ahead of the digits.
func FormatRM(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	whole := fmt.Sprintf("%.2f", amount)
	dot := strings.Index(whole, ".")
	intPart, fracPart := whole[:dot], whole[dot:]

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return fmt.Sprintf("RM %s%s%s", sign, grouped.String(), fracPart)
}

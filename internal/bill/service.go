package bill

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/azmirfakkri/jomsplit/internal/bill/split"
	"github.com/azmirfakkri/jomsplit/internal/session"
	"github.com/azmirfakkri/jomsplit/internal/tax"
)

// Common errors
var (
	ErrItemNotFound       = errors.New("bill item not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrPayerNotInSession  = errors.New("payer is not a participant of this session")
	ErrSharerNotInSession = errors.New("shared_by references a participant not in this session")
)

// Service handles bill item business logic and session calculations
type Service struct {
	repo     Repository
	sessions session.Repository
	engine   split.Engine
}

// NewService creates a new bill service with dependencies injected
func NewService(repo Repository, sessions session.Repository, engine split.Engine) *Service {
	return &Service{
		repo:     repo,
		sessions: sessions,
		engine:   engine,
	}
}

// CreateItem creates a new bill item after validating its participant
// references against the session's current roster.
func (s *Service) CreateItem(ctx context.Context, req *CreateItemRequest) (*Item, error) {
	participants, err := s.sessionParticipants(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	sharedBy := dedupe(req.SharedBy)
	if err := validateReferences(participants, req.PaidBy, sharedBy); err != nil {
		return nil, err
	}

	item := &Item{
		ID:          uuid.NewString(),
		SessionID:   req.SessionID,
		Name:        strings.TrimSpace(req.Name),
		TotalAmount: req.TotalAmount,
		PaidBy:      req.PaidBy,
		SharedBy:    sharedBy,
		HasSST:      req.HasSST,
	}
	item.Recalculate(s.engine.Config().SSTRate)

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItemByID retrieves a bill item
func (s *Service) GetItemByID(ctx context.Context, id string) (*Item, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	item.Recalculate(s.engine.Config().SSTRate)
	return item, nil
}

// ListBySession retrieves all items of a session
func (s *Service) ListBySession(ctx context.Context, sessionID string) ([]*Item, error) {
	if _, err := s.sessionParticipants(ctx, sessionID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListItemsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		item.Recalculate(s.engine.Config().SSTRate)
	}
	return items, nil
}

// UpdateItem applies a partial update and recomputes the derived fields
func (s *Service) UpdateItem(ctx context.Context, id string, req *UpdateItemRequest) (*Item, error) {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.TotalAmount != nil {
		item.TotalAmount = *req.TotalAmount
	}
	if req.PaidBy != nil {
		item.PaidBy = *req.PaidBy
	}
	if req.SharedBy != nil {
		item.SharedBy = dedupe(*req.SharedBy)
	}
	if req.HasSST != nil {
		item.HasSST = *req.HasSST
	}

	participants, err := s.sessionParticipants(ctx, item.SessionID)
	if err != nil {
		return nil, err
	}
	if err := validateReferences(participants, item.PaidBy, item.SharedBy); err != nil {
		return nil, err
	}

	item.Recalculate(s.engine.Config().SSTRate)
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes a bill item
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	item, err := s.repo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}
	return s.repo.DeleteItem(ctx, id)
}

// Quote previews a bill's tax-inclusive total under the configured rates,
// without touching any session. It backs the standalone calculator flow
// where people check a restaurant total before anyone enters items.
func (s *Service) Quote(req *QuoteRequest) *QuoteResponse {
	items := make([]tax.Item, len(req.Items))
	for i, line := range req.Items {
		items[i] = tax.Item{
			Amount:           line.Amount,
			HasSST:           line.HasSST,
			HasServiceCharge: line.HasServiceCharge,
			Exempt:           line.Exempt,
		}
	}

	cfg := s.engine.Config()
	return &QuoteResponse{
		Breakdown: tax.CalculateWithRates(items, cfg.SSTRate, cfg.ServiceChargeRate),
	}
}

// Summary runs the split engine over the session's current snapshot and
// returns balances, session totals and the settle-up plan.
func (s *Service) Summary(ctx context.Context, sessionID string) (*SummaryResponse, error) {
	participants, err := s.sessionParticipants(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.ListItemsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	splitParticipants := make([]split.Participant, len(participants))
	for i, p := range participants {
		splitParticipants[i] = split.Participant{ID: p.ID, Name: p.Name}
	}
	splitItems := make([]split.Item, len(items))
	for i, item := range items {
		splitItems[i] = item.ToSplitItem()
	}

	result := s.engine.Calculate(splitParticipants, splitItems)
	if err := split.ValidateResult(result); err != nil {
		// Rounding drift within tolerance never lands here; a failure
		// means degenerate input amounts slipped past validation.
		slog.Warn("session balances violate accounting invariants",
			"session_id", sessionID, "error", err)
	}

	transfers := s.engine.SettlementTransfers(result.Balances)
	if transfers == nil {
		transfers = []split.Transfer{}
	}

	return &SummaryResponse{
		SessionID: sessionID,
		Config:    s.engine.Config(),
		Result:    result,
		Transfers: transfers,
	}, nil
}

func (s *Service) sessionParticipants(ctx context.Context, sessionID string) ([]*session.Participant, error) {
	sess, err := s.sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return s.sessions.ListParticipants(ctx, sessionID)
}

func validateReferences(participants []*session.Participant, paidBy string, sharedBy []string) error {
	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p.ID] = true
	}

	if !known[paidBy] {
		return ErrPayerNotInSession
	}
	for _, id := range sharedBy {
		if !known[id] {
			return ErrSharerNotInSession
		}
	}
	return nil
}

// dedupe collapses duplicate participant IDs, preserving first-seen order
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

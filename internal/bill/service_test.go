package bill

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azmirfakkri/jomsplit/internal/bill/split"
	"github.com/azmirfakkri/jomsplit/internal/session"
)

type fixture struct {
	svc      *Service
	sessions *session.Service
	sess     *session.Session
	aisyah   *session.Participant
	ben      *session.Participant
	chong    *session.Participant
}

func newFixture(t *testing.T, cfg split.Config) *fixture {
	t.Helper()
	ctx := context.Background()

	sessionRepo := session.NewMemoryRepository()
	sessions := session.NewService(sessionRepo)
	svc := NewService(NewMemoryRepository(), sessionRepo, split.New(cfg))

	sess, err := sessions.Create(ctx, "device-1", &session.CreateSessionRequest{Name: "Mamak Night"})
	require.NoError(t, err)

	f := &fixture{svc: svc, sessions: sessions, sess: sess}
	f.aisyah = f.addParticipant(t, "Aisyah")
	f.ben = f.addParticipant(t, "Ben")
	f.chong = f.addParticipant(t, "Chong")
	return f
}

func (f *fixture) addParticipant(t *testing.T, name string) *session.Participant {
	t.Helper()
	p, err := f.sessions.AddParticipant(context.Background(), f.sess.ID, &session.AddParticipantRequest{Name: name})
	require.NoError(t, err)
	return p
}

func TestCreateItem(t *testing.T) {
	f := newFixture(t, split.SSTOnlyConfig())
	ctx := context.Background()

	item, err := f.svc.CreateItem(ctx, &CreateItemRequest{
		SessionID:   f.sess.ID,
		Name:        "  Drinks ",
		TotalAmount: 15,
		PaidBy:      f.ben.ID,
		SharedBy:    []string{f.ben.ID, f.chong.ID, f.chong.ID},
		HasSST:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Drinks", item.Name)
	assert.Equal(t, []string{f.ben.ID, f.chong.ID}, item.SharedBy, "duplicate sharers collapse")
	assert.InDelta(t, 0.90, item.SSTAmount, 1e-9)
	assert.InDelta(t, 7.50, item.PerPersonAmount, 1e-9)
}

func TestCreateItemValidatesReferences(t *testing.T) {
	f := newFixture(t, split.SSTOnlyConfig())
	ctx := context.Background()

	_, err := f.svc.CreateItem(ctx, &CreateItemRequest{
		SessionID: f.sess.ID, Name: "Pizza", TotalAmount: 30,
		PaidBy: "stranger", SharedBy: []string{f.aisyah.ID},
	})
	assert.ErrorIs(t, err, ErrPayerNotInSession)

	_, err = f.svc.CreateItem(ctx, &CreateItemRequest{
		SessionID: f.sess.ID, Name: "Pizza", TotalAmount: 30,
		PaidBy: f.aisyah.ID, SharedBy: []string{"stranger"},
	})
	assert.ErrorIs(t, err, ErrSharerNotInSession)

	_, err = f.svc.CreateItem(ctx, &CreateItemRequest{
		SessionID: "missing", Name: "Pizza", TotalAmount: 30,
		PaidBy: f.aisyah.ID, SharedBy: []string{f.aisyah.ID},
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUpdateItemPartial(t *testing.T) {
	f := newFixture(t, split.SSTOnlyConfig())
	ctx := context.Background()

	item, err := f.svc.CreateItem(ctx, &CreateItemRequest{
		SessionID: f.sess.ID, Name: "Pizza", TotalAmount: 30,
		PaidBy: f.aisyah.ID, SharedBy: []string{f.aisyah.ID, f.ben.ID, f.chong.ID},
	})
	require.NoError(t, err)

	newAmount := 45.0
	hasSST := true
	updated, err := f.svc.UpdateItem(ctx, item.ID, &UpdateItemRequest{
		TotalAmount: &newAmount,
		HasSST:      &hasSST,
	})
	require.NoError(t, err)

	assert.Equal(t, "Pizza", updated.Name, "untouched fields survive")
	assert.InDelta(t, 45.0, updated.TotalAmount, 1e-9)
	assert.InDelta(t, 2.70, updated.SSTAmount, 1e-9)
	assert.InDelta(t, 15.00, updated.PerPersonAmount, 1e-9)

	badPayer := "stranger"
	_, err = f.svc.UpdateItem(ctx, item.ID, &UpdateItemRequest{PaidBy: &badPayer})
	assert.ErrorIs(t, err, ErrPayerNotInSession)
}

func TestDeleteItem(t *testing.T) {
	f := newFixture(t, split.SSTOnlyConfig())
	ctx := context.Background()

	item, err := f.svc.CreateItem(ctx, &CreateItemRequest{
		SessionID: f.sess.ID, Name: "Pizza", TotalAmount: 30,
		PaidBy: f.aisyah.ID, SharedBy: []string{f.aisyah.ID},
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteItem(ctx, item.ID))
	assert.ErrorIs(t, f.svc.DeleteItem(ctx, item.ID), ErrItemNotFound)

	_, err = f.svc.GetItemByID(ctx, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSummary(t *testing.T) {
	f := newFixture(t, split.SSTOnlyConfig())
	ctx := context.Background()

	_, err := f.svc.CreateItem(ctx, &CreateItemRequest{
		SessionID: f.sess.ID, Name: "Pizza", TotalAmount: 30,
		PaidBy: f.aisyah.ID, SharedBy: []string{f.aisyah.ID, f.ben.ID, f.chong.ID},
	})
	require.NoError(t, err)
	_, err = f.svc.CreateItem(ctx, &CreateItemRequest{
		SessionID: f.sess.ID, Name: "Drinks", TotalAmount: 15,
		PaidBy: f.ben.ID, SharedBy: []string{f.ben.ID, f.chong.ID}, HasSST: true,
	})
	require.NoError(t, err)

	summary, err := f.svc.Summary(ctx, f.sess.ID)
	require.NoError(t, err)

	assert.Equal(t, f.sess.ID, summary.SessionID)
	assert.Equal(t, 2, summary.Result.Summary.ItemCount)
	require.Len(t, summary.Result.Balances, 3)

	byID := map[string]split.Balance{}
	for _, b := range summary.Result.Balances {
		byID[b.ParticipantID] = b
	}
	assert.InDelta(t, -20.00, byID[f.aisyah.ID].Net, 1e-9)
	assert.InDelta(t, 2.05, byID[f.ben.ID].Net, 1e-9)
	assert.InDelta(t, 17.95, byID[f.chong.ID].Net, 1e-9)

	require.Len(t, summary.Transfers, 2)
	assert.Equal(t, f.chong.ID, summary.Transfers[0].From)
	assert.Equal(t, f.aisyah.ID, summary.Transfers[0].To)
	assert.InDelta(t, 17.95, summary.Transfers[0].Amount, 1e-9)
}

func TestSummaryEmptySession(t *testing.T) {
	f := newFixture(t, split.DefaultConfig())
	ctx := context.Background()

	summary, err := f.svc.Summary(ctx, f.sess.ID)
	require.NoError(t, err)

	assert.Zero(t, summary.Result.Summary.ItemCount)
	assert.NotNil(t, summary.Transfers)
	assert.Empty(t, summary.Transfers)

	_, err = f.svc.Summary(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestQuote(t *testing.T) {
	f := newFixture(t, split.DefaultConfig())

	resp := f.svc.Quote(&QuoteRequest{Items: []QuoteItemRequest{
		{Amount: 100, HasSST: true, HasServiceCharge: true},
		{Amount: 50, Exempt: true},
	}})

	assert.InDelta(t, 150.00, resp.Breakdown.Subtotal, 1e-9)
	assert.InDelta(t, 10.00, resp.Breakdown.ServiceCharge, 1e-9)
	assert.InDelta(t, 6.60, resp.Breakdown.SST, 1e-9)
	assert.InDelta(t, 166.60, resp.Breakdown.Total, 1e-9)
}

package settlement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azmirfakkri/jomsplit/internal/bill"
	"github.com/azmirfakkri/jomsplit/internal/bill/split"
	"github.com/azmirfakkri/jomsplit/internal/session"
)

type fixture struct {
	svc      *Service
	sessions *session.Service
	bills    *bill.Service
	sess     *session.Session
	aisyah   *session.Participant
	ben      *session.Participant
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	sessionRepo := session.NewMemoryRepository()
	sessions := session.NewService(sessionRepo)
	bills := bill.NewService(bill.NewMemoryRepository(), sessionRepo, split.New(split.SSTOnlyConfig()))
	svc := NewService(NewMemoryRepository(), sessionRepo, bills)

	sess, err := sessions.Create(ctx, "device-1", &session.CreateSessionRequest{Name: "Mamak Night"})
	require.NoError(t, err)

	aisyah, err := sessions.AddParticipant(ctx, sess.ID, &session.AddParticipantRequest{Name: "Aisyah"})
	require.NoError(t, err)
	ben, err := sessions.AddParticipant(ctx, sess.ID, &session.AddParticipantRequest{Name: "Ben"})
	require.NoError(t, err)

	return &fixture{svc: svc, sessions: sessions, bills: bills, sess: sess, aisyah: aisyah, ben: ben}
}

func TestRecordSettlement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	settlement, err := f.svc.Record(ctx, &RecordSettlementRequest{
		SessionID:       f.sess.ID,
		FromParticipant: f.ben.ID,
		ToParticipant:   f.aisyah.ID,
		Amount:          12.345,
		Method:          "DUITNOW",
		Note:            "dinner",
	})
	require.NoError(t, err)

	assert.InDelta(t, 12.35, settlement.Amount, 1e-9, "amounts are stored to the sen")
	assert.Equal(t, "Ben", settlement.FromName)
	assert.Equal(t, "Aisyah", settlement.ToName)
}

func TestRecordSettlementValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Record(ctx, &RecordSettlementRequest{
		SessionID: f.sess.ID, FromParticipant: f.ben.ID, ToParticipant: f.ben.ID, Amount: 5,
	})
	assert.ErrorIs(t, err, ErrCannotSettleSelf)

	_, err = f.svc.Record(ctx, &RecordSettlementRequest{
		SessionID: f.sess.ID, FromParticipant: "stranger", ToParticipant: f.aisyah.ID, Amount: 5,
	})
	assert.ErrorIs(t, err, ErrParticipantNotInSession)

	_, err = f.svc.Record(ctx, &RecordSettlementRequest{
		SessionID: "missing", FromParticipant: f.ben.ID, ToParticipant: f.aisyah.ID, Amount: 5,
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestListBySessionResolvesNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Record(ctx, &RecordSettlementRequest{
		SessionID: f.sess.ID, FromParticipant: f.ben.ID, ToParticipant: f.aisyah.ID, Amount: 10,
	})
	require.NoError(t, err)

	require.NoError(t, f.sessions.RemoveParticipant(ctx, f.sess.ID, f.ben.ID))

	settlements, err := f.svc.ListBySession(ctx, f.sess.ID)
	require.NoError(t, err)
	require.Len(t, settlements, 1)

	assert.Empty(t, settlements[0].FromName, "removed participants resolve to no name")
	assert.Equal(t, "Aisyah", settlements[0].ToName)
}

func TestDeleteSettlement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	settlement, err := f.svc.Record(ctx, &RecordSettlementRequest{
		SessionID: f.sess.ID, FromParticipant: f.ben.ID, ToParticipant: f.aisyah.ID, Amount: 10,
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, settlement.ID))
	assert.ErrorIs(t, f.svc.Delete(ctx, settlement.ID), ErrSettlementNotFound)
}

func TestPlan(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.bills.CreateItem(ctx, &bill.CreateItemRequest{
		SessionID: f.sess.ID, Name: "Pizza", TotalAmount: 30,
		PaidBy: f.aisyah.ID, SharedBy: []string{f.aisyah.ID, f.ben.ID},
	})
	require.NoError(t, err)

	plan, err := f.svc.Plan(ctx, f.sess.ID)
	require.NoError(t, err)

	require.Len(t, plan.Transfers, 1)
	assert.Equal(t, f.ben.ID, plan.Transfers[0].From)
	assert.Equal(t, f.aisyah.ID, plan.Transfers[0].To)
	assert.InDelta(t, 15.00, plan.Transfers[0].Amount, 1e-9)

	_, err = f.svc.Plan(ctx, "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

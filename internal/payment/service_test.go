package payment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/azmirfakkri/jomsplit/internal/bill"
	"github.com/azmirfakkri/jomsplit/internal/bill/split"
	"github.com/azmirfakkri/jomsplit/internal/session"
)

type fixture struct {
	svc    *Service
	bills  *bill.Service
	sess   *session.Session
	aisyah *session.Participant
	ben    *session.Participant
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

	return &fixture{svc: svc, bills: bills, sess: sess, aisyah: aisyah, ben: ben}
}

func TestUpsertProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	profile, err := f.svc.UpsertProfile(ctx, &UpsertProfileRequest{
		SessionID:     f.sess.ID,
		ParticipantID: f.aisyah.ID,
		Method:        "tng",
		Handle:        " 012-345 6789 ",
	})
	require.NoError(t, err)

	assert.Equal(t, MethodTNG, profile.Method, "method is normalised to upper case")
	assert.Equal(t, "012-345 6789", profile.Handle)

	// Re-registering the same method replaces the handle.
	replaced, err := f.svc.UpsertProfile(ctx, &UpsertProfileRequest{
		SessionID:     f.sess.ID,
		ParticipantID: f.aisyah.ID,
		Method:        "TNG",
		Handle:        "019-888 7777",
	})
	require.NoError(t, err)

	profiles, err := f.svc.ListProfiles(ctx, f.sess.ID)
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, replaced.Handle, profiles[0].Handle)
}

func TestUpsertProfileValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.UpsertProfile(ctx, &UpsertProfileRequest{
		SessionID: f.sess.ID, ParticipantID: f.aisyah.ID, Method: "PAYPAL", Handle: "x",
	})
	assert.ErrorIs(t, err, ErrUnsupportedMethod)

	_, err = f.svc.UpsertProfile(ctx, &UpsertProfileRequest{
		SessionID: "missing", ParticipantID: f.aisyah.ID, Method: "TNG", Handle: "x",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = f.svc.UpsertProfile(ctx, &UpsertProfileRequest{
		SessionID: f.sess.ID, ParticipantID: "stranger", Method: "TNG", Handle: "x",
	})
	assert.ErrorIs(t, err, ErrParticipantNotInSession)
}

func TestDeleteProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	profile, err := f.svc.UpsertProfile(ctx, &UpsertProfileRequest{
		SessionID: f.sess.ID, ParticipantID: f.aisyah.ID, Method: "DUITNOW", Handle: "0123456789",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteProfile(ctx, profile.ID))
	assert.ErrorIs(t, f.svc.DeleteProfile(ctx, profile.ID), ErrProfileNotFound)
}

func TestSettlementLinks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.bills.CreateItem(ctx, &bill.CreateItemRequest{
		SessionID: f.sess.ID, Name: "Pizza", TotalAmount: 30,
		PaidBy: f.aisyah.ID, SharedBy: []string{f.aisyah.ID, f.ben.ID},
	})
	require.NoError(t, err)

	_, err = f.svc.UpsertProfile(ctx, &UpsertProfileRequest{
		SessionID: f.sess.ID, ParticipantID: f.aisyah.ID, Method: "TNG", Handle: "012-3456789",
	})
	require.NoError(t, err)

	links, err := f.svc.SettlementLinks(ctx, f.sess.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)

	link := links[0]
	assert.Equal(t, f.ben.ID, link.FromParticipant)
	assert.Equal(t, f.aisyah.ID, link.ToParticipant)
	assert.InDelta(t, 15.00, link.Amount, 1e-9)
	assert.Equal(t, MethodTNG, link.Method)

	assert.Equal(t, `Hi Ben! You owe Aisyah RM 15.00 for "Mamak Night". Pay via Touch 'n Go eWallet: 012-3456789`, link.Message)
	assert.True(t, strings.HasPrefix(link.ShareURL, "https://wa.me/?text="), "share URL targets WhatsApp")
	assert.NotContains(t, link.ShareURL[len("https://wa.me/?text="):], " ", "message is URL-escaped")
}

func TestSettlementLinksWithoutProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.bills.CreateItem(ctx, &bill.CreateItemRequest{
		SessionID: f.sess.ID, Name: "Pizza", TotalAmount: 30,
		PaidBy: f.aisyah.ID, SharedBy: []string{f.aisyah.ID, f.ben.ID},
	})
	require.NoError(t, err)

	links, err := f.svc.SettlementLinks(ctx, f.sess.ID)
	require.NoError(t, err)
	require.Len(t, links, 1)

	assert.Empty(t, links[0].Method)
	assert.Equal(t, `Hi Ben! You owe Aisyah RM 15.00 for "Mamak Night".`, links[0].Message)
}

func TestMethods(t *testing.T) {
	for _, m := range Methods() {
		assert.True(t, m.Valid())
		assert.NotEqual(t, string(m), m.Label(), "every supported method has a display label")
	}
	assert.False(t, Method("PAYPAL").Valid())
	assert.Equal(t, "PAYPAL", Method("PAYPAL").Label())
}

func TestFormatRM(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "RM 0.00"},
		{15, "RM 15.00"},
		{7.5, "RM 7.50"},
		{1234.56, "RM 1,234.56"},
		{1234567.89, "RM 1,234,567.89"},
		{-42.1, "RM -42.10"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatRM(tc.amount))
	}
}

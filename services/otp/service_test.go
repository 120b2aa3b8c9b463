package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingMailer records the last code handed to it instead of sending email.
type capturingMailer struct {
	lastEmail string
	lastCode  string
	fail      bool
}

func (m *capturingMailer) SendOTPEmail(_ context.Context, email, code string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.lastEmail = email
	m.lastCode = code
	return nil
}

func newTestOTPService(t *testing.T) (*DefaultOTPService, *miniredis.Miniredis, *capturingMailer) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mailer := &capturingMailer{}
	return &DefaultOTPService{Store: client, Mailer: mailer}, mr, mailer
}

func TestSendAndVerify(t *testing.T) {
	svc, _, mailer := newTestOTPService(t)
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "Traveler@Example.com"))
	assert.Equal(t, "traveler@example.com", mailer.lastEmail)
	require.Len(t, mailer.lastCode, 6)

	require.NoError(t, svc.Verify(ctx, "traveler@example.com", mailer.lastCode))

	verified, err := svc.IsEmailVerified("traveler@example.com")
	require.NoError(t, err)
	assert.True(t, verified)

	// The code is consumed on success.
	err = svc.Verify(ctx, "traveler@example.com", mailer.lastCode)
	assert.ErrorIs(t, err, ErrNoOTP)
}

func TestSendRejectsInvalidEmail(t *testing.T) {
	svc, _, _ := newTestOTPService(t)
	err := svc.Send(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestVerifyWrongCode(t *testing.T) {
	svc, _, mailer := newTestOTPService(t)
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "traveler@example.com"))

	wrong := "000000"
	if mailer.lastCode == wrong {
		wrong = "000001"
	}
	err := svc.Verify(ctx, "traveler@example.com", wrong)
	assert.ErrorIs(t, err, ErrMismatch)

	verified, err := svc.IsEmailVerified("traveler@example.com")
	require.NoError(t, err)
	assert.False(t, verified)
}

func TestVerifyWithoutPendingCode(t *testing.T) {
	svc, _, _ := newTestOTPService(t)
	err := svc.Verify(context.Background(), "traveler@example.com", "123456")
	assert.ErrorIs(t, err, ErrNoOTP)
}

func TestResendInsideCooldownRejected(t *testing.T) {
	svc, mr, mailer := newTestOTPService(t)
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "traveler@example.com"))
	first := mailer.lastCode

	var cooldown CooldownError
	err := svc.Send(ctx, "traveler@example.com")
	require.ErrorAs(t, err, &cooldown)
	assert.Greater(t, cooldown.Remaining, time.Duration(0))

	// The pending code survives the rejected resend.
	require.NoError(t, svc.Verify(ctx, "traveler@example.com", first))

	// After the cooldown lapses, resend succeeds.
	mr.FastForward(46 * time.Second)
	require.NoError(t, svc.Send(ctx, "traveler@example.com"))
}

func TestCodeExpires(t *testing.T) {
	svc, mr, mailer := newTestOTPService(t)
	ctx := context.Background()

	require.NoError(t, svc.Send(ctx, "traveler@example.com"))
	mr.FastForward(6 * time.Minute)

	err := svc.Verify(ctx, "traveler@example.com", mailer.lastCode)
	assert.ErrorIs(t, err, ErrNoOTP)
}

package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"tourmate/config"
	"tourmate/services/notification"
	"tourmate/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	codeTTL     = 5 * time.Minute
	cooldownTTL = 45 * time.Second
	// verifiedTTL is how long a successful verification stays valid for
	// registration to consume.
	verifiedTTL = 30 * time.Minute

	codeKeyPrefix     = "otp:code:"
	cooldownKeyPrefix = "otp:cooldown:"
	verifiedKeyPrefix = "otp:verified:"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Domain errors mapped by handlers onto distinct HTTP statuses.
var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrNoOTP        = errors.New("no OTP found or already verified")
	ErrMismatch     = errors.New("invalid OTP code")
)

// CooldownError reports a resend attempted inside the per-email cooldown window.
type CooldownError struct {
	Remaining time.Duration
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("please wait %d seconds before requesting a new OTP", int(e.Remaining.Seconds()+0.999))
}

// OTPService issues and verifies email verification codes. State lives in an
// injected Redis store, never in process-global memory.
type OTPService interface {
	Send(ctx context.Context, email string) error
	Verify(ctx context.Context, email, code string) error
	IsEmailVerified(email string) (bool, error)
}

// DefaultOTPService is the production implementation. Codes are stored bcrypt-hashed
// with a 5-minute TTL; a per-email cooldown key throttles resends.
type DefaultOTPService struct {
	Store  *redis.Client
	Mailer notification.Mailer
}

// Send generates a 6-digit code, stores its hash and emails it to the address.
func (s *DefaultOTPService) Send(ctx context.Context, email string) error {
	email = strings.ToLower(email)
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	// Per-email resend cooldown.
	remaining, err := s.Store.TTL(ctx, cooldownKeyPrefix+email).Result()
	if err != nil {
		return fmt.Errorf("failed to check OTP cooldown: %w", err)
	}
	if remaining > 0 {
		return CooldownError{Remaining: remaining}
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}

	if err := s.Store.Set(ctx, codeKeyPrefix+email, string(hashed), codeTTL).Err(); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	if err := s.Store.Set(ctx, cooldownKeyPrefix+email, "1", cooldownTTL).Err(); err != nil {
		return fmt.Errorf("failed to set OTP cooldown: %w", err)
	}

	if err := s.Mailer.SendOTPEmail(ctx, email, code); err != nil {
		// The code is already stored; surface the failure but keep the state so a
		// delivered-but-slow email can still be verified.
		utils.GetLogger().Error("Failed to send OTP email", zap.String("email", email), zap.Error(err))
		if !config.IsProduction() {
			utils.GetLogger().Sugar().Infof("[DEV] OTP for %s: %s", email, code)
			return nil
		}
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

// Verify compares the provided code against the stored hash. On success the code is
// consumed and the email is marked verified for registration.
func (s *DefaultOTPService) Verify(ctx context.Context, email, code string) error {
	email = strings.ToLower(email)
	if email == "" || code == "" {
		return ErrNoOTP
	}

	stored, err := s.Store.Get(ctx, codeKeyPrefix+email).Result()
	if err != nil {
		if err == redis.Nil {
			return ErrNoOTP
		}
		return fmt.Errorf("failed to retrieve OTP: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(code)) != nil {
		return ErrMismatch
	}

	if err := s.Store.Del(ctx, codeKeyPrefix+email).Err(); err != nil {
		utils.GetLogger().Error("Failed to delete OTP after verification", zap.Error(err))
	}
	if err := s.Store.Set(ctx, verifiedKeyPrefix+email, "1", verifiedTTL).Err(); err != nil {
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	return nil
}

// IsEmailVerified reports whether the email completed OTP verification recently.
func (s *DefaultOTPService) IsEmailVerified(email string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := s.Store.Exists(ctx, verifiedKeyPrefix+strings.ToLower(email)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check email verification: %w", err)
	}
	return n > 0, nil
}

// generateCode returns a 6-digit numeric code from a CSPRNG.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

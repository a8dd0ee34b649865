package passwordreset

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/employee"
	reseterrors "github.com/Assetizer-RealTech-Private-Limited/ERP/internal/passwordreset/errors"
	"github.com/Assetizer-RealTech-Private-Limited/ERP/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	otpValidity = 10 * time.Minute
	otpDigits   = 6

	mailSubject = "Password Reset OTP - Assetizer Realtech"
)

// Notifier is the out-of-band delivery channel. A false return means
// undelivered; the flow degrades instead of failing.
type Notifier interface {
	Send(to, subject, body string) bool
}

//go:generate mockgen -source=passwordreset_service.go -destination=mock/passwordreset_service_mock.go -package=mock
type Service interface {
	RequestOTP(ctx context.Context, email string) (ForgotPasswordResponse, error)
	VerifyOTP(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
	ListRequests(ctx context.Context) ([]ResetRequestResponse, error)
}

type service struct {
	employees employee.Repository
	store     ChallengeStore
	notifier  Notifier
	requests  RequestRepository
	logger    *zap.Logger
}

func NewService(
	employees employee.Repository,
	store ChallengeStore,
	notifier Notifier,
	requests RequestRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("passwordreset.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("passwordreset.service")
	}
	return &service{
		employees: employees,
		store:     store,
		notifier:  notifier,
		requests:  requests,
		logger:    l,
	}
}

func (s *service) RequestOTP(ctx context.Context, email string) (ForgotPasswordResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.employees.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ForgotPasswordResponse{}, reseterrors.ErrEmailNotFound
		}
		return ForgotPasswordResponse{}, err
	}

	code, err := generateOTP()
	if err != nil {
		return ForgotPasswordResponse{}, err
	}

	// Issuing replaces any prior unconsumed challenge for this address.
	ch := Challenge{
		Code:    code,
		Expires: time.Now().Add(otpValidity),
	}
	if err := s.store.Put(ctx, email, ch); err != nil {
		return ForgotPasswordResponse{}, err
	}

	delivered := false
	if s.notifier != nil {
		delivered = s.notifier.Send(email, mailSubject, otpMailBody(code))
	}

	s.recordRequest(ctx, email, delivered)

	if !delivered {
		s.logger.Warn("otp delivery failed, returning code inline",
			zap.String("request_id", rid),
			zap.String("email", email),
		)
		return ForgotPasswordResponse{
			Message: "OTP generated (email failed)",
			OTP:     code,
		}, nil
	}

	s.logger.Info("otp issued",
		zap.String("request_id", rid),
		zap.String("email", email),
	)
	return ForgotPasswordResponse{Message: "OTP sent to your email address"}, nil
}

func (s *service) VerifyOTP(ctx context.Context, email, code string) error {
	ch, err := s.store.Get(ctx, email)
	if err != nil {
		return err
	}
	if ch == nil {
		return reseterrors.ErrNoChallenge
	}

	if time.Now().After(ch.Expires) {
		if err := s.store.Delete(ctx, email); err != nil {
			s.logger.Warn("expired challenge cleanup failed", zap.String("email", email), zap.Error(err))
		}
		return reseterrors.ErrOTPExpired
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(ch.Code)) != 1 {
		return reseterrors.ErrOTPMismatch
	}

	// The challenge stays put: reset is what consumes it.
	return nil
}

func (s *service) ResetPassword(ctx context.Context, email, newPassword string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := s.employees.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return reseterrors.ErrEmailNotFound
		}
		return err
	}

	if err := s.employees.UpdatePasswordByEmail(ctx, email, newPassword); err != nil {
		return err
	}

	// Always clear, whether or not a challenge was outstanding.
	if err := s.store.Delete(ctx, email); err != nil {
		s.logger.Warn("challenge cleanup after reset failed", zap.String("email", email), zap.Error(err))
	}

	s.logger.Info("password reset",
		zap.String("request_id", rid),
		zap.String("email", email),
	)
	return nil
}

func (s *service) ListRequests(ctx context.Context) ([]ResetRequestResponse, error) {
	rows, err := s.requests.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]ResetRequestResponse, len(rows))
	for i, r := range rows {
		resp[i] = ResetRequestResponse{
			ID:          r.ID.String(),
			Email:       r.Email,
			Delivered:   r.Delivered,
			RequestedAt: r.RequestedAt.Format(time.RFC3339),
		}
	}
	return resp, nil
}

// recordRequest appends the audit row; the issue flow never fails on it.
func (s *service) recordRequest(ctx context.Context, email string, delivered bool) {
	if s.requests == nil {
		return
	}
	row := &ResetRequest{
		ID:          uuid.New(),
		Email:       email,
		Delivered:   delivered,
		RequestedAt: time.Now(),
	}
	if err := s.requests.Create(ctx, row); err != nil {
		s.logger.Warn("reset request audit write failed", zap.String("email", email), zap.Error(err))
	}
}

func generateOTP() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n), nil
}

func otpMailBody(code string) string {
	return fmt.Sprintf(`Dear Employee,

Your OTP for password reset is: %s

This OTP is valid for 10 minutes only.

If you did not request this OTP, please ignore this email.

Best regards,
Assetizer Realtech Team
`, code)
}

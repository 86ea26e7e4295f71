package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-identity/internal/logger"
	"github.com/sbilibin2017/gw-identity/internal/models"
	"github.com/sbilibin2017/gw-identity/internal/repositories"
)

// PendingOptions configures resend throttling.
type PendingOptions struct {
	ResendMinDelay    time.Duration
	ResendMaxAttempts int
	Now               func() time.Time
}

// PendingRegistrationService owns pending registrations from signup to
// promotion or abandonment.
type PendingRegistrationService struct {
	tx            TxManager
	userReader    UserReader
	userWriter    UserWriter
	pendingReader PendingReader
	pendingWriter PendingWriter
	hasher        PasswordHasher
	tokens        VerificationTokens
	opts          PendingOptions
}

func NewPendingRegistrationService(
	tx TxManager,
	userReader UserReader,
	userWriter UserWriter,
	pendingReader PendingReader,
	pendingWriter PendingWriter,
	hasher PasswordHasher,
	tokens VerificationTokens,
	opts PendingOptions,
) *PendingRegistrationService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &PendingRegistrationService{
		tx:            tx,
		userReader:    userReader,
		userWriter:    userWriter,
		pendingReader: pendingReader,
		pendingWriter: pendingWriter,
		hasher:        hasher,
		tokens:        tokens,
		opts:          opts,
	}
}

// CreatePending stores a new pending registration and returns its
// verification token.
func (s *PendingRegistrationService) CreatePending(ctx context.Context, email, loginID, password, nickname string) (string, error) {
	var token string

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		exists, err := s.userReader.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return ErrEmailAlreadyExists
		}

		exists, err = s.userReader.ExistsByLoginID(ctx, loginID)
		if err != nil {
			return err
		}
		if exists {
			return ErrLoginIDAlreadyExists
		}

		exists, err = s.pendingReader.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return ErrRegistrationPending
		}

		hash, err := s.hasher.Hash(password)
		if err != nil {
			return err
		}
		code, err := randomHex(verificationCodeBytes)
		if err != nil {
			return err
		}

		now := s.opts.Now()
		err = s.pendingWriter.Create(ctx, &models.PendingRegistrationDB{
			Email:        email,
			LoginID:      loginID,
			Nickname:     nickname,
			PasswordHash: hash,
			Code:         code,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return ErrRegistrationPending
		}
		if err != nil {
			return err
		}

		token, err = s.tokens.IssueEmailVerification(ctx, models.EmailVerificationPayload{Email: email, Code: code})
		return err
	})
	if err != nil {
		logger.Log.Warnw("failed to create pending registration", "email", email, "error", err)
		return "", err
	}

	logger.Log.Infow("pending registration created", "email", email)
	return token, nil
}

// Resend regenerates the verification code of a pending registration,
// invalidating every token issued before.
func (s *PendingRegistrationService) Resend(ctx context.Context, email string) (string, error) {
	var token string

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		p, err := s.pendingReader.GetByEmailForUpdate(ctx, email)
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPendingNotFound
		}
		if err != nil {
			return err
		}

		if p.ResendCount >= s.opts.ResendMaxAttempts {
			return ErrResendLimitReached
		}
		now := s.opts.Now()
		if now.Sub(p.UpdatedAt) < s.opts.ResendMinDelay {
			return ErrResendTooSoon
		}

		code, err := randomHex(verificationCodeBytes)
		if err != nil {
			return err
		}
		if err := s.pendingWriter.UpdateCode(ctx, p.ID, code, now); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrPendingNotFound
			}
			return err
		}

		token, err = s.tokens.IssueEmailVerification(ctx, models.EmailVerificationPayload{Email: email, Code: code})
		return err
	})
	if err != nil {
		logger.Log.Warnw("failed to resend verification", "email", email, "error", err)
		return "", err
	}

	logger.Log.Infow("verification code regenerated", "email", email)
	return token, nil
}

// Verify promotes the pending registration named by token into a permanent
// user. Promotion and deletion of the pending record commit together.
func (s *PendingRegistrationService) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	payload, err := s.tokens.VerifyEmailVerification(ctx, token)
	if err != nil {
		logger.Log.Warnw("invalid email verification token", "error", err)
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		p, err := s.pendingReader.GetByEmailForUpdate(ctx, payload.Email)
		if errors.Is(err, repositories.ErrNotFound) {
			exists, err := s.userReader.ExistsByEmail(ctx, payload.Email)
			if err != nil {
				return err
			}
			if exists {
				return ErrAlreadyVerified
			}
			return ErrPendingNotFound
		}
		if err != nil {
			return err
		}

		if subtle.ConstantTimeCompare([]byte(p.Code), []byte(payload.Code)) != 1 {
			return ErrCodeMismatch
		}

		email := p.Email
		user, err := s.userWriter.CreateUser(ctx, &email, models.RoleUser)
		if err != nil {
			if errors.Is(err, repositories.ErrUniqueViolation) {
				return ErrEmailAlreadyExists
			}
			return err
		}
		if err := s.userWriter.CreateCredential(ctx, user.ID, p.LoginID, p.PasswordHash); err != nil {
			if errors.Is(err, repositories.ErrUniqueViolation) {
				return ErrLoginIDAlreadyExists
			}
			return err
		}
		if err := s.userWriter.CreateProfile(ctx, user.ID, p.Nickname, nil); err != nil {
			return err
		}
		if err := s.pendingWriter.DeleteByEmail(ctx, p.Email); err != nil {
			return err
		}

		id = user.UUID
		return nil
	})
	if err != nil {
		logger.Log.Warnw("failed to verify email", "email", payload.Email, "error", err)
		return uuid.Nil, err
	}

	logger.Log.Infow("pending registration promoted", "email", payload.Email, "uuid", id)
	return id, nil
}

// Abandon deletes the pending registration for email, if any.
func (s *PendingRegistrationService) Abandon(ctx context.Context, email string) error {
	if err := s.pendingWriter.DeleteByEmail(ctx, email); err != nil {
		logger.Log.Errorw("failed to abandon pending registration", "email", email, "error", err)
		return err
	}
	logger.Log.Infow("pending registration abandoned", "email", email)
	return nil
}

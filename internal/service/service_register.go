package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/store"
	"github.com/vnshop/identity/internal/utils"
	"github.com/vnshop/identity/internal/validators"
	"github.com/vnshop/identity/models"
)

// registerService is the concrete implementation of [RegisterService].
type registerService struct {
	directory  store.UserDirectory
	allocator  *UsernameAllocator
	dispatcher ConfirmationDispatcher
	validator  *validators.CredentialsValidator

	// frontendURL is the base for verification links embedded in
	// confirmation mails.
	frontendURL string

	logger *logger.Logger
}

// NewRegisterService constructs a [RegisterService]. frontendURL is the
// shop frontend base URL used when building verification links.
func NewRegisterService(directory store.UserDirectory, allocator *UsernameAllocator, dispatcher ConfirmationDispatcher, frontendURL string, log *logger.Logger) RegisterService {
	return &registerService{
		directory:   directory,
		allocator:   allocator,
		dispatcher:  dispatcher,
		validator:   validators.NewCredentialsValidator(),
		frontendURL: frontendURL,
		logger:      log,
	}
}

// Register creates an unverified account.
//
// The display name and username seed are the email local-part. The
// account row is created with email_verify=false and a fresh opaque
// verification key; the confirmation mail is then handed to the
// background dispatcher and is explicitly not part of this contract —
// registration succeeds even if the mail is dropped or delivery fails.
//
// A username allocation losing a race against a concurrent registration
// surfaces as a uniqueness conflict and is retried once with a fresh
// allocation; a conflict on the email itself is reported as
// [ErrEmailTaken].
func (s *registerService) Register(ctx context.Context, input models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.ValidateRegistration(input); err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}
	localPart := emailLocalPart(input.Email)

	if err := s.checkOwnership(ctx, input); err != nil {
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrInvalidDataProvided, err)
	}

	verifyKey := uuid.NewString()

	var phone sql.NullString
	if normalized := validators.NormalizePhone(input.Phone); normalized != "" {
		phone = sql.NullString{String: normalized, Valid: true}
	}

	var created models.User
	backoff := retry.WithMaxRetries(1, retry.NewConstant(50*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		username, err := s.allocator.Allocate(ctx, localPart)
		if err != nil {
			return err
		}

		user, err := s.directory.Create(ctx, models.User{
			Username:        username,
			Email:           input.Email,
			PasswordHash:    passwordHash,
			Phone:           phone,
			Name:            localPart,
			EmailVerified:   false,
			VerificationKey: sql.NullString{String: verifyKey, Valid: true},
		})
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return retry.RetryableError(err)
			}
			return err
		}

		created = user
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// The email pre-check passed, so a repeated conflict means a
			// concurrent registration for the same address won.
			return models.User{}, ErrEmailTaken
		}
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	s.dispatcher.Enqueue(created.Email, s.verificationLink(verifyKey))

	return created, nil
}

// checkOwnership rejects registrations for an email or phone that already
// owns an account. These pre-checks give friendly failures; the
// directory's unique constraints remain the final arbiter under races.
func (s *registerService) checkOwnership(ctx context.Context, input models.RegisterRequest) error {
	if _, err := s.directory.FindByEmail(ctx, input.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if normalized := validators.NormalizePhone(input.Phone); normalized != "" {
		if _, err := s.directory.FindOne(ctx, map[string]any{"phone": normalized}); err == nil {
			return ErrPhoneTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("user search by phone failed: %w", err)
		}
	}

	return nil
}

// VerifyEmail consumes a verification key.
//
// The lookup matches both the key and the unverified flag, so a key
// belonging to an already-verified account never matches: a second call
// with a consumed key returns false rather than re-verifying. The
// email_verify transition is one-way and clears the key.
func (s *registerService) VerifyEmail(ctx context.Context, key string) (bool, error) {
	log := logger.FromContext(ctx)

	if key == "" {
		return false, nil
	}

	user, err := s.directory.FindOne(ctx, map[string]any{
		"verify_key":   key,
		"email_verify": false,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("verification key lookup failed: %w", err)
	}

	err = s.directory.UpdateFields(ctx, user.ID, map[string]any{
		"email_verify": true,
		"verify_key":   nil,
	})
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("email verification update failed")
		return false, fmt.Errorf("email verification update failed: %w", err)
	}

	log.Info().Int64("id", user.ID).Msg("email verified")
	return true, nil
}

// CheckEmailAvailable reports whether no account currently owns email.
func (s *registerService) CheckEmailAvailable(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, ErrInvalidDataProvided
	}

	_, err := s.directory.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return true, nil
	}

	return false, fmt.Errorf("user search by email failed: %w", err)
}

func (s *registerService) verificationLink(key string) string {
	return strings.TrimRight(s.frontendURL, "/") + "/api/auth/verify?key=" + key
}

// emailLocalPart returns the part of the address before '@'. The address
// has already passed validation, so the separator is present.
func emailLocalPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

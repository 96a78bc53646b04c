package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/store"
	"github.com/vnshop/identity/internal/utils"
	"github.com/vnshop/identity/models"
)

// throwawayPasswordLength sizes the random password backfilled onto
// accounts created by a first federated login. The plaintext is discarded
// immediately after hashing; such accounts authenticate through their
// provider until the user sets a real password elsewhere.
const throwawayPasswordLength = 16

// conflictRetryDelay spaces the single retry taken when a create races a
// concurrent login for the same provider identity.
const conflictRetryDelay = 50 * time.Millisecond

// identityResolver is the concrete [IdentityResolver]. The provider id is
// the sole match key; two provider logins sharing an email remain
// distinct local accounts.
type identityResolver struct {
	directory store.UserDirectory
	allocator *UsernameAllocator
	logger    *logger.Logger
}

// NewIdentityResolver constructs an [IdentityResolver] wired to the given
// directory and username allocator.
func NewIdentityResolver(directory store.UserDirectory, allocator *UsernameAllocator, log *logger.Logger) IdentityResolver {
	return &identityResolver{
		directory: directory,
		allocator: allocator,
		logger:    log,
	}
}

// ResolveGoogle finds-or-creates the local account linked to the Google
// identity in profile. The Google branch refreshes both name and avatar.
func (r *identityResolver) ResolveGoogle(ctx context.Context, profile models.ProviderProfile) (models.User, error) {
	return r.resolve(ctx, "google_id", profile, true)
}

// ResolveFacebook finds-or-creates the local account linked to the
// Facebook identity in profile. Only the avatar is refreshed.
func (r *identityResolver) ResolveFacebook(ctx context.Context, profile models.ProviderProfile) (models.User, error) {
	return r.resolve(ctx, "facebook_id", profile, false)
}

// resolve implements the shared find-or-create-then-refresh shape.
//
// The existence check always completes before the create decision, and a
// create losing a race against a concurrent login for the same identity
// surfaces as [store.ErrAlreadyExists] and is retried exactly once with a
// fresh probe.
func (r *identityResolver) resolve(ctx context.Context, idField string, profile models.ProviderProfile, refreshName bool) (models.User, error) {
	log := logger.FromContext(ctx)

	if profile.ProviderID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	var user models.User
	backoff := retry.WithMaxRetries(1, retry.NewConstant(conflictRetryDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		found, err := r.directory.FindOne(ctx, map[string]any{idField: profile.ProviderID})
		if err == nil {
			user = found
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		created, err := r.createFromProfile(ctx, idField, profile)
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				// Concurrent double-login created the account (or took
				// the allocated username) between probe and insert.
				return retry.RetryableError(err)
			}
			return err
		}

		user = created
		return nil
	})
	if err != nil {
		log.Err(err).Str("provider_field", idField).Msg("federated identity resolution failed")
		return models.User{}, fmt.Errorf("federated identity resolution failed: %w", err)
	}

	return r.refreshProfile(ctx, user, idField, profile, refreshName)
}

// createFromProfile creates a local account for a first-time federated
// login: allocated username, hashed throwaway password, provider-verified
// email, the matching provider id set and the other one left null.
func (r *identityResolver) createFromProfile(ctx context.Context, idField string, profile models.ProviderProfile) (models.User, error) {
	username, err := r.allocator.Allocate(ctx, profile.Name)
	if err != nil {
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(utils.RandomString(throwawayPasswordLength))
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:      username,
		Email:         profile.Email,
		PasswordHash:  passwordHash,
		Name:          profile.Name,
		AvatarURL:     profile.AvatarURL,
		EmailVerified: true,
	}
	providerID := sql.NullString{String: profile.ProviderID, Valid: true}
	if idField == "google_id" {
		user.GoogleID = providerID
	} else {
		user.FacebookID = providerID
	}

	return r.directory.Create(ctx, user)
}

// refreshProfile updates the mutable profile fields on every federated
// login and backfills a null provider id — the linking path for an
// account located through the other provider. A non-null provider id is
// never overwritten.
func (r *identityResolver) refreshProfile(ctx context.Context, user models.User, idField string, profile models.ProviderProfile, refreshName bool) (models.User, error) {
	fields := map[string]any{"avatar": profile.AvatarURL}
	user.AvatarURL = profile.AvatarURL

	if refreshName {
		fields["name"] = profile.Name
		user.Name = profile.Name
	}

	link := sql.NullString{String: profile.ProviderID, Valid: true}
	switch idField {
	case "google_id":
		if !user.GoogleID.Valid {
			fields[idField] = profile.ProviderID
			user.GoogleID = link
		}
	case "facebook_id":
		if !user.FacebookID.Valid {
			fields[idField] = profile.ProviderID
			user.FacebookID = link
		}
	}

	if err := r.directory.UpdateFields(ctx, user.ID, fields); err != nil {
		return models.User{}, fmt.Errorf("profile refresh failed: %w", err)
	}

	return user, nil
}

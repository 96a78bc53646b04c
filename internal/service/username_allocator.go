package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/internal/store"
	"github.com/vnshop/identity/internal/utils"
)

const (
	// usernameSuffixRange bounds the random integer appended on each
	// collision retry.
	usernameSuffixRange = 1000

	// fallbackUsernameLength is the size of the random handle used once
	// the probe attempts are exhausted.
	fallbackUsernameLength = 8
)

// UsernameAllocator hands out globally unique human-facing handles.
//
// The probe-then-create sequence is not atomic: under concurrent
// registrations with the same seed the directory's unique constraint is
// the final arbiter, and callers retry once on [store.ErrAlreadyExists].
type UsernameAllocator struct {
	directory   store.UserDirectory
	maxAttempts int
	logger      *logger.Logger
}

// NewUsernameAllocator constructs an allocator probing the given
// directory. maxAttempts bounds the collision retry loop (values below 1
// fall back to 100).
func NewUsernameAllocator(directory store.UserDirectory, maxAttempts int, log *logger.Logger) *UsernameAllocator {
	if maxAttempts < 1 {
		maxAttempts = 100
	}
	return &UsernameAllocator{
		directory:   directory,
		maxAttempts: maxAttempts,
		logger:      log,
	}
}

// Allocate derives a handle from seed and returns one not present in the
// directory at probe time.
//
// The seed is lowercased and stripped of whitespace; the first free probe
// wins. Each of the bounded retries appends a random integer in
// [0, usernameSuffixRange). When every attempt collides, the allocator
// falls back to a random 8-character handle returned without a further
// probe — an accepted rare-collision tail: the directory's unique
// constraint still rejects the astronomically unlikely duplicate.
func (a *UsernameAllocator) Allocate(ctx context.Context, seed string) (string, error) {
	log := logger.FromContext(ctx)

	base := normalizeSeed(seed)
	if base == "" {
		base = utils.RandomString(fallbackUsernameLength)
	}

	candidate := base
	for attempt := 0; attempt < a.maxAttempts; attempt++ {
		_, err := a.directory.FindByUsername(ctx, candidate)
		if errors.Is(err, store.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("username probe failed: %w", err)
		}

		candidate = base + strconv.Itoa(utils.RandomInt(usernameSuffixRange))
	}

	log.Warn().Str("seed", seed).Int("attempts", a.maxAttempts).Msg("username probes exhausted, falling back to random handle")
	return utils.RandomString(fallbackUsernameLength), nil
}

// normalizeSeed lowercases the seed and removes all whitespace.
func normalizeSeed(seed string) string {
	return strings.Join(strings.Fields(strings.ToLower(seed)), "")
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/vnshop/identity/internal/logger"
	"github.com/vnshop/identity/models"
)

// userDirectory is the SQL-backed implementation of [UserDirectory]. It
// works against either backend opened through [NewConnectPostgres] or
// [NewConnectSQLite]; driver differences are confined to the error
// classifier and placeholder format carried by [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userDirectory struct {
	logger *logger.Logger
	db     *DB
}

// NewUserDirectory constructs a [UserDirectory] backed by the provided
// database connection and logger.
func NewUserDirectory(db *DB, logger *logger.Logger) UserDirectory {
	logger.Debug().Msg("creating user directory")
	return &userDirectory{
		db:     db,
		logger: logger,
	}
}

// scanUser reads a full user row in [userColumns] order.
func scanUser(row sq.RowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Phone,
		&u.GoogleID, &u.FacebookID, &u.Name, &u.AvatarURL,
		&u.EmailVerified, &u.VerificationKey, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - uniqueness violation (username/email/phone/provider id) → [ErrAlreadyExists]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *userDirectory) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Email, user.PasswordHash, user.Phone,
		user.GoogleID, user.FacebookID, user.Name, user.AvatarURL,
		user.EmailVerified, user.VerificationKey,
	)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userDirectory.Create").Str("username", user.Username).Msg("error: user insert failed")

		if r.db.classifier.Classify(err) == UniqueViolation {
			return models.User{}, ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindByID retrieves the user with the given internal id.
func (r *userDirectory) FindByID(ctx context.Context, id int64) (models.User, error) {
	return r.findBy(ctx, findUserByID, "FindByID", id)
}

// FindByEmail retrieves the user owning the given email address.
func (r *userDirectory) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findBy(ctx, findUserByEmail, "FindByEmail", email)
}

// FindByUsername retrieves the user owning the given handle.
func (r *userDirectory) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findBy(ctx, findUserByUsername, "FindByUsername", username)
}

func (r *userDirectory) findBy(ctx context.Context, query, fn string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		log.Err(err).Str("func", "*userDirectory."+fn).Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindOne retrieves the first user matching the partial field-equality
// predicate. Predicate keys are validated against [allowedUserFields]; a
// nil value matches SQL NULL. Keys are applied in sorted order so the
// generated SQL is deterministic.
func (r *userDirectory) FindOne(ctx context.Context, where map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	if len(where) == 0 {
		return models.User{}, ErrUnknownField
	}

	pred := sq.Eq{}
	for _, field := range sortedFields(where) {
		if _, ok := allowedUserFields[field]; !ok {
			return models.User{}, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		pred[field] = where[field]
	}

	query, args, err := r.db.builder.
		Select(userColumns).
		From(models.User{}.TableName()).
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building find query: %w", err)
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		log.Err(err).Str("func", "*userDirectory.FindOne").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// Save writes back all mutable fields of an existing user and refreshes
// updated_at. The row is returned in its canonical database form.
func (r *userDirectory) Save(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveUser,
		user.ID, user.Username, user.Email, user.PasswordHash, user.Phone,
		user.GoogleID, user.FacebookID, user.Name, user.AvatarURL,
		user.EmailVerified, user.VerificationKey, time.Now(),
	)

	saved, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		log.Err(err).Str("func", "*userDirectory.Save").Int64("id", user.ID).Msg("error: user save failed")

		if r.db.classifier.Classify(err) == UniqueViolation {
			return models.User{}, ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// UpdateFields applies a partial update to the user with the given id.
// Field names are validated against [allowedUserFields]; a nil value
// writes SQL NULL. updated_at is always refreshed.
func (r *userDirectory) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		return nil
	}

	update := r.db.builder.Update(models.User{}.TableName())
	for _, field := range sortedFields(fields) {
		if _, ok := allowedUserFields[field]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		update = update.Set(field, fields[field])
	}

	query, args, err := update.
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building update query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userDirectory.UpdateFields").Int64("id", id).Msg("error: partial update failed")

		if r.db.classifier.Classify(err) == UniqueViolation {
			return ErrAlreadyExists
		}
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}

	return nil
}

func sortedFields(m map[string]any) []string {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

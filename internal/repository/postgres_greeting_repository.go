package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/sebasr/hello-service/internal/database"
	"github.com/sebasr/hello-service/internal/models"
)

// ErrGreetingNotFound is returned when a greeting is not found
var ErrGreetingNotFound = errors.New("greeting not found")

// DefaultPageSize is used by FindAllPaged when no positive limit is given
const DefaultPageSize = 100

const greetingColumns = `id, name, message, greeting_type, created_at`

// likeEscaper makes user input match literally inside a LIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PostgresGreetingRepository implements GreetingRepository using PostgreSQL
type PostgresGreetingRepository struct {
	pool database.Pool
	tx   *database.TransactionManager
	now  func() time.Time
}

// NewPostgresGreetingRepository creates a new PostgreSQL greeting repository
func NewPostgresGreetingRepository(pool database.Pool) *PostgresGreetingRepository {
	return &PostgresGreetingRepository{
		pool: pool,
		tx:   database.NewTransactionManager(pool),
		now:  time.Now,
	}
}

// Save inserts the greeting when it has no ID yet, otherwise updates it in place.
// created_at is assigned on insert only.
func (r *PostgresGreetingRepository) Save(ctx context.Context, greeting *models.Greeting) (*models.Greeting, error) {
	if err := greeting.Validate(); err != nil {
		return nil, err
	}

	err := r.tx.WithinReadWrite(ctx, func(ctx context.Context) error {
		if greeting.IsNew() {
			return r.insert(ctx, greeting)
		}
		return r.update(ctx, greeting)
	})
	if err != nil {
		return nil, err
	}

	return greeting, nil
}

func (r *PostgresGreetingRepository) insert(ctx context.Context, greeting *models.Greeting) error {
	query := `
		INSERT INTO greetings (name, message, greeting_type, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	createdAt := r.now().UTC().Truncate(time.Microsecond)
	var id int64
	err := database.QueryerFromContext(ctx, r.pool).QueryRow(ctx, query,
		greeting.Name, greeting.Message, string(greeting.GreetingType), createdAt,
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert greeting: %w", err)
	}

	greeting.ID = id
	greeting.CreatedAt = createdAt
	return nil
}

func (r *PostgresGreetingRepository) update(ctx context.Context, greeting *models.Greeting) error {
	query := `
		UPDATE greetings
		SET name = $1, message = $2, greeting_type = $3
		WHERE id = $4
		RETURNING created_at
	`

	err := database.QueryerFromContext(ctx, r.pool).QueryRow(ctx, query,
		greeting.Name, greeting.Message, string(greeting.GreetingType), greeting.ID,
	).Scan(&greeting.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrGreetingNotFound
		}
		return fmt.Errorf("failed to update greeting: %w", err)
	}

	return nil
}

// FindByID retrieves a greeting by its ID
func (r *PostgresGreetingRepository) FindByID(ctx context.Context, id int64) (*models.Greeting, error) {
	query := `SELECT ` + greetingColumns + ` FROM greetings WHERE id = $1`

	greeting, err := scanGreeting(database.QueryerFromContext(ctx, r.pool).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGreetingNotFound
		}
		return nil, fmt.Errorf("failed to query greeting by id: %w", err)
	}

	return greeting, nil
}

// FindAll retrieves every greeting, newest first
func (r *PostgresGreetingRepository) FindAll(ctx context.Context) ([]*models.Greeting, error) {
	query := `
		SELECT ` + greetingColumns + `
		FROM greetings
		ORDER BY created_at DESC, id DESC
	`
	return r.queryGreetings(ctx, "all", query)
}

// FindAllPaged retrieves one page of greetings, newest first
func (r *PostgresGreetingRepository) FindAllPaged(ctx context.Context, offset, limit int) ([]*models.Greeting, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}

	query := `
		SELECT ` + greetingColumns + `
		FROM greetings
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	return r.queryGreetings(ctx, "page", query, limit, offset)
}

// FindByName retrieves greetings whose name matches exactly
func (r *PostgresGreetingRepository) FindByName(ctx context.Context, name string) ([]*models.Greeting, error) {
	query := `
		SELECT ` + greetingColumns + `
		FROM greetings
		WHERE name = $1
		ORDER BY created_at DESC, id DESC
	`
	return r.queryGreetings(ctx, "by name", query, name)
}

// FindByNameContainingIgnoreCase retrieves greetings whose name contains substr, ignoring case
func (r *PostgresGreetingRepository) FindByNameContainingIgnoreCase(ctx context.Context, substr string) ([]*models.Greeting, error) {
	query := `
		SELECT ` + greetingColumns + `
		FROM greetings
		WHERE name ILIKE $1 ESCAPE '\'
		ORDER BY created_at DESC, id DESC
	`
	return r.queryGreetings(ctx, "by name substring", query, "%"+likeEscaper.Replace(substr)+"%")
}

// FindByNamePrefix retrieves greetings whose name starts with prefix (case-sensitive)
func (r *PostgresGreetingRepository) FindByNamePrefix(ctx context.Context, prefix string) ([]*models.Greeting, error) {
	query := `
		SELECT ` + greetingColumns + `
		FROM greetings
		WHERE name LIKE $1 ESCAPE '\'
		ORDER BY created_at DESC, id DESC
	`
	return r.queryGreetings(ctx, "by name prefix", query, likeEscaper.Replace(prefix)+"%")
}

// Count returns the total number of greetings
func (r *PostgresGreetingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := database.QueryerFromContext(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM greetings`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count greetings: %w", err)
	}
	return count, nil
}

// CountByName returns the number of greetings whose name matches exactly
func (r *PostgresGreetingRepository) CountByName(ctx context.Context, name string) (int64, error) {
	var count int64
	err := database.QueryerFromContext(ctx, r.pool).
		QueryRow(ctx, `SELECT COUNT(*) FROM greetings WHERE name = $1`, name).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count greetings by name: %w", err)
	}
	return count, nil
}

// ExistsByName reports whether any greeting has exactly this name
func (r *PostgresGreetingRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := database.QueryerFromContext(ctx, r.pool).
		QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM greetings WHERE name = $1)`, name).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check greeting existence: %w", err)
	}
	return exists, nil
}

// DeleteByID removes a greeting and reports whether a row was removed
func (r *PostgresGreetingRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	var deleted int64
	err := r.tx.WithinReadWrite(ctx, func(ctx context.Context) error {
		tag, err := database.QueryerFromContext(ctx, r.pool).Exec(ctx, `DELETE FROM greetings WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete greeting: %w", err)
		}
		deleted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// DeleteByName removes every greeting with exactly this name
func (r *PostgresGreetingRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	var deleted int64
	err := r.tx.WithinReadWrite(ctx, func(ctx context.Context) error {
		tag, err := database.QueryerFromContext(ctx, r.pool).Exec(ctx, `DELETE FROM greetings WHERE name = $1`, name)
		if err != nil {
			return fmt.Errorf("failed to delete greetings by name: %w", err)
		}
		deleted = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// queryGreetings runs a list query; what names the query in error messages
func (r *PostgresGreetingRepository) queryGreetings(ctx context.Context, what, query string, args ...any) ([]*models.Greeting, error) {
	rows, err := database.QueryerFromContext(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query greetings %s: %w", what, err)
	}
	defer rows.Close()

	greetings := []*models.Greeting{}
	for rows.Next() {
		greeting, err := scanGreeting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan greeting row: %w", err)
		}
		greetings = append(greetings, greeting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating greeting rows: %w", err)
	}

	return greetings, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanGreeting scans one row selected with greetingColumns
func scanGreeting(row rowScanner) (*models.Greeting, error) {
	var (
		greeting     models.Greeting
		greetingType pgtype.Text
	)

	if err := row.Scan(
		&greeting.ID,
		&greeting.Name,
		&greeting.Message,
		&greetingType,
		&greeting.CreatedAt,
	); err != nil {
		return nil, err
	}

	if greetingType.Valid {
		greeting.GreetingType = models.GreetingType(greetingType.String)
	}

	return &greeting, nil
}

package preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

var ErrPreferencesNotFound = errors.New("preferences not found")

// Repository reads and writes the preferences blob of users.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new preference repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetPreferences returns the raw JSON preferences of a user.
func (r *Repository) GetPreferences(ctx context.Context, userID string) ([]byte, error) {
	query := `
		SELECT preferences
		FROM users
		WHERE id = $1;
    `

	var prefs sql.NullString
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&prefs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPreferencesNotFound
		}

		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	if !prefs.Valid {
		return nil, ErrPreferencesNotFound
	}

	return []byte(prefs.String), nil
}

// UpsertPreferences stores the preferences of a user, creating the user row
// when needed.
func (r *Repository) UpsertPreferences(ctx context.Context, userID string, prefs []byte) error {
	query := `
		INSERT INTO users (id, preferences)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE
		SET preferences = EXCLUDED.preferences, updated_at = NOW();
    `

	if _, err := r.db.ExecContext(ctx, query, userID, string(prefs)); err != nil {
		return fmt.Errorf("failed to upsert preferences: %w", err)
	}

	return nil
}

package preference

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

//go:generate mockgen -source=resolver.go -destination=../../mocks/service/preference/mock.go -package=mocks

type prefRepo interface {
	GetPreferences(ctx context.Context, userID string) ([]byte, error)
}

// Resolver loads user preferences and never fails: any lookup or decoding
// problem yields the defaults.
type Resolver struct {
	repo prefRepo
}

// NewResolver creates a Resolver backed by repo.
func NewResolver(repo prefRepo) *Resolver {
	return &Resolver{repo: repo}
}

// Resolve returns the preferences of userID, or the defaults.
func (r *Resolver) Resolve(ctx context.Context, userID string) model.UserPreferences {
	raw, err := r.repo.GetPreferences(ctx, userID)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("preferences unavailable, using defaults")
		return model.DefaultPreferences()
	}

	if len(raw) == 0 {
		return model.DefaultPreferences()
	}

	var prefs model.UserPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("malformed preferences, using defaults")
		return model.DefaultPreferences()
	}

	return prefs
}

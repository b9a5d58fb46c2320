package preference

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/notification-pipeline/internal/api/dto"
	"github.com/aliskhannn/notification-pipeline/internal/api/respond"
	"github.com/aliskhannn/notification-pipeline/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/preference/mock.go -package=mocks
type prefWriter interface {
	UpsertPreferences(ctx context.Context, userID string, prefs []byte) error
}

type prefResolver interface {
	Resolve(ctx context.Context, userID string) model.UserPreferences
}

// Handler reads and replaces user delivery preferences.
type Handler struct {
	repo      prefWriter
	resolver  prefResolver
	validator *validator.Validate
}

func NewHandler(w prefWriter, r prefResolver, v *validator.Validate) *Handler {
	return &Handler{repo: w, resolver: r, validator: v}
}

// Get handles GET /api/users/:id/preferences and returns the effective
// preferences, defaults included.
func (h *Handler) Get(c *ginext.Context) {
	userID := c.Param("id")
	if userID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user id"))
		return
	}

	respond.OK(c.Writer, h.resolver.Resolve(c.Request.Context(), userID))
}

// Put handles PUT /api/users/:id/preferences.
func (h *Handler) Put(c *ginext.Context) {
	userID := c.Param("id")
	if userID == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing user id"))
		return
	}

	var req dto.PreferencesRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	prefs := model.UserPreferences{
		QuietHours:        req.QuietHours,
		BlockedEventTypes: req.BlockedEventTypes,
	}
	if req.Channels != nil {
		prefs.Channels = make([]model.Channel, 0, len(req.Channels))
		for _, ch := range req.Channels {
			prefs.Channels = append(prefs.Channels, ch.Normalize())
		}
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if err := h.repo.UpsertPreferences(c.Request.Context(), userID, raw); err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to save preferences")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, prefs)
}

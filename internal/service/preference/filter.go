package preference

import (
	"strings"
	"time"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

const clockLayout = "15:04"

// IsEventTypeBlocked reports whether the user opted out of eventType.
func IsEventTypeBlocked(prefs model.UserPreferences, eventType string) bool {
	for _, blocked := range prefs.BlockedEventTypes {
		if strings.EqualFold(blocked, eventType) {
			return true
		}
	}

	return false
}

// IsChannelEnabled reports whether ch is on the user's allow-list.
// A nil allow-list enables everything; an empty one enables nothing.
func IsChannelEnabled(prefs model.UserPreferences, ch model.Channel) bool {
	if prefs.Channels == nil {
		return true
	}

	ch = ch.Normalize()
	for _, enabled := range prefs.Channels {
		if enabled.Normalize() == ch {
			return true
		}
	}

	return false
}

// FilterChannels returns the requested channels the user has enabled, in
// request order and without duplicates. The input slice is not modified.
func FilterChannels(prefs model.UserPreferences, requested []model.Channel) []model.Channel {
	seen := make(map[model.Channel]struct{}, len(requested))
	out := make([]model.Channel, 0, len(requested))

	for _, ch := range requested {
		norm := ch.Normalize()
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}

		if IsChannelEnabled(prefs, norm) {
			out = append(out, norm)
		}
	}

	return out
}

// IsInQuietHours reports whether now falls inside the user's quiet window.
// A window whose start is after its end wraps midnight. Equal bounds or an
// unparsable window mean no quiet hours.
func IsInQuietHours(prefs model.UserPreferences, now time.Time) bool {
	if prefs.QuietHours == nil {
		return false
	}

	start, err := parseClock(prefs.QuietHours.Start)
	if err != nil {
		return false
	}
	end, err := parseClock(prefs.QuietHours.End)
	if err != nil {
		return false
	}

	cur := time.Duration(now.Hour())*time.Hour + time.Duration(now.Minute())*time.Minute

	switch {
	case start == end:
		return false
	case start < end:
		return cur >= start && cur < end
	default:
		return cur >= start || cur < end
	}
}

// parseClock converts "HH:MM" into an offset from midnight.
func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}

	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

package model

// UserPreferences is the per-user delivery configuration stored as JSON.
// A nil Channels list means every channel is enabled.
type UserPreferences struct {
	Channels          []Channel   `json:"channels"`
	QuietHours        *QuietHours `json:"quietHours,omitempty"`
	BlockedEventTypes []string    `json:"blockedEventTypes,omitempty"`
}

// QuietHours is a time-of-day window in "HH:MM" form. Start after End wraps midnight.
type QuietHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DefaultPreferences grants every channel with no quiet hours and nothing blocked.
func DefaultPreferences() UserPreferences {
	return UserPreferences{Channels: AllChannels()}
}

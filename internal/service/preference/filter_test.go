package preference

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/notification-pipeline/internal/model"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, 5, 1, hour, minute, 0, 0, time.UTC)
}

func TestFilterChannels(t *testing.T) {
	requested := []model.Channel{model.ChannelEmail, model.ChannelSMS, model.ChannelPush}

	prefs := model.UserPreferences{Channels: []model.Channel{model.ChannelEmail}}
	assert.Equal(t, []model.Channel{model.ChannelEmail}, FilterChannels(prefs, requested))

	none := model.UserPreferences{Channels: []model.Channel{model.ChannelWebhook}}
	assert.Empty(t, FilterChannels(none, requested))

	all := model.UserPreferences{}
	assert.Equal(t, requested, FilterChannels(all, requested))

	// Input untouched.
	assert.Len(t, requested, 3)
}

func TestFilterChannels_OrderAndDuplicates(t *testing.T) {
	prefs := model.UserPreferences{Channels: []model.Channel{model.ChannelSMS, model.ChannelEmail}}
	requested := []model.Channel{"sms", model.ChannelPush, model.ChannelEmail, model.ChannelSMS}

	assert.Equal(t, []model.Channel{model.ChannelSMS, model.ChannelEmail}, FilterChannels(prefs, requested))
}

func TestIsChannelEnabled_EmptyListDisablesAll(t *testing.T) {
	prefs := model.UserPreferences{Channels: []model.Channel{}}
	assert.False(t, IsChannelEnabled(prefs, model.ChannelEmail))
}

func TestIsEventTypeBlocked(t *testing.T) {
	prefs := model.UserPreferences{BlockedEventTypes: []string{"marketing"}}

	assert.True(t, IsEventTypeBlocked(prefs, "marketing"))
	assert.True(t, IsEventTypeBlocked(prefs, "MARKETING"))
	assert.False(t, IsEventTypeBlocked(prefs, "order_shipped"))
	assert.False(t, IsEventTypeBlocked(model.DefaultPreferences(), "marketing"))
}

func TestIsInQuietHours(t *testing.T) {
	wrap := model.UserPreferences{QuietHours: &model.QuietHours{Start: "22:00", End: "08:00"}}
	day := model.UserPreferences{QuietHours: &model.QuietHours{Start: "09:00", End: "17:30"}}

	tests := []struct {
		name  string
		prefs model.UserPreferences
		now   time.Time
		want  bool
	}{
		{"wrap late evening", wrap, at(23, 0), true},
		{"wrap early morning", wrap, at(3, 0), true},
		{"wrap midday", wrap, at(12, 0), false},
		{"wrap start inclusive", wrap, at(22, 0), true},
		{"wrap end exclusive", wrap, at(8, 0), false},
		{"same day inside", day, at(12, 0), true},
		{"same day start inclusive", day, at(9, 0), true},
		{"same day end exclusive", day, at(17, 30), false},
		{"same day before", day, at(8, 59), false},
		{"no window", model.DefaultPreferences(), at(23, 0), false},
		{"equal bounds", model.UserPreferences{QuietHours: &model.QuietHours{Start: "10:00", End: "10:00"}}, at(10, 0), false},
		{"unparsable", model.UserPreferences{QuietHours: &model.QuietHours{Start: "late", End: "08:00"}}, at(3, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInQuietHours(tt.prefs, tt.now))
		})
	}
}

package channel

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	mocks "github.com/aliskhannn/notification-pipeline/internal/mocks/channel"
	"github.com/aliskhannn/notification-pipeline/internal/model"
)

func request(ch model.Channel, data string) model.DeliveryRequest {
	return model.DeliveryRequest{
		NotificationID: "n-1",
		UserID:         "u-1",
		Channel:        ch,
		TemplateID:     "tpl-1",
		EventType:      "order_shipped",
		Data:           data,
	}
}

func TestSenderChannel_Email(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mocks.NewMocksender(ctrl)
	s.EXPECT().Send(gomock.Any(), "jane@example.com", "Shipped", "Your order is on its way").Return(nil)

	res := NewEmail(s).Deliver(context.Background(),
		request(model.ChannelEmail, `{"email":"jane@example.com","subject":"Shipped","message":"Your order is on its way"}`))

	assert.True(t, res.Success)
	assert.Equal(t, model.ChannelEmail, res.Channel)
	assert.NoError(t, res.Err)
}

func TestSenderChannel_FallbackSubjectAndBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mocks.NewMocksender(ctrl)
	s.EXPECT().Send(gomock.Any(), "+100200300", "order_shipped",
		"You have a new order_shipped notification (template tpl-1)").Return(nil)

	res := NewSMS(s).Deliver(context.Background(), request(model.ChannelSMS, `{"phone":"+100200300"}`))

	assert.True(t, res.Success)
}

func TestSenderChannel_PushDefaultChat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mocks.NewMocksender(ctrl)
	s.EXPECT().Send(gomock.Any(), "chat-9", gomock.Any(), gomock.Any()).Return(nil)

	res := NewPush(s, "chat-9").Deliver(context.Background(), request(model.ChannelPush, ""))

	assert.True(t, res.Success)
}

func TestSenderChannel_MissingRecipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mocks.NewMocksender(ctrl)

	res := NewEmail(s).Deliver(context.Background(), request(model.ChannelEmail, `{"phone":"1"}`))

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrNoRecipient)
	assert.True(t, IsPermanent(res.Err))
}

func TestSenderChannel_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mocks.NewMocksender(ctrl)

	res := NewEmail(s).Deliver(context.Background(), request(model.ChannelEmail, `not json`))

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, ErrInvalidPayload)
	assert.True(t, IsPermanent(res.Err))
}

func TestSenderChannel_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerErr := errors.New("smtp: connection refused")
	s := mocks.NewMocksender(ctrl)
	s.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(providerErr)

	res := NewEmail(s).Deliver(context.Background(), request(model.ChannelEmail, `{"email":"a@b.c"}`))

	assert.False(t, res.Success)
	assert.ErrorIs(t, res.Err, providerErr)
	assert.False(t, IsPermanent(res.Err))
	assert.Contains(t, res.ErrorDetail, "connection refused")
}

func TestLogSender(t *testing.T) {
	assert.NoError(t, LogSender{Provider: "sms-log"}.Send(context.Background(), "+1", "s", "b"))
}

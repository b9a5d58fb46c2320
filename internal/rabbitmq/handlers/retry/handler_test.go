package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	mocks "github.com/aliskhannn/notification-pipeline/internal/mocks/rabbitmq/handlers/retry"
	"github.com/aliskhannn/notification-pipeline/internal/model"
)

func TestRelay_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := mocks.NewMockreadyQueue(ctrl)
	pub := mocks.NewMockeventPublisher(ctrl)

	event := model.NotificationEvent{NotificationID: "n-1", RetryCount: 2}
	pub.EXPECT().PublishEvent(gomock.Any(), event).Return(nil)

	NewRelay(q, pub).HandleMessage(context.Background(), event)
}

func TestRelay_HandleMessage_PublishFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := mocks.NewMockreadyQueue(ctrl)
	pub := mocks.NewMockeventPublisher(ctrl)

	event := model.NotificationEvent{NotificationID: "n-1", RetryCount: 1}
	pub.EXPECT().PublishEvent(gomock.Any(), event).Return(errors.New("broker down"))

	NewRelay(q, pub).HandleMessage(context.Background(), event)
}

func TestRelay_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := mocks.NewMockreadyQueue(ctrl)
	pub := mocks.NewMockeventPublisher(ctrl)

	event := model.NotificationEvent{NotificationID: "n-7", RetryCount: 1}

	q.EXPECT().Consume(gomock.Any()).DoAndReturn(func(out chan<- model.NotificationEvent) error {
		out <- event
		return nil
	})

	relayed := make(chan struct{})
	pub.EXPECT().PublishEvent(gomock.Any(), event).DoAndReturn(
		func(context.Context, model.NotificationEvent) error {
			close(relayed)
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})

	go func() {
		NewRelay(q, pub).Run(ctx)
		close(stopped)
	}()

	select {
	case <-relayed:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not relayed")
	}

	cancel()
	<-stopped
}

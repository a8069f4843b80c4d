package notification_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	"github.com/KirkDiggler/rpg-campaign-api/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-campaign-api/internal/services/notification"
	notificationmock "github.com/KirkDiggler/rpg-campaign-api/internal/services/notification/mock"
	"github.com/KirkDiggler/rpg-campaign-api/internal/testutils"
)

type recordingFeed struct {
	got []notification.Notification
}

func (f *recordingFeed) BroadcastNotification(n notification.Notification) {
	f.got = append(f.got, n)
}

type NotifierTestSuite struct {
	suite.Suite
	ctx   context.Context
	ctrl  *gomock.Controller
	clock *clock.Fixed
}

func TestNotifierSuite(t *testing.T) {
	suite.Run(t, new(NotifierTestSuite))
}

func (s *NotifierTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.clock = clock.NewFixed(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
}

func (s *NotifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *NotifierTestSuite) TestKinds() {
	for _, kind := range notification.Kinds {
		s.True(kind.Valid())
	}
	s.False(notification.Kind("panic").Valid())
}

func (s *NotifierTestSuite) TestLogNotifierLevels() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	n := notification.NewLogNotifier(logger)

	cases := []struct {
		kind  notification.Kind
		level string
	}{
		{notification.KindError, "ERROR"},
		{notification.KindWarning, "WARN"},
		{notification.KindSuccess, "INFO"},
		{notification.KindInfo, "INFO"},
	}

	for _, tc := range cases {
		s.Run(string(tc.kind), func() {
			buf.Reset()
			n.Notify(s.ctx, tc.kind, "combat saved")

			var record map[string]any
			s.Require().NoError(json.Unmarshal(buf.Bytes(), &record))
			s.Equal(tc.level, record["level"])
			s.Equal("combat saved", record["msg"])
			s.Equal(string(tc.kind), record["notification_kind"])
		})
	}
}

func (s *NotifierTestSuite) TestRedisNotifierPublishes() {
	client, _ := testutils.CreateTestRedisClient(s.T())

	n, err := notification.NewRedisNotifier(&notification.RedisConfig{Client: client, Clock: s.clock})
	s.Require().NoError(err)
	s.Equal(notification.DefaultChannel, n.Channel())

	sub := client.Subscribe(s.ctx, n.Channel())
	defer func() { _ = sub.Close() }()
	_, err = sub.Receive(s.ctx)
	s.Require().NoError(err)

	n.Notify(s.ctx, notification.KindSuccess, "combat created")

	select {
	case msg := <-sub.Channel():
		var got notification.Notification
		s.Require().NoError(json.Unmarshal([]byte(msg.Payload), &got))
		s.Equal(notification.KindSuccess, got.Kind)
		s.Equal("combat created", got.Message)
		s.True(s.clock.Now().Equal(got.Timestamp))
	case <-time.After(2 * time.Second):
		s.Fail("notification was not published")
	}
}

func (s *NotifierTestSuite) TestRedisNotifierSwallowsFailures() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	n, err := notification.NewRedisNotifier(&notification.RedisConfig{Client: client, Channel: "alerts", Clock: s.clock})
	s.Require().NoError(err)

	mr.Close()

	s.NotPanics(func() {
		n.Notify(s.ctx, notification.KindError, "redis is gone")
	})
}

func (s *NotifierTestSuite) TestRedisNotifierConfig() {
	_, err := notification.NewRedisNotifier(&notification.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = notification.NewRedisNotifier(nil)
	s.Error(err)
}

func (s *NotifierTestSuite) TestFeedNotifier() {
	feed := &recordingFeed{}
	n := notification.NewFeedNotifier(feed, s.clock)

	n.Notify(s.ctx, notification.KindWarning, "combatant not found")

	s.Require().Len(feed.got, 1)
	s.Equal(notification.Notification{
		Kind:      notification.KindWarning,
		Message:   "combatant not found",
		Timestamp: s.clock.Now(),
	}, feed.got[0])

	s.NotPanics(func() {
		notification.NewFeedNotifier(nil, nil).Notify(s.ctx, notification.KindInfo, "nobody listening")
	})
}

func (s *NotifierTestSuite) TestMultiFansOutInOrder() {
	first := notificationmock.NewMockNotifier(s.ctrl)
	second := notificationmock.NewMockNotifier(s.ctrl)

	gomock.InOrder(
		first.EXPECT().Notify(s.ctx, notification.KindInfo, "round 2"),
		second.EXPECT().Notify(s.ctx, notification.KindInfo, "round 2"),
	)

	notification.Multi(first, nil, second).Notify(s.ctx, notification.KindInfo, "round 2")
}

func (s *NotifierTestSuite) TestNop() {
	s.NotPanics(func() {
		notification.Nop.Notify(s.ctx, notification.KindError, "ignored")
	})
}

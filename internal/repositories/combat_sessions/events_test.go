package combatsessions_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-campaign-api/internal/entities/combat"
	"github.com/KirkDiggler/rpg-campaign-api/internal/errors"
	combatsessions "github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions"
	combatsessionsmock "github.com/KirkDiggler/rpg-campaign-api/internal/repositories/combat_sessions/mock"
	"github.com/KirkDiggler/rpg-campaign-api/internal/testutils"
)

type received struct {
	eventType string
	session   *combat.Session
}

type PublishingRepositoryTestSuite struct {
	suite.Suite
	ctx      context.Context
	bus      events.EventBus
	repo     combatsessions.Repository
	received []received
}

func TestPublishingRepositorySuite(t *testing.T) {
	suite.Run(t, new(PublishingRepositoryTestSuite))
}

func (s *PublishingRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()
	s.repo = combatsessions.WithEvents(combatsessions.NewInMemory(), s.bus)
	s.received = nil

	for _, eventType := range combatsessions.EventTypes {
		s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			session, ok := combatsessions.SessionFromEvent(e)
			s.Require().True(ok)
			s.received = append(s.received, received{eventType: e.Type(), session: session})
			return nil
		})
	}
}

func (s *PublishingRepositoryTestSuite) TestWritesPublishChanges() {
	session := testutils.CreateTestSession("cs-1")

	_, err := s.repo.Create(s.ctx, combatsessions.CreateInput{Session: session})
	s.Require().NoError(err)

	updated := session.Clone()
	updated.NextTurn()
	_, err = s.repo.Update(s.ctx, combatsessions.UpdateInput{Session: updated})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, combatsessions.DeleteInput{ID: "cs-1"})
	s.Require().NoError(err)

	s.Require().Len(s.received, 3)
	s.Equal(combatsessions.EventSessionCreated, s.received[0].eventType)
	s.Equal(session, s.received[0].session)
	s.Equal(combatsessions.EventSessionUpdated, s.received[1].eventType)
	s.Equal(1, s.received[1].session.CurrentTurn)
	s.Equal(combatsessions.EventSessionDeleted, s.received[2].eventType)
	s.Equal("cs-1", s.received[2].session.ID)
}

func (s *PublishingRepositoryTestSuite) TestEventCarriesSnapshot() {
	session := testutils.CreateTestSession("cs-1")
	_, err := s.repo.Create(s.ctx, combatsessions.CreateInput{Session: session})
	s.Require().NoError(err)

	session.Combatants[0].HP = 0

	s.Require().Len(s.received, 1)
	s.Equal(30, s.received[0].session.Combatants[0].HP)
}

func (s *PublishingRepositoryTestSuite) TestFailedWritesPublishNothing() {
	_, err := s.repo.Update(s.ctx, combatsessions.UpdateInput{Session: testutils.CreateTestSession("ghost")})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, combatsessions.DeleteInput{ID: "ghost"})
	s.True(errors.IsNotFound(err))

	s.Empty(s.received)
}

func (s *PublishingRepositoryTestSuite) TestReadsPassThrough() {
	ctrl := gomock.NewController(s.T())
	mockRepo := combatsessionsmock.NewMockRepository(ctrl)
	repo := combatsessions.WithEvents(mockRepo, s.bus)

	mockRepo.EXPECT().
		Get(s.ctx, combatsessions.GetInput{ID: "cs-1"}).
		Return(&combatsessions.GetOutput{Session: testutils.CreateTestSession("cs-1")}, nil)
	mockRepo.EXPECT().
		List(s.ctx, combatsessions.ListInput{Status: combat.StatusActive}).
		Return(&combatsessions.ListOutput{}, nil)

	got, err := repo.Get(s.ctx, combatsessions.GetInput{ID: "cs-1"})
	s.Require().NoError(err)
	s.Equal("cs-1", got.Session.ID)

	_, err = repo.List(s.ctx, combatsessions.ListInput{Status: combat.StatusActive})
	s.Require().NoError(err)
	s.Empty(s.received)
}

func (s *PublishingRepositoryTestSuite) TestNilBusReturnsInner() {
	inner := combatsessions.NewInMemory()
	s.Same(inner, combatsessions.WithEvents(inner, nil))
}

func (s *PublishingRepositoryTestSuite) TestSessionFromEventRejectsOtherSources() {
	_, ok := combatsessions.SessionFromEvent(nil)
	s.False(ok)

	_, ok = combatsessions.SessionFromEvent(events.NewGameEvent("other", nil, nil))
	s.False(ok)
}

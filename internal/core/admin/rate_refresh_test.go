package admin_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/currency_admin/internal/core/admin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateRefreshTestSuite struct {
	suite.Suite
	store    *MockCurrencyStore
	reloader *MockReloader
	notifier *recordingNotifier
	now      time.Time
	sut      *admin.RateRefreshCoordinator
}

func (s *RateRefreshTestSuite) SetupTest() {
	s.store = new(MockCurrencyStore)
	s.reloader = new(MockReloader)
	s.notifier = &recordingNotifier{}
	s.now = time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	s.sut = admin.NewRateRefreshCoordinator(s.store, s.notifier, s.reloader,
		admin.WithTimeout(100*time.Millisecond),
		admin.WithClock(func() time.Time { return s.now }))
}

func (s *RateRefreshTestSuite) TestTrigger_Success() {
	s.store.On("RefreshRates", mock.Anything).Return(nil).Once()
	s.reloader.On("Load", mock.Anything).Return(nil).Once()

	err := s.sut.Trigger(context.Background())

	s.Require().NoError(err)
	s.Equal([]string{admin.MsgRatesUpdated}, s.notifier.byLevel("success"))
	s.Equal(admin.RefreshStatus{}, s.sut.Status())
	s.store.AssertExpectations(s.T())
	s.reloader.AssertExpectations(s.T())
}

func (s *RateRefreshTestSuite) TestTrigger_FailureDoesNotReload() {
	s.store.On("RefreshRates", mock.Anything).Return(errors.New("No USD currency record found")).Once()

	err := s.sut.Trigger(context.Background())

	s.Require().Error(err)
	s.Equal([]string{admin.MsgRatesFailed}, s.notifier.byLevel("failure"))
	s.False(s.sut.Status().Refreshing)
	s.False(s.sut.Status().Stuck)
	s.reloader.AssertNotCalled(s.T(), "Load", mock.Anything)
}

func (s *RateRefreshTestSuite) TestTrigger_TwiceIssuesOneRequest() {
	release := make(chan time.Time)
	s.store.On("RefreshRates", mock.Anything).WaitUntil(release).Return(nil).Once()
	s.reloader.On("Load", mock.Anything).Return(nil).Once()

	// Long enough that the first call is still waiting when released.
	s.sut = admin.NewRateRefreshCoordinator(s.store, s.notifier, s.reloader, admin.WithTimeout(5*time.Second))

	done := make(chan error, 1)
	go func() { done <- s.sut.Trigger(context.Background()) }()
	s.Eventually(func() bool { return s.sut.Status().Refreshing }, time.Second, 5*time.Millisecond)

	s.ErrorIs(s.sut.Trigger(context.Background()), admin.ErrRefreshInProgress)

	close(release)
	s.Require().NoError(<-done)
	s.store.AssertNumberOfCalls(s.T(), "RefreshRates", 1)
	s.reloader.AssertNumberOfCalls(s.T(), "Load", 1)
	s.False(s.sut.Status().Refreshing)
}

func (s *RateRefreshTestSuite) TestTrigger_TimeoutReleasesGuardAndFlagsStuck() {
	release := make(chan time.Time)
	defer close(release)
	s.store.On("RefreshRates", mock.Anything).WaitUntil(release).Return(nil).Once()

	err := s.sut.Trigger(context.Background())

	s.ErrorIs(err, admin.ErrOperationTimedOut)
	status := s.sut.Status()
	s.False(status.Refreshing)
	s.True(status.Stuck)
	s.Equal(s.now, status.LastTimeout)
	s.Equal([]string{admin.MsgRatesFailed}, s.notifier.byLevel("failure"))

	// A retry is allowed and an answer clears the stuck signal.
	s.store.On("RefreshRates", mock.Anything).Return(nil).Once()
	s.reloader.On("Load", mock.Anything).Return(nil).Once()

	s.Require().NoError(s.sut.Trigger(context.Background()))
	status = s.sut.Status()
	s.False(status.Stuck)
	s.Equal(s.now, status.LastTimeout)
}

func TestRateRefreshTestSuite(t *testing.T) {
	suite.Run(t, new(RateRefreshTestSuite))
}

package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/diegoclair/slack-standup-bot/mocks"
)

type allMocks struct {
	mockDataManager *mocks.MockDataManager
	mockStatusRepo  *mocks.MockStatusRepo
	mockSlackClient *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	statusRepo := mocks.NewMockStatusRepo(ctrl)
	dm.EXPECT().Status().Return(statusRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)

	m = allMocks{
		mockDataManager: dm,
		mockStatusRepo:  statusRepo,
		mockSlackClient: slackClient,
	}

	return
}

// testGroups puts the given users into America/Chicago.
func testGroups(users ...string) []entity.TimezoneGroup {
	return []entity.TimezoneGroup{
		{Timezone: "America/Chicago", Users: users},
	}
}

// newTestStandup builds a standup service with a frozen clock.
func newTestStandup(t *testing.T, m allMocks, nowUTC time.Time, users ...string) *standupService {
	t.Helper()

	s := newStandup(m.mockDataManager, testGroups(users...), zap.NewNop())
	require.NotNil(t, s)
	s.now = func() time.Time { return nowUTC }
	return s
}

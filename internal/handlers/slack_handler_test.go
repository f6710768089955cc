package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegoclair/slack-standup-bot/internal/domain"
	"github.com/diegoclair/slack-standup-bot/internal/domain/entity"
	"github.com/diegoclair/slack-standup-bot/internal/handlers/test"
)

func decodeMsg(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	const userID = "U123456789"

	tests := []struct {
		name          string
		text          string
		buildMocks    func(m test.ServiceMocks)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should start a draft",
			text: "start",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().Start(userID).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Standup started")
			},
		},
		{
			name: "Should stage the yesterday part",
			text: "yesterday shipped the release",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					SetPart(userID, domain.PartYesterday, "shipped the release").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "yesterday staged")
			},
		},
		{
			name: "Should return usage when part text is empty",
			text: "today",
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Usage: `/standup today <text>`")
			},
		},
		{
			name: "Should return not-started message from the workflow",
			text: "blockers waiting on reviews",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					SetPart(userID, domain.PartBlockers, "waiting on reviews").
					Return(domain.ErrNotStarted).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "not started")
			},
		},
		{
			name: "Should review the draft in fixed order",
			text: "review",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					Review(userID).
					Return([]string{"A", domain.UnsetSentinel, "C"}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "yesterday: A\ntoday: <unset>\nblockers: C", response.Text)
			},
		},
		{
			name: "Should commit the draft",
			text: "commit",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().Commit(userID).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "committed their standup")
			},
		},
		{
			name: "Should name the first missing part on commit",
			text: "commit",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					Commit(userID).
					Return(&domain.MissingPartError{Part: domain.PartToday}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "missing today")
			},
		},
		{
			name: "Should hide storage details behind a generic commit error",
			text: "commit",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					Commit(userID).
					Return(errors.New("disk I/O error")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Equal(t, "Failed to save your standup.", response.Text)
			},
		},
		{
			name: "Should show own entries for an explicit date",
			text: "log 2024-01-05",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					Entries(userID, "2024-01-05").
					Return([]*entity.StandupEntry{
						{ID: 7, Date: "2024-01-05", Yesterday: "A", Today: "B", Blockers: "C", Author: userID},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Statuses for <@U123456789> on 2024-01-05")
				assert.Contains(t, response.Text, "#7 yesterday: A")
				assert.Contains(t, response.Text, "#7 today: B")
				assert.Contains(t, response.Text, "#7 blockers: C")
			},
		},
		{
			name: "Should default the log date to the caller's local today",
			text: "log",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					LocalToday(userID).
					Return("2024-01-08", nil).Times(1)
				m.StandupServiceMock.EXPECT().
					Entries(userID, "2024-01-08").
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "on 2024-01-08")
				assert.Contains(t, response.Text, "(none)")
			},
		},
		{
			name: "Should reject a malformed log date",
			text: "log 01/05/2024",
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Invalid date: 01/05/2024")
			},
		},
		{
			name: "Should tell the caller when their timezone is unresolved",
			text: "log",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					LocalToday(userID).
					Return("", domain.ErrNoTimezone).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "not in any timezone group")
			},
		},
		{
			name: "Should delete an entry by id",
			text: "delete 12",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					Delete(userID, int64(12)).
					Return(int64(1), nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Deleted: id 12")
			},
		},
		{
			name: "Should report when nothing was deleted",
			text: "delete 999",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					Delete(userID, int64(999)).
					Return(int64(0), nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Couldn't delete id 999")
			},
		},
		{
			name: "Should reject a non-integer delete id",
			text: "delete abc",
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Invalid id: abc")
			},
		},
		{
			name: "Should show the whole team for a date",
			text: "team 2024-01-05",
			buildMocks: func(m test.ServiceMocks) {
				m.StandupServiceMock.EXPECT().
					TeamEntries("2024-01-05").
					Return([]*entity.StandupEntry{
						{ID: 1, Date: "2024-01-05", Yesterday: "A1", Today: "B1", Blockers: "C1", Author: "U111"},
						{ID: 2, Date: "2024-01-05", Yesterday: "A2", Today: "B2", Blockers: "C2", Author: "U222"},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "*<@U111>*:")
				assert.Contains(t, response.Text, "#1 yesterday: A1")
				assert.Contains(t, response.Text, "#1 today: B1")
				assert.Contains(t, response.Text, "#1 blockers: C1")
				assert.Contains(t, response.Text, "*<@U222>*:")
				assert.Contains(t, response.Text, "#2 yesterday: A2")
				assert.Contains(t, response.Text, "#2 today: B2")
				assert.Contains(t, response.Text, "#2 blockers: C2")
			},
		},
		{
			name: "Should show help for empty text",
			text: "",
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "Standup commands")
			},
		},
		{
			name: "Should reject unknown subcommands",
			text: "frobnicate",
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeMsg(t, resp)
				assert.Contains(t, response.Text, "unknown command: frobnicate")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m)
			}

			req := test.CreateSlackRequest(t, "/standup", tt.text, "C123456789", userID)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_BadSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/standup", "start", "C123456789", "U123456789")
	req.Header.Set("X-Slack-Signature", "v0=deadbeef")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

package leaderboard

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"voicebank/config"
	"voicebank/models"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) TopBalances(ctx context.Context, now time.Time, limit int) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardService) TopTimes(ctx context.Context, now time.Time, limit int) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func stubHTTPResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestHandleLeaderboard_DefersThenEdits(t *testing.T) {
	config.SetTestConfig(config.NewTestConfig())
	defer config.ResetConfig()

	var callback, edit string
	s := &discordgo.Session{
		Ratelimiter: discordgo.NewRatelimiter(),
		Client: &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			switch {
			case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/callback"):
				body, _ := io.ReadAll(req.Body)
				callback = string(body)
				return stubHTTPResponse(http.StatusNoContent, ""), nil
			case req.Method == http.MethodPatch && strings.HasSuffix(req.URL.Path, "/messages/@original"):
				body, _ := io.ReadAll(req.Body)
				edit = string(body)
				return stubHTTPResponse(http.StatusOK, `{"id":"1"}`), nil
			}
			// Display name lookups fall back to the raw ID
			return stubHTTPResponse(http.StatusNotFound, `{"message":"not found"}`), nil
		})},
	}

	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "902",
		AppID:   "10",
		Token:   "token",
		GuildID: "1",
		Type:    discordgo.InteractionApplicationCommand,
		Member:  &discordgo.Member{User: &discordgo.User{ID: "55", Username: "caller"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "leaderboard",
		},
	}}

	mockService := new(MockLeaderboardService)
	mockService.On("TopBalances", mock.Anything, mock.Anything, topN).Return([]*models.LeaderboardEntry{
		{Rank: 1, UserID: 7, Value: 300},
		{Rank: 2, UserID: 8, Value: 120},
	}, nil)

	f := New(mockService)
	f.HandleCommand(s, i)

	// The deferred acknowledgement goes out before any lookup
	require.NotEmpty(t, callback)
	assert.Contains(t, callback, `"type":5`)

	assert.Contains(t, edit, "Leaderboard")
	assert.Contains(t, edit, "300")
	mockService.AssertExpectations(t)
}

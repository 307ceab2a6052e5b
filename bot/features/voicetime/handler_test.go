package voicetime

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func stubHTTPResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestHandleVoiceTime_RejectsBotTarget(t *testing.T) {
	var callback string
	s := &discordgo.Session{
		Ratelimiter: discordgo.NewRatelimiter(),
		Client: &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			switch {
			case req.Method == http.MethodGet && strings.HasSuffix(req.URL.Path, "/users/99"):
				return stubHTTPResponse(http.StatusOK, `{"id":"99","username":"beep","bot":true}`), nil
			case req.Method == http.MethodPost && strings.HasSuffix(req.URL.Path, "/callback"):
				body, _ := io.ReadAll(req.Body)
				callback = string(body)
				return stubHTTPResponse(http.StatusNoContent, ""), nil
			}
			return stubHTTPResponse(http.StatusNotFound, `{"message":"not found"}`), nil
		})},
	}

	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "901",
		Token:   "token",
		GuildID: "1",
		Type:    discordgo.InteractionApplicationCommand,
		Member:  &discordgo.Member{User: &discordgo.User{ID: "55", Username: "caller"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "voicetime",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: "99"},
			},
		},
	}}

	f := New(nil)
	f.HandleCommand(s, i)

	assert.Contains(t, callback, "Bots don't have voice time!")
	assert.Contains(t, callback, `"flags":64`)
}

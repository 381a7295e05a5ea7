package slack

import (
	"errors"
	"testing"

	slackapi "github.com/slack-go/slack"
)

type mockClient struct {
	channels []string
	err      error
}

func (m *mockClient) PostMessage(channelID string, options ...slackapi.MsgOption) (string, string, error) {
	m.channels = append(m.channels, channelID)
	return channelID, "ts", m.err
}

func TestNew_RequiresChannelAndToken(t *testing.T) {
	if _, err := New(Opts{BotToken: "xoxb-x"}); err == nil {
		t.Error("expected error without channel id")
	}
	if _, err := New(Opts{ChannelID: "C1"}); err == nil {
		t.Error("expected error without token or client")
	}
}

func TestPost(t *testing.T) {
	mock := &mockClient{}
	n, err := New(Opts{ChannelID: "C1", Client: mock})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := n.Post("matrix rebuilt"); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if len(mock.channels) != 1 || mock.channels[0] != "C1" {
		t.Errorf("posted to %v, want [C1]", mock.channels)
	}
}

func TestPost_Error(t *testing.T) {
	mock := &mockClient{err: errors.New("rate limited")}
	n, err := New(Opts{ChannelID: "C1", Client: mock})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := n.Post("hi"); err == nil {
		t.Error("expected error from failed post")
	}
}

package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
)

type mockClient struct {
	sent []string
	err  error
}

func (m *mockClient) ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.sent = append(m.sent, content)
	if m.err != nil {
		return nil, m.err
	}
	return &discordgo.Message{Content: content}, nil
}

func TestNew_RequiresChannelAndToken(t *testing.T) {
	if _, err := New(Opts{BotToken: "tok"}); err == nil {
		t.Error("expected error without channel id")
	}
	if _, err := New(Opts{ChannelID: "123"}); err == nil {
		t.Error("expected error without token or client")
	}
}

func TestPost(t *testing.T) {
	mock := &mockClient{}
	n, err := New(Opts{ChannelID: "123", Client: mock})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := n.Post("row TX added"); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if len(mock.sent) != 1 || mock.sent[0] != "row TX added" {
		t.Errorf("sent %v, want [row TX added]", mock.sent)
	}
}

func TestPost_Error(t *testing.T) {
	mock := &mockClient{err: errors.New("forbidden")}
	n, err := New(Opts{ChannelID: "123", Client: mock})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := n.Post("hi"); err == nil {
		t.Error("expected error from failed post")
	}
}

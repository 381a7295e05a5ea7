package notify

import (
	"errors"
	"strings"
	"testing"
)

type fakeNotifier struct {
	name  string
	posts []string
	err   error
}

func (f *fakeNotifier) Name() string { return f.name }
func (f *fakeNotifier) Post(text string) error {
	f.posts = append(f.posts, text)
	return f.err
}

func TestMulti_PostsToAll(t *testing.T) {
	a := &fakeNotifier{name: "a"}
	b := &fakeNotifier{name: "b"}
	m := Multi{a, b}

	if err := m.Post("hello"); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if len(a.posts) != 1 || len(b.posts) != 1 {
		t.Errorf("posts = %d/%d, want 1/1", len(a.posts), len(b.posts))
	}
}

func TestMulti_OneFailureDoesNotStopOthers(t *testing.T) {
	a := &fakeNotifier{name: "a", err: errors.New("down")}
	b := &fakeNotifier{name: "b"}
	m := Multi{a, b}

	err := m.Post("hello")
	if err == nil {
		t.Fatal("expected aggregate error")
	}
	if !strings.Contains(err.Error(), "a: down") {
		t.Errorf("error %q missing failed destination", err)
	}
	if len(b.posts) != 1 {
		t.Errorf("b received %d posts, want 1", len(b.posts))
	}
}

func TestMulti_EmptyIsNoOp(t *testing.T) {
	var m Multi
	if err := m.Post("hello"); err != nil {
		t.Errorf("empty Multi Post: %v", err)
	}
}

func TestEventMessages(t *testing.T) {
	if msg := RowAdded("TX", 4); !strings.Contains(msg, "TX") || !strings.Contains(msg, "4") {
		t.Errorf("RowAdded message %q missing details", msg)
	}
	if msg := RowRemoved("TX"); !strings.Contains(msg, "TX") {
		t.Errorf("RowRemoved message %q missing prefix", msg)
	}
}

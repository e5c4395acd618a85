package ai

import (
	"context"
	"errors"
	"testing"
)

type fakeProvider struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) GenerateText(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestCascade_FirstProviderWins(t *testing.T) {
	first := &fakeProvider{name: "a", text: "reply from a"}
	second := &fakeProvider{name: "b", text: "reply from b"}
	c := NewCascade(first, second)

	got, err := c.GenerateText(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "reply from a" {
		t.Errorf("got %q, want reply from a", got)
	}
	if second.calls != 0 {
		t.Errorf("second provider was called %d times, want 0", second.calls)
	}
}

func TestCascade_FallsThroughOnError(t *testing.T) {
	first := &fakeProvider{name: "a", err: errors.New("quota exceeded")}
	second := &fakeProvider{name: "b", text: "reply from b"}
	c := NewCascade(first, second)

	got, err := c.GenerateText(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "reply from b" {
		t.Errorf("got %q, want reply from b", got)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Errorf("calls = (%d, %d), want (1, 1)", first.calls, second.calls)
	}
}

func TestCascade_FallsThroughOnEmptyText(t *testing.T) {
	first := &fakeProvider{name: "a", text: "   \n"}
	second := &fakeProvider{name: "b", text: "usable"}
	c := NewCascade(first, second)

	got, err := c.GenerateText(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "usable" {
		t.Errorf("got %q, want usable", got)
	}
}

func TestCascade_AllFail(t *testing.T) {
	c := NewCascade(
		&fakeProvider{name: "a", err: errors.New("down")},
		&fakeProvider{name: "b", err: errors.New("also down")},
	)
	if _, err := c.GenerateText(context.Background(), "prompt"); !errors.Is(err, ErrNoProvider) {
		t.Fatalf("got %v, want ErrNoProvider", err)
	}
}

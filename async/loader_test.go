package async

import (
	"context"
	"testing"
	"time"
)

func waitPoll[T any](t *testing.T, l *Loader[T]) Result[T] {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r, ok := l.Poll(); ok {
			return r
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for result")
	return Result[T]{}
}

func TestLoaderDeliversOnce(t *testing.T) {
	l := NewLoader[int]()
	token := l.Start(context.Background(), func(context.Context) (int, error) { return 7, nil })

	r := waitPoll(t, l)
	if r.Token != token || r.Value != 7 || r.Err != nil {
		t.Fatalf("unexpected result %+v", r)
	}
	if _, ok := l.Poll(); ok {
		t.Fatalf("result should be delivered once")
	}
	if l.Busy() {
		t.Fatalf("loader should be idle after delivery")
	}
}

func TestLoaderDiscardsStaleResult(t *testing.T) {
	l := NewLoader[string]()
	release := make(chan struct{})
	canceled := make(chan bool, 1)

	l.Start(context.Background(), func(ctx context.Context) (string, error) {
		<-release
		canceled <- ctx.Err() != nil
		return "stale", nil
	})
	second := l.Start(context.Background(), func(context.Context) (string, error) { return "fresh", nil })

	r := waitPoll(t, l)
	if r.Token != second || r.Value != "fresh" {
		t.Fatalf("expected fresh result, got %+v", r)
	}

	close(release)
	if !<-canceled {
		t.Fatalf("superseded job should see a canceled context")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := l.Poll(); ok {
		t.Fatalf("stale result must be discarded")
	}
}

func TestLoaderCancel(t *testing.T) {
	l := NewLoader[int]()
	release := make(chan struct{})
	l.Start(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})
	if !l.Busy() {
		t.Fatalf("expected busy loader")
	}
	l.Cancel()
	close(release)
	time.Sleep(20 * time.Millisecond)
	if _, ok := l.Poll(); ok {
		t.Fatalf("canceled job must not deliver")
	}
}

package messenger

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestResolveWithoutWaiter(t *testing.T) {
	r := NewConfirmRegistry()
	if r.Resolve("h", true) {
		t.Fatal("resolve with no waiter should report false")
	}
}

func TestWaitResolvedConfirmed(t *testing.T) {
	r := NewConfirmRegistry()

	done := make(chan bool, 1)
	go func() {
		ok, err := r.Wait(context.Background(), "h")
		if err != nil {
			t.Error(err)
		}
		done <- ok
	}()

	waitPending(t, r, "h")
	if !r.Resolve("h", true) {
		t.Fatal("resolve should find the waiter")
	}

	select {
	case ok := <-done:
		if !ok {
			t.Fatal("want confirmed outcome")
		}
	case <-time.After(time.Second):
		t.Fatal("waiter never woke")
	}

	if r.Pending("h") {
		t.Fatal("registry should be empty after resolve")
	}
}

func TestSecondWaitRejected(t *testing.T) {
	r := NewConfirmRegistry()

	go r.Wait(context.Background(), "h")
	waitPending(t, r, "h")

	if _, err := r.Wait(context.Background(), "h"); !errors.Is(err, ErrConfirmPending) {
		t.Fatalf("want ErrConfirmPending, got %v", err)
	}

	r.Resolve("h", false)
}

func TestWaitCancelled(t *testing.T) {
	r := NewConfirmRegistry()

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() {
		_, err := r.Wait(ctx, "h")
		errc <- err
	}()

	waitPending(t, r, "h")
	cancel()

	select {
	case err := <-errc:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("want context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("waiter never returned")
	}
}

func TestTenantsWaitIndependently(t *testing.T) {
	r := NewConfirmRegistry()

	outcomes := make(chan bool, 2)
	for _, h := range []string{"a", "b"} {
		h := h
		go func() {
			ok, _ := r.Wait(context.Background(), h)
			outcomes <- ok
		}()
	}
	waitPending(t, r, "a")
	waitPending(t, r, "b")

	r.Resolve("a", true)
	r.Resolve("b", false)

	got := map[bool]int{}
	for i := 0; i < 2; i++ {
		select {
		case ok := <-outcomes:
			got[ok]++
		case <-time.After(time.Second):
			t.Fatal("waiters never woke")
		}
	}
	if got[true] != 1 || got[false] != 1 {
		t.Fatalf("want one confirm and one decline, got %v", got)
	}
}

func TestGuestNameFromContext(t *testing.T) {
	if got := GuestNameFromContext(context.Background()); got != "Guest" {
		t.Fatalf("want default Guest, got %q", got)
	}
	ctx := WithGuestName(context.Background(), "Alice")
	if got := GuestNameFromContext(ctx); got != "Alice" {
		t.Fatalf("want Alice, got %q", got)
	}
}

func waitPending(t *testing.T, r *ConfirmRegistry, hotelID string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if r.Pending(hotelID) {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("no pending confirmation for %s", hotelID)
}

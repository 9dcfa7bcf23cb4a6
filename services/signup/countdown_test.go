package signup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return cond()
}

func TestStartCountdown(t *testing.T) {
	t.Run("fires done exactly once after the ticks elapse", func(t *testing.T) {
		var fires atomic.Int64
		c := StartCountdown(3, time.Millisecond, func() { fires.Add(1) })

		if !waitFor(t, 2*time.Second, c.Fired) {
			t.Fatal("countdown never fired")
		}
		// Give a stray extra tick a chance to misfire.
		time.Sleep(20 * time.Millisecond)
		if got := fires.Load(); got != 1 {
			t.Errorf("done ran %d times, want 1", got)
		}
		if c.Remaining() != 0 {
			t.Errorf("remaining = %d after firing", c.Remaining())
		}
	})

	t.Run("stop prevents firing", func(t *testing.T) {
		var fires atomic.Int64
		c := StartCountdown(1000, time.Millisecond, func() { fires.Add(1) })
		c.Stop()
		time.Sleep(20 * time.Millisecond)
		if fires.Load() != 0 {
			t.Error("done ran after Stop")
		}
		if c.Fired() {
			t.Error("Fired() true after Stop")
		}
	})

	t.Run("stop is safe to repeat", func(t *testing.T) {
		c := StartCountdown(1000, time.Millisecond, func() {})
		c.Stop()
		c.Stop()
	})

	t.Run("remaining counts down and never goes negative", func(t *testing.T) {
		c := StartCountdown(2, time.Millisecond, func() {})
		if r := c.Remaining(); r > 2 {
			t.Errorf("remaining = %d, want at most 2", r)
		}
		waitFor(t, 2*time.Second, c.Fired)
		time.Sleep(10 * time.Millisecond)
		if c.Remaining() != 0 {
			t.Errorf("remaining = %d, want 0", c.Remaining())
		}
	})
}

func finalizeFixture(t *testing.T, tick time.Duration) (*wizardFixture, string) {
	t.Helper()
	f := newWizardFixture()
	f.svc.CountdownTick = tick
	draftID := f.advanceToCard(t, "viewer@example.com")
	if _, err := f.svc.SubmitCardDetails(context.Background(), draftID, validCard()); err != nil {
		t.Fatalf("SubmitCardDetails: %v", err)
	}
	return f, draftID
}

func TestSuccessCountdown(t *testing.T) {
	t.Run("success state is visible while the countdown runs", func(t *testing.T) {
		f, draftID := finalizeFixture(t, time.Minute)

		state, ok := f.svc.SuccessStatus(draftID)
		if !ok {
			t.Fatal("no success state after finalization")
		}
		if state.RedirectTo != "/auth/login" {
			t.Errorf("redirect = %q", state.RedirectTo)
		}
		if state.Remaining != 5 {
			t.Errorf("remaining = %d, want 5", state.Remaining)
		}
		if state.UserID != f.users.users["viewer@example.com"].ID {
			t.Error("success state names the wrong user")
		}
	})

	t.Run("the countdown expires the success state on its own", func(t *testing.T) {
		f, draftID := finalizeFixture(t, time.Millisecond)

		gone := waitFor(t, 2*time.Second, func() bool {
			_, ok := f.svc.SuccessStatus(draftID)
			return !ok
		})
		if !gone {
			t.Error("success state never expired")
		}
	})

	t.Run("sign in now cancels the countdown", func(t *testing.T) {
		f, draftID := finalizeFixture(t, time.Minute)

		f.svc.AcknowledgeSuccess(draftID)
		if _, ok := f.svc.SuccessStatus(draftID); ok {
			t.Error("success state should be gone after acknowledgement")
		}
		// Acknowledging twice, or acknowledging an unknown draft, is a no-op.
		f.svc.AcknowledgeSuccess(draftID)
		f.svc.AcknowledgeSuccess("no-such-draft")
	})

	t.Run("unknown drafts have no success state", func(t *testing.T) {
		f := newWizardFixture()
		if _, ok := f.svc.SuccessStatus("nope"); ok {
			t.Error("unexpected success state")
		}
	})
}

func TestSuccessStateIsPerDraft(t *testing.T) {
	f := newWizardFixture()
	f.svc.CountdownTick = time.Minute
	ctx := context.Background()

	first := f.advanceToCard(t, "one@example.com")
	if _, err := f.svc.SubmitCardDetails(ctx, first, validCard()); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	second := f.advanceToCard(t, "two@example.com")
	if _, err := f.svc.SubmitCardDetails(ctx, second, validCard()); err != nil {
		t.Fatalf("second signup: %v", err)
	}

	f.svc.AcknowledgeSuccess(first)
	if _, ok := f.svc.SuccessStatus(first); ok {
		t.Error("first success state should be gone")
	}
	if _, ok := f.svc.SuccessStatus(second); !ok {
		t.Error("second success state should be untouched")
	}
}

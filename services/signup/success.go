// File: services/signup/success.go
package signup

import "time"

// successEntry tracks one finalized signup until its countdown navigates the
// viewer to login (or they click "sign in now" first).
type successEntry struct {
	userID    string
	countdown *Countdown
}

func (s *DefaultService) startSuccessCountdown(draftID, userID string) {
	tick := s.CountdownTick
	if tick <= 0 {
		tick = time.Second
	}
	entry := &successEntry{userID: userID}
	entry.countdown = StartCountdown(countdownSeconds, tick, func() {
		// The auto-navigation moment: the success screen is done with.
		s.countdowns.Delete(draftID)
	})
	s.countdowns.Store(draftID, entry)
}

// SuccessStatus returns the live countdown for a finalized signup, or false
// once it has navigated away (or never existed).
func (s *DefaultService) SuccessStatus(draftID string) (*SuccessState, bool) {
	v, ok := s.countdowns.Load(draftID)
	if !ok {
		return nil, false
	}
	entry := v.(*successEntry)
	return &SuccessState{
		UserID:     entry.userID,
		Remaining:  entry.countdown.Remaining(),
		RedirectTo: loginRedirect,
	}, true
}

// AcknowledgeSuccess is "sign in now": it cancels the pending countdown so
// the automatic navigation cannot fire a second time later.
func (s *DefaultService) AcknowledgeSuccess(draftID string) {
	v, ok := s.countdowns.LoadAndDelete(draftID)
	if !ok {
		return
	}
	v.(*successEntry).countdown.Stop()
}

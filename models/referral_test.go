package models

import "testing"

func TestReferralStatusIsValid(t *testing.T) {
	for _, s := range []ReferralStatus{StatusPending, StatusReviewing, StatusApproved, StatusCompleted, StatusDeclined} {
		if !s.IsValid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	for _, s := range []ReferralStatus{"", "archived", "Pending"} {
		if s.IsValid() {
			t.Errorf("status %q should be invalid", s)
		}
	}
}

func TestUrgencyLevelIsValid(t *testing.T) {
	for _, u := range []UrgencyLevel{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical} {
		if !u.IsValid() {
			t.Errorf("urgency %q should be valid", u)
		}
	}
	if UrgencyLevel("urgent").IsValid() {
		t.Error("unknown urgency should be invalid")
	}
}

package entity

import "testing"

func TestStatusString(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusPending, "Pending"},
		{StatusProcessing, "Processing"},
		{StatusCompleted, "Completed"},
		{StatusCancelled, "Cancelled"},
		{StatusRejected, "Rejected"},
		{Status(0), "Unknown"},
		{Status(99), "Unknown"},
	}
	for _, c := range cases {
		if got := c.status.String(); got != c.want {
			t.Errorf("Status(%d).String() = %q, want %q", c.status, got, c.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for s := StatusPending; s <= StatusRejected; s++ {
		if !s.Valid() {
			t.Errorf("expected status %d to be valid", s)
		}
	}
	if Status(0).Valid() {
		t.Error("expected status 0 to be invalid")
	}
	if Status(6).Valid() {
		t.Error("expected status 6 to be invalid")
	}
}

func TestStatusTerminal(t *testing.T) {
	terminal := []Status{StatusCompleted, StatusCancelled, StatusRejected}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("expected status %s to be terminal", s)
		}
	}
	if StatusPending.Terminal() {
		t.Error("expected Pending to be non-terminal")
	}
	if StatusProcessing.Terminal() {
		t.Error("expected Processing to be non-terminal")
	}
	if Status(99).Terminal() {
		t.Error("expected unknown status to be non-terminal")
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusCompleted, false},
		{StatusProcessing, StatusCompleted, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusRejected, false},
		{StatusProcessing, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusRejected, StatusProcessing, false},
		// Re-requesting the current status is always permitted.
		{StatusPending, StatusPending, true},
		{StatusCompleted, StatusCompleted, true},
	}
	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.allowed {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", c.from, c.to, got, c.allowed)
		}
	}
}

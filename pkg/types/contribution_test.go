package types

import (
	"errors"
	"testing"
	"time"
)

func TestContributionApprove(t *testing.T) {
	t.Run("locks the grant from the proposal", func(t *testing.T) {
		c := &Contribution{Status: ContributionProposed, Proposed: 200}
		at := time.Now().UTC()
		if err := c.Approve("approver-1", at); err != nil {
			t.Fatal(err)
		}
		if c.Status != ContributionApproved {
			t.Fatalf("expected approved, got %s", c.Status)
		}
		if c.Final == nil || *c.Final != 200 {
			t.Fatalf("expected final 200, got %v", c.Final)
		}
		if c.AcceptedBy == nil || *c.AcceptedBy != "approver-1" {
			t.Fatalf("expected approver-1, got %v", c.AcceptedBy)
		}
		if c.AcceptedAt == nil || !c.AcceptedAt.Equal(at) {
			t.Fatalf("expected accepted at %v, got %v", at, c.AcceptedAt)
		}
	})

	t.Run("approved is terminal", func(t *testing.T) {
		c := &Contribution{Status: ContributionApproved}
		if err := c.Approve("x", time.Now()); !errors.Is(err, ErrAlreadyFinalized) {
			t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
		}
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		c := &Contribution{Status: ContributionRejected}
		if err := c.Approve("x", time.Now()); !errors.Is(err, ErrAlreadyFinalized) {
			t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
		}
	})
}

func TestContributionReject(t *testing.T) {
	t.Run("rejects a proposal", func(t *testing.T) {
		c := &Contribution{Status: ContributionProposed, Proposed: 200}
		if err := c.Reject(time.Now().UTC()); err != nil {
			t.Fatal(err)
		}
		if c.Status != ContributionRejected {
			t.Fatalf("expected rejected, got %s", c.Status)
		}
		if c.Final != nil {
			t.Fatal("reject must not set a final grant")
		}
	})

	t.Run("second reject returns ErrAlreadyFinalized", func(t *testing.T) {
		c := &Contribution{Status: ContributionProposed}
		if err := c.Reject(time.Now()); err != nil {
			t.Fatal(err)
		}
		if err := c.Reject(time.Now()); !errors.Is(err, ErrAlreadyFinalized) {
			t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
		}
	})
}

func TestContributionFinalized(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{ContributionProposed, false},
		{ContributionApproved, true},
		{ContributionRejected, true},
	}
	for _, tt := range tests {
		c := &Contribution{Status: tt.status}
		if got := c.Finalized(); got != tt.want {
			t.Fatalf("Finalized() for %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}

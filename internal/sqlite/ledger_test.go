package sqlite

import (
	"errors"
	"testing"

	"github.com/mesh-intelligence/captable/pkg/types"
)

func TestCreateProject(t *testing.T) {
	t.Run("writes the INIT split", func(t *testing.T) {
		b := newTestBackend(t)
		project, err := b.CreateProject("venture", 4000, 2000, 4000)
		if err != nil {
			t.Fatal(err)
		}
		if project.Policy.OwnerMin != 4000 || project.Policy.PlatformCap != 2000 {
			t.Fatalf("unexpected policy: %+v", project.Policy)
		}

		entries, err := b.Entries("venture")
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}
		for i, e := range entries {
			if e.Source != types.SourceInit {
				t.Fatalf("entry %d source %q, want INIT", i, e.Source)
			}
			if e.Seq != int64(i+1) {
				t.Fatalf("entry %d seq %d, want %d", i, e.Seq, i+1)
			}
		}

		state, err := b.Aggregate("venture")
		if err != nil {
			t.Fatal(err)
		}
		want := types.CapTableState{Owner: 4000, Platform: 2000, Reserve: 4000}
		if state != want {
			t.Fatalf("state %+v, want %+v", state, want)
		}
	})

	t.Run("duplicate project returns ErrProjectExists", func(t *testing.T) {
		b := newTestBackend(t)
		if _, err := b.CreateProject("venture", 4000, 2000, 4000); err != nil {
			t.Fatal(err)
		}
		_, err := b.CreateProject("venture", 5000, 1000, 4000)
		if !errors.Is(err, types.ErrProjectExists) {
			t.Fatalf("expected ErrProjectExists, got %v", err)
		}
	})

	t.Run("unbalanced split is rejected", func(t *testing.T) {
		b := newTestBackend(t)
		_, err := b.CreateProject("venture", 4000, 2000, 3000)
		if !errors.Is(err, types.ErrUnbalancedEntries) {
			t.Fatalf("expected ErrUnbalancedEntries, got %v", err)
		}
	})

	t.Run("unknown project aggregates to the zero state", func(t *testing.T) {
		b := newTestBackend(t)
		state, err := b.Aggregate("missing")
		if err != nil {
			t.Fatal(err)
		}
		if state.Total() != 0 {
			t.Fatalf("expected zero state, got %+v", state)
		}
	})
}

func TestUpdatePolicy(t *testing.T) {
	b := newTestBackend(t)
	if _, err := b.CreateProject("venture", 4000, 2000, 4000); err != nil {
		t.Fatal(err)
	}

	project, err := b.UpdatePolicy("venture", types.ProjectPolicy{OwnerMin: 3500, PlatformCap: 2500})
	if err != nil {
		t.Fatal(err)
	}
	if project.Policy.OwnerMin != 3500 || project.Policy.PlatformCap != 2500 {
		t.Fatalf("unexpected policy: %+v", project.Policy)
	}

	// Policy updates never touch the ledger.
	entries, err := b.Entries("venture")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	_, err = b.UpdatePolicy("missing", types.ProjectPolicy{OwnerMin: 3500, PlatformCap: 2500})
	if !errors.Is(err, types.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAppendAdjustment(t *testing.T) {
	t.Run("offsetting pair moves equity between classes", func(t *testing.T) {
		b := newTestBackend(t)
		if _, err := b.CreateProject("venture", 4000, 2000, 4000); err != nil {
			t.Fatal(err)
		}

		pair := []types.LedgerEntry{
			{Holder: types.HolderOwner, Delta: -500, Source: types.SourceAdjust},
			{Holder: types.HolderReserve, Delta: 500, Source: types.SourceAdjust},
		}
		appended, err := b.AppendAdjustment("venture", pair)
		if err != nil {
			t.Fatal(err)
		}
		if len(appended) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(appended))
		}
		if appended[0].Seq != 4 || appended[1].Seq != 5 {
			t.Fatalf("unexpected sequences: %d, %d", appended[0].Seq, appended[1].Seq)
		}

		state, err := b.Aggregate("venture")
		if err != nil {
			t.Fatal(err)
		}
		if state.Owner != 3500 || state.Reserve != 4500 || !state.Balanced() {
			t.Fatalf("unexpected state: %+v", state)
		}
	})

	t.Run("non-zero net is rejected", func(t *testing.T) {
		b := newTestBackend(t)
		if _, err := b.CreateProject("venture", 4000, 2000, 4000); err != nil {
			t.Fatal(err)
		}
		_, err := b.AppendAdjustment("venture", []types.LedgerEntry{
			{Holder: types.HolderReserve, Delta: 500, Source: types.SourceAdjust},
		})
		if !errors.Is(err, types.ErrUnbalancedEntries) {
			t.Fatalf("expected ErrUnbalancedEntries, got %v", err)
		}
	})

	t.Run("driving a class negative is rejected", func(t *testing.T) {
		b := newTestBackend(t)
		if _, err := b.CreateProject("venture", 4000, 2000, 4000); err != nil {
			t.Fatal(err)
		}
		_, err := b.AppendAdjustment("venture", []types.LedgerEntry{
			{Holder: types.HolderUser, Delta: -100, Source: types.SourceAdjust},
			{Holder: types.HolderReserve, Delta: 100, Source: types.SourceAdjust},
		})
		if !errors.Is(err, types.ErrNegativeHolding) {
			t.Fatalf("expected ErrNegativeHolding, got %v", err)
		}
	})

	t.Run("unknown holder type is rejected", func(t *testing.T) {
		b := newTestBackend(t)
		if _, err := b.CreateProject("venture", 4000, 2000, 4000); err != nil {
			t.Fatal(err)
		}
		_, err := b.AppendAdjustment("venture", []types.LedgerEntry{
			{Holder: "advisor", Delta: -100, Source: types.SourceAdjust},
			{Holder: types.HolderReserve, Delta: 100, Source: types.SourceAdjust},
		})
		if !errors.Is(err, types.ErrUnknownHolderType) {
			t.Fatalf("expected ErrUnknownHolderType, got %v", err)
		}
	})

	t.Run("unknown project is rejected", func(t *testing.T) {
		b := newTestBackend(t)
		_, err := b.AppendAdjustment("missing", []types.LedgerEntry{
			{Holder: types.HolderOwner, Delta: -100, Source: types.SourceAdjust},
			{Holder: types.HolderReserve, Delta: 100, Source: types.SourceAdjust},
		})
		if !errors.Is(err, types.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestContributionPersistence(t *testing.T) {
	t.Run("create assigns ID, status, and timestamps", func(t *testing.T) {
		b := newTestBackend(t)
		if _, err := b.CreateProject("venture", 4000, 2000, 4000); err != nil {
			t.Fatal(err)
		}

		c, err := b.CreateContribution(&types.Contribution{
			ProjectID:     "venture",
			TaskRef:       "TASK-1",
			ContributorID: "alice",
			Effort:        10,
			Impact:        4,
			Proposed:      150,
		})
		if err != nil {
			t.Fatal(err)
		}
		if c.ContributionID == "" {
			t.Fatal("expected generated ID")
		}
		if c.Status != types.ContributionProposed {
			t.Fatalf("expected proposed, got %s", c.Status)
		}

		got, err := b.GetContribution(c.ContributionID)
		if err != nil {
			t.Fatal(err)
		}
		if got.TaskRef != "TASK-1" || got.ContributorID != "alice" || got.Proposed != 150 {
			t.Fatalf("round-trip mismatch: %+v", got)
		}
		if got.Final != nil || got.AcceptedAt != nil || got.AcceptedBy != nil {
			t.Fatal("proposed contribution must have no approval fields")
		}
	})

	t.Run("create against unknown project fails", func(t *testing.T) {
		b := newTestBackend(t)
		_, err := b.CreateContribution(&types.Contribution{ProjectID: "missing", Proposed: 100})
		if !errors.Is(err, types.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list returns oldest first", func(t *testing.T) {
		b := newTestBackend(t)
		if _, err := b.CreateProject("venture", 4000, 2000, 4000); err != nil {
			t.Fatal(err)
		}
		for _, task := range []string{"TASK-1", "TASK-2", "TASK-3"} {
			if _, err := b.CreateContribution(&types.Contribution{
				ProjectID: "venture", TaskRef: task, ContributorID: "alice", Impact: 3, Proposed: 100,
			}); err != nil {
				t.Fatal(err)
			}
		}
		list, err := b.Contributions("venture")
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 3 {
			t.Fatalf("expected 3, got %d", len(list))
		}
		if list[0].TaskRef != "TASK-1" || list[2].TaskRef != "TASK-3" {
			t.Fatalf("unexpected order: %s, %s, %s", list[0].TaskRef, list[1].TaskRef, list[2].TaskRef)
		}
	})
}

func TestApproveContribution(t *testing.T) {
	setup := func(t *testing.T) (*Backend, *types.Contribution) {
		t.Helper()
		b := newTestBackend(t)
		if _, err := b.CreateProject("venture", 4000, 2000, 4000); err != nil {
			t.Fatal(err)
		}
		c, err := b.CreateContribution(&types.Contribution{
			ProjectID: "venture", TaskRef: "TASK-1", ContributorID: "alice", Impact: 3, Proposed: 200,
		})
		if err != nil {
			t.Fatal(err)
		}
		return b, c
	}

	t.Run("appends the grant pair and finalizes", func(t *testing.T) {
		b, c := setup(t)
		approved, err := b.ApproveContribution(c.ContributionID, "bob", nil)
		if err != nil {
			t.Fatal(err)
		}
		if approved.Status != types.ContributionApproved {
			t.Fatalf("expected approved, got %s", approved.Status)
		}
		if approved.Final == nil || *approved.Final != 200 {
			t.Fatalf("expected final 200, got %v", approved.Final)
		}

		entries, err := b.Entries("venture")
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 5 {
			t.Fatalf("expected 5 entries, got %d", len(entries))
		}
		grant, debit := entries[3], entries[4]
		if grant.Holder != types.HolderUser || grant.Delta != 200 || grant.Source != types.SourceContrib {
			t.Fatalf("unexpected grant entry: %+v", grant)
		}
		if grant.HolderID == nil || *grant.HolderID != "alice" {
			t.Fatalf("grant must name the contributor, got %v", grant.HolderID)
		}
		if debit.Holder != types.HolderReserve || debit.Delta != -200 || debit.Source != types.SourceAdjust {
			t.Fatalf("unexpected reserve debit: %+v", debit)
		}

		state, err := b.Aggregate("venture")
		if err != nil {
			t.Fatal(err)
		}
		if state.Users != 200 || state.Reserve != 3800 || !state.Balanced() {
			t.Fatalf("unexpected state: %+v", state)
		}
	})

	t.Run("check failure leaves everything untouched", func(t *testing.T) {
		b, c := setup(t)
		wantErr := errors.New("guardrail says no")
		_, err := b.ApproveContribution(c.ContributionID, "bob",
			func(_ *types.Project, _ types.CapTableState, _ *types.Contribution) error {
				return wantErr
			})
		if !errors.Is(err, wantErr) {
			t.Fatalf("expected the check error unchanged, got %v", err)
		}

		// Still proposed, still three entries: safe to retry.
		got, err := b.GetContribution(c.ContributionID)
		if err != nil {
			t.Fatal(err)
		}
		if got.Status != types.ContributionProposed {
			t.Fatalf("expected proposed, got %s", got.Status)
		}
		entries, err := b.Entries("venture")
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 3 {
			t.Fatalf("expected 3 entries, got %d", len(entries))
		}

		// And the retry can succeed once the check passes.
		if _, err := b.ApproveContribution(c.ContributionID, "bob", nil); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("check sees the project policy and fresh state", func(t *testing.T) {
		b, c := setup(t)
		var seen types.CapTableState
		_, err := b.ApproveContribution(c.ContributionID, "bob",
			func(p *types.Project, state types.CapTableState, got *types.Contribution) error {
				if p.Policy.OwnerMin != 4000 {
					t.Fatalf("unexpected policy: %+v", p.Policy)
				}
				if got.Proposed != 200 {
					t.Fatalf("unexpected contribution: %+v", got)
				}
				seen = state
				return nil
			})
		if err != nil {
			t.Fatal(err)
		}
		if !seen.Balanced() {
			t.Fatalf("check must see a balanced pre-approval state, got %+v", seen)
		}
	})

	t.Run("second approval returns ErrAlreadyFinalized", func(t *testing.T) {
		b, c := setup(t)
		if _, err := b.ApproveContribution(c.ContributionID, "bob", nil); err != nil {
			t.Fatal(err)
		}
		_, err := b.ApproveContribution(c.ContributionID, "bob", nil)
		if !errors.Is(err, types.ErrAlreadyFinalized) {
			t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
		}
	})

	t.Run("unknown contribution returns ErrNotFound", func(t *testing.T) {
		b, _ := setup(t)
		_, err := b.ApproveContribution("missing", "bob", nil)
		if !errors.Is(err, types.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRejectContribution(t *testing.T) {
	b := newTestBackend(t)
	if _, err := b.CreateProject("venture", 4000, 2000, 4000); err != nil {
		t.Fatal(err)
	}
	c, err := b.CreateContribution(&types.Contribution{
		ProjectID: "venture", TaskRef: "TASK-1", ContributorID: "alice", Impact: 3, Proposed: 200,
	})
	if err != nil {
		t.Fatal(err)
	}

	rejected, err := b.RejectContribution(c.ContributionID)
	if err != nil {
		t.Fatal(err)
	}
	if rejected.Status != types.ContributionRejected {
		t.Fatalf("expected rejected, got %s", rejected.Status)
	}

	// No ledger effect.
	entries, err := b.Entries("venture")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	// Terminal: a second reject reports ErrAlreadyFinalized.
	if _, err := b.RejectContribution(c.ContributionID); !errors.Is(err, types.ErrAlreadyFinalized) {
		t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
	}
	// And so does a late approval.
	if _, err := b.ApproveContribution(c.ContributionID, "bob", nil); !errors.Is(err, types.ErrAlreadyFinalized) {
		t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
	}
}

package sqlite

import (
	"testing"

	"github.com/julianstephens/quartr/internal/models"
)

func TestCreateAndListMonthlyPlans(t *testing.T) {
	store := newTestStore(t)
	project := testProject(t, store)

	// Inserted out of month order on purpose
	for _, month := range []int{3, 1, 2} {
		if _, err := store.CreateMonthlyPlan(models.NewMonthlyPlan{
			ProjectID: project.ID, Month: month, Content: "plan",
		}); err != nil {
			t.Fatalf("CreateMonthlyPlan failed: %v", err)
		}
	}

	plans, err := store.GetMonthlyPlans(project.ID)
	if err != nil {
		t.Fatalf("GetMonthlyPlans failed: %v", err)
	}
	if len(plans) != 3 {
		t.Fatalf("GetMonthlyPlans returned %d plans, want 3", len(plans))
	}
	for i, want := range []int{1, 2, 3} {
		if plans[i].Month != want {
			t.Errorf("plans[%d].Month = %d, want %d", i, plans[i].Month, want)
		}
	}
}

func TestCreateMonthlyPlanValidation(t *testing.T) {
	store := newTestStore(t)
	project := testProject(t, store)

	tests := []struct {
		name string
		plan models.NewMonthlyPlan
	}{
		{"missing project", models.NewMonthlyPlan{Month: 1, Content: "x"}},
		{"month too low", models.NewMonthlyPlan{ProjectID: project.ID, Month: 0, Content: "x"}},
		{"month too high", models.NewMonthlyPlan{ProjectID: project.ID, Month: 13, Content: "x"}},
		{"missing content", models.NewMonthlyPlan{ProjectID: project.ID, Month: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.CreateMonthlyPlan(tt.plan); err == nil {
				t.Error("CreateMonthlyPlan should have failed validation")
			}
		})
	}
}

func TestSetMonthlyPlanPrimary(t *testing.T) {
	store := newTestStore(t)
	project := testProject(t, store)

	first, err := store.CreateMonthlyPlan(models.NewMonthlyPlan{ProjectID: project.ID, Month: 1, Content: "a"})
	if err != nil {
		t.Fatalf("CreateMonthlyPlan failed: %v", err)
	}
	second, err := store.CreateMonthlyPlan(models.NewMonthlyPlan{ProjectID: project.ID, Month: 1, Content: "b"})
	if err != nil {
		t.Fatalf("CreateMonthlyPlan failed: %v", err)
	}

	if err := store.SetMonthlyPlanPrimary(first.ID, true); err != nil {
		t.Fatalf("SetMonthlyPlanPrimary failed: %v", err)
	}

	// The flag is per-row; flagging a second plan leaves the first alone
	if err := store.SetMonthlyPlanPrimary(second.ID, true); err != nil {
		t.Fatalf("SetMonthlyPlanPrimary failed: %v", err)
	}

	plans, err := store.GetMonthlyPlans(project.ID)
	if err != nil {
		t.Fatalf("GetMonthlyPlans failed: %v", err)
	}
	for _, p := range plans {
		if !p.IsPrimary {
			t.Errorf("plan %d lost its primary flag", p.ID)
		}
	}

	if err := store.SetMonthlyPlanPrimary(first.ID, false); err != nil {
		t.Fatalf("SetMonthlyPlanPrimary failed: %v", err)
	}
	plans, _ = store.GetMonthlyPlans(project.ID)
	for _, p := range plans {
		if p.ID == first.ID && p.IsPrimary {
			t.Error("primary flag should have been cleared")
		}
		if p.ID == second.ID && !p.IsPrimary {
			t.Error("other plan's primary flag should be untouched")
		}
	}
}

func TestMonthlyPlanNotFoundErrors(t *testing.T) {
	store := newTestStore(t)

	if err := store.DeleteMonthlyPlan(999); err == nil {
		t.Error("DeleteMonthlyPlan should fail for a missing id")
	}
	if err := store.SetMonthlyPlanPrimary(999, true); err == nil {
		t.Error("SetMonthlyPlanPrimary should fail for a missing id")
	}
}

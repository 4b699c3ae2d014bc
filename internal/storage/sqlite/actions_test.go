package sqlite

import (
	"testing"

	"github.com/julianstephens/quartr/internal/constants"
	"github.com/julianstephens/quartr/internal/models"
)

func testProject(t *testing.T, store *Store) models.Project {
	t.Helper()
	p, err := store.CreateProject(models.NewProject{Title: "Test project", Year: 2025, Quarter: 1})
	if err != nil {
		t.Fatalf("failed to create fixture project: %v", err)
	}
	return p
}

func TestCreateActionDefaults(t *testing.T) {
	store := newTestStore(t)
	project := testProject(t, store)

	created, err := store.CreateAction(models.NewAction{
		ProjectID:  project.ID,
		WeekNumber: 1,
		Content:    "Write the announcement post",
	})
	if err != nil {
		t.Fatalf("CreateAction failed: %v", err)
	}

	if created.Priority != constants.PriorityNone {
		t.Errorf("priority = %q, want default none", created.Priority)
	}
	if created.IsCompleted {
		t.Error("new action should not be completed")
	}
	if created.DueDate != "" {
		t.Errorf("due date = %q, want empty", created.DueDate)
	}
}

func TestCreateActionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	project := testProject(t, store)

	if _, err := store.CreateAction(models.NewAction{
		ProjectID:  project.ID,
		WeekNumber: 3,
		Content:    "draft outline",
		DueDate:    "2025-06-01",
		Priority:   constants.PriorityHigh,
	}); err != nil {
		t.Fatalf("CreateAction failed: %v", err)
	}

	actions, err := store.GetAllActions(project.ID)
	if err != nil {
		t.Fatalf("GetAllActions failed: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("GetAllActions returned %d actions, want 1", len(actions))
	}

	got := actions[0]
	if got.WeekNumber != 3 || got.Content != "draft outline" || got.DueDate != "2025-06-01" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.Priority != constants.PriorityHigh {
		t.Errorf("priority = %q, want high", got.Priority)
	}
	if got.IsCompleted {
		t.Error("new action should not be completed")
	}
}

func TestCreateActionValidation(t *testing.T) {
	store := newTestStore(t)
	project := testProject(t, store)

	tests := []struct {
		name   string
		action models.NewAction
	}{
		{"missing project", models.NewAction{WeekNumber: 1, Content: "x"}},
		{"week zero", models.NewAction{ProjectID: project.ID, WeekNumber: 0, Content: "x"}},
		{"missing content", models.NewAction{ProjectID: project.ID, WeekNumber: 1}},
		{"bad due date", models.NewAction{ProjectID: project.ID, WeekNumber: 1, Content: "x", DueDate: "tomorrow"}},
		{"bad priority", models.NewAction{ProjectID: project.ID, WeekNumber: 1, Content: "x", Priority: "urgent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := store.CreateAction(tt.action); err == nil {
				t.Error("CreateAction should have failed validation")
			}
		})
	}
}

func TestGetActionsFiltersByWeek(t *testing.T) {
	store := newTestStore(t)
	project := testProject(t, store)

	for week := 1; week <= 3; week++ {
		if _, err := store.CreateAction(models.NewAction{
			ProjectID: project.ID, WeekNumber: week, Content: "task",
		}); err != nil {
			t.Fatalf("CreateAction failed: %v", err)
		}
	}

	actions, err := store.GetActions(project.ID, 2)
	if err != nil {
		t.Fatalf("GetActions failed: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("GetActions returned %d actions, want 1", len(actions))
	}
	if actions[0].WeekNumber != 2 {
		t.Errorf("week = %d, want 2", actions[0].WeekNumber)
	}
}

func TestGetAllActionsOrdersByWeek(t *testing.T) {
	store := newTestStore(t)
	project := testProject(t, store)

	// Inserted out of order on purpose
	for _, week := range []int{3, 1, 2} {
		if _, err := store.CreateAction(models.NewAction{
			ProjectID: project.ID, WeekNumber: week, Content: "task",
		}); err != nil {
			t.Fatalf("CreateAction failed: %v", err)
		}
	}

	actions, err := store.GetAllActions(project.ID)
	if err != nil {
		t.Fatalf("GetAllActions failed: %v", err)
	}
	if len(actions) != 3 {
		t.Fatalf("GetAllActions returned %d actions, want 3", len(actions))
	}
	for i, want := range []int{1, 2, 3} {
		if actions[i].WeekNumber != want {
			t.Errorf("actions[%d].WeekNumber = %d, want %d", i, actions[i].WeekNumber, want)
		}
	}
}

func TestUpdateActionPartial(t *testing.T) {
	store := newTestStore(t)
	project := testProject(t, store)

	created, err := store.CreateAction(models.NewAction{
		ProjectID: project.ID, WeekNumber: 1, Content: "Original content", Priority: constants.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("CreateAction failed: %v", err)
	}

	if err := store.UpdateAction(models.ActionPatch{ID: created.ID, DueDate: strPtr("2025-03-15")}); err != nil {
		t.Fatalf("UpdateAction failed: %v", err)
	}

	actions, err := store.GetAllActions(project.ID)
	if err != nil {
		t.Fatalf("GetAllActions failed: %v", err)
	}
	got := actions[0]
	if got.DueDate != "2025-03-15" {
		t.Errorf("due date = %q, want 2025-03-15", got.DueDate)
	}
	if got.Content != "Original content" || got.Priority != constants.PriorityHigh {
		t.Errorf("untouched fields changed: %+v", got)
	}

	// Clearing the due date maps back to NULL and reads as empty
	if err := store.UpdateAction(models.ActionPatch{ID: created.ID, DueDate: strPtr("")}); err != nil {
		t.Fatalf("UpdateAction failed: %v", err)
	}
	actions, _ = store.GetAllActions(project.ID)
	if actions[0].DueDate != "" {
		t.Errorf("due date = %q, want cleared", actions[0].DueDate)
	}
}

func TestToggleAction(t *testing.T) {
	store := newTestStore(t)
	project := testProject(t, store)

	created, err := store.CreateAction(models.NewAction{ProjectID: project.ID, WeekNumber: 1, Content: "flip me"})
	if err != nil {
		t.Fatalf("CreateAction failed: %v", err)
	}

	if err := store.ToggleAction(created.ID, true); err != nil {
		t.Fatalf("ToggleAction failed: %v", err)
	}
	actions, _ := store.GetAllActions(project.ID)
	if !actions[0].IsCompleted {
		t.Error("action should be completed")
	}

	if err := store.ToggleAction(created.ID, false); err != nil {
		t.Fatalf("ToggleAction failed: %v", err)
	}
	actions, _ = store.GetAllActions(project.ID)
	if actions[0].IsCompleted {
		t.Error("action should be reopened")
	}
}

func TestActionNotFoundErrors(t *testing.T) {
	store := newTestStore(t)

	if err := store.ToggleAction(999, true); err == nil {
		t.Error("ToggleAction should fail for a missing id")
	}
	if err := store.DeleteAction(999); err == nil {
		t.Error("DeleteAction should fail for a missing id")
	}
	if err := store.UpdateAction(models.ActionPatch{ID: 999, Content: strPtr("x")}); err == nil {
		t.Error("UpdateAction should fail for a missing id")
	}
}

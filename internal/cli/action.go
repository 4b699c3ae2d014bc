package cli

import (
	"fmt"

	"github.com/julianstephens/quartr/internal/constants"
	"github.com/julianstephens/quartr/internal/models"
)

type ActionAddCmd struct {
	Project  int64  `arg:"" help:"Project id."`
	Content  string `arg:"" help:"What to do."`
	Week     int    `short:"w" help:"Week number within the cycle (defaults to the current week)."`
	Due      string `help:"Due date (YYYY-MM-DD)."`
	Priority string `short:"p" help:"Priority (high|medium|low|none)." default:"none"`
}

func (c *ActionAddCmd) Run(ctx *Context) error {
	ctx.State.FetchCurrentCycle()

	week := c.Week
	if week == 0 {
		week = ctx.State.CurrentWeek
	}

	action, err := ctx.State.AddAction(models.NewAction{
		ProjectID:  c.Project,
		WeekNumber: week,
		Content:    c.Content,
		DueDate:    c.Due,
		Priority:   constants.Priority(c.Priority),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created action #%d for project #%d (week %d)\n", action.ID, action.ProjectID, action.WeekNumber)
	return nil
}

type ActionListCmd struct {
	Project int64 `arg:"" help:"Project id."`
	Week    int   `short:"w" help:"Only show one week (defaults to all weeks)."`
}

func (c *ActionListCmd) Run(ctx *Context) error {
	ctx.State.FetchCurrentCycle()

	if c.Week > 0 {
		ctx.State.CurrentWeek = c.Week
		ctx.State.FetchActions(c.Project)
		fmt.Println(headerStyle.Render(fmt.Sprintf("Actions for project #%d, week %d", c.Project, c.Week)))
	} else {
		ctx.State.FetchAllActions(c.Project)
		fmt.Println(headerStyle.Render(fmt.Sprintf("Actions for project #%d", c.Project)))
	}

	actions := ctx.State.Actions[c.Project]
	if len(actions) == 0 {
		fmt.Println(dimStyle.Render("  No actions."))
		return nil
	}

	week := -1
	for _, a := range actions {
		if c.Week == 0 && a.WeekNumber != week {
			week = a.WeekNumber
			fmt.Println(dimStyle.Render(fmt.Sprintf("  Week %d", week)))
		}
		fmt.Printf("    %s\n", formatAction(a))
	}
	return nil
}

func formatAction(a models.WeeklyAction) string {
	check := "[ ]"
	content := a.Content
	if a.IsCompleted {
		check = "[x]"
		content = doneStyle.Render(content)
	}

	line := fmt.Sprintf("%s #%d %s", check, a.ID, content)
	if a.Priority != constants.PriorityNone {
		style := priorityStyles[string(a.Priority)]
		line += " " + style.Render("("+string(a.Priority)+")")
	}
	if a.DueDate != "" {
		line += " " + dimStyle.Render("due "+a.DueDate)
	}
	return line
}

type ActionDoneCmd struct {
	Project int64 `arg:"" help:"Project id."`
	ID      int64 `arg:"" help:"Action id."`
	Undo    bool  `help:"Mark the action as not completed instead."`
}

func (c *ActionDoneCmd) Run(ctx *Context) error {
	completed := !c.Undo
	if err := ctx.State.ToggleAction(c.Project, c.ID, completed); err != nil {
		return err
	}
	if completed {
		fmt.Printf("Completed action #%d\n", c.ID)
	} else {
		fmt.Printf("Reopened action #%d\n", c.ID)
	}
	return nil
}

type ActionEditCmd struct {
	Project  int64   `arg:"" help:"Project id."`
	ID       int64   `arg:"" help:"Action id."`
	Content  *string `short:"c" help:"New content."`
	Due      *string `help:"New due date (YYYY-MM-DD, empty clears)."`
	Priority *string `short:"p" help:"New priority (high|medium|low|none)."`
	Week     *int    `short:"w" help:"Move to another week."`
}

func (c *ActionEditCmd) Run(ctx *Context) error {
	if c.Content == nil && c.Due == nil && c.Priority == nil && c.Week == nil {
		return fmt.Errorf("nothing to update: pass at least one of --content, --due, --priority, --week")
	}

	patch := models.ActionPatch{
		ID:         c.ID,
		Content:    c.Content,
		DueDate:    c.Due,
		WeekNumber: c.Week,
	}
	if c.Priority != nil {
		p := constants.Priority(*c.Priority)
		patch.Priority = &p
	}

	if err := ctx.State.UpdateAction(c.Project, patch); err != nil {
		return err
	}
	fmt.Printf("Updated action #%d\n", c.ID)
	return nil
}

type ActionRmCmd struct {
	Project int64 `arg:"" help:"Project id."`
	ID      int64 `arg:"" help:"Action id."`
}

func (c *ActionRmCmd) Run(ctx *Context) error {
	if err := ctx.State.DeleteAction(c.Project, c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted action #%d\n", c.ID)
	return nil
}

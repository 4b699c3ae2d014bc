package cli

import (
	"fmt"

	"github.com/julianstephens/quartr/internal/models"
)

type PlanAddCmd struct {
	Project int64  `arg:"" help:"Project id."`
	Month   int    `arg:"" help:"Calendar month 1-12."`
	Content string `arg:"" help:"Plan content."`
	Primary bool   `help:"Flag this plan as the month's primary entry."`
}

func (c *PlanAddCmd) Run(ctx *Context) error {
	plan, err := ctx.State.AddMonthlyPlan(models.NewMonthlyPlan{
		ProjectID: c.Project,
		Month:     c.Month,
		Content:   c.Content,
		IsPrimary: c.Primary,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created monthly plan #%d for project #%d (month %d)\n", plan.ID, plan.ProjectID, plan.Month)
	return nil
}

type PlanListCmd struct {
	Project int64 `arg:"" help:"Project id."`
}

func (c *PlanListCmd) Run(ctx *Context) error {
	ctx.State.FetchMonthlyPlans(c.Project)

	fmt.Println(headerStyle.Render(fmt.Sprintf("Monthly plans for project #%d", c.Project)))
	plans := ctx.State.Plans[c.Project]
	if len(plans) == 0 {
		fmt.Println(dimStyle.Render("  No monthly plans."))
		return nil
	}

	month := -1
	for _, p := range plans {
		if p.Month != month {
			month = p.Month
			fmt.Println(dimStyle.Render(fmt.Sprintf("  Month %d", month)))
		}
		marker := "  "
		if p.IsPrimary {
			marker = primaryStyle.Render("* ")
		}
		fmt.Printf("    %s#%d %s\n", marker, p.ID, p.Content)
	}
	return nil
}

type PlanRmCmd struct {
	Project int64 `arg:"" help:"Project id."`
	ID      int64 `arg:"" help:"Plan id."`
}

func (c *PlanRmCmd) Run(ctx *Context) error {
	if err := ctx.State.DeleteMonthlyPlan(c.Project, c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted monthly plan #%d\n", c.ID)
	return nil
}

type PlanPrimaryCmd struct {
	Project int64 `arg:"" help:"Project id."`
	ID      int64 `arg:"" help:"Plan id."`
	Unset   bool  `help:"Clear the primary flag instead of setting it."`
}

func (c *PlanPrimaryCmd) Run(ctx *Context) error {
	primary := !c.Unset
	if err := ctx.State.SetPlanPrimary(c.Project, c.ID, primary); err != nil {
		return err
	}
	if primary {
		fmt.Printf("Flagged monthly plan #%d as primary\n", c.ID)
	} else {
		fmt.Printf("Cleared primary flag on monthly plan #%d\n", c.ID)
	}
	return nil
}

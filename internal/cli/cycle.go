package cli

import (
	"fmt"

	"github.com/julianstephens/quartr/internal/cycle"
	"github.com/julianstephens/quartr/internal/models"
	"github.com/julianstephens/quartr/internal/utils"
)

type CycleNewCmd struct {
	Title string `arg:"" help:"Cycle title, e.g. '2025 Q3 push'."`
	Start string `short:"s" required:"" help:"Start date (YYYY-MM-DD)."`
	End   string `short:"e" help:"End date (YYYY-MM-DD); defaults to start + cycle length."`
}

func (c *CycleNewCmd) Run(ctx *Context) error {
	end := c.End
	if end == "" {
		start, err := utils.ParseDate(c.Start)
		if err != nil {
			return err
		}
		weeks := ctx.Weeks
		if weeks <= 0 {
			weeks = 12
		}
		end = start.AddDate(0, 0, weeks*7).Format("2006-01-02")
	}

	created, err := ctx.State.CreateCycle(models.NewCycle{
		Title:     c.Title,
		StartDate: c.Start,
		EndDate:   end,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created cycle #%d: %s (%s to %s), now active\n", created.ID, created.Title, created.StartDate, created.EndDate)
	fmt.Printf("Current week: %d\n", ctx.State.CurrentWeek)
	return nil
}

type CycleEditCmd struct {
	ID         int64  `arg:"" help:"Cycle id."`
	Title      string `required:"" help:"Cycle title."`
	Start      string `short:"s" required:"" help:"Start date (YYYY-MM-DD)."`
	End        string `short:"e" required:"" help:"End date (YYYY-MM-DD)."`
	Reactivate bool   `help:"Also make this the active cycle."`
}

func (c *CycleEditCmd) Run(ctx *Context) error {
	updated, err := ctx.State.UpdateCycle(models.CyclePatch{
		ID:         c.ID,
		Title:      c.Title,
		StartDate:  c.Start,
		EndDate:    c.End,
		Reactivate: c.Reactivate,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Updated cycle #%d: %s (%s to %s)\n", updated.ID, updated.Title, updated.StartDate, updated.EndDate)
	return nil
}

type CycleShowCmd struct{}

func (c *CycleShowCmd) Run(ctx *Context) error {
	cur, err := ctx.Store.GetCurrentCycle()
	if err != nil {
		return err
	}
	if cur == nil {
		fmt.Println("No plan cycle exists yet. Start one with 'quartr cycle new'.")
		return nil
	}

	status := "inactive (most recent)"
	if cur.IsActive {
		status = "active"
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("Cycle #%d: %s", cur.ID, cur.Title)))
	fmt.Printf("  %s to %s (%s)\n", cur.StartDate, cur.EndDate, status)

	ctxInfo := cycle.Resolve(cur, utils.Today(), ctx.Weeks)
	fmt.Printf("  Week %d of Q%d %d\n", ctxInfo.Week, ctxInfo.Quarter, ctxInfo.Year)
	return nil
}

type WeekCmd struct{}

func (c *WeekCmd) Run(ctx *Context) error {
	cur, err := ctx.Store.GetCurrentCycle()
	if err != nil {
		return err
	}

	ctxInfo := cycle.Resolve(cur, utils.Today(), ctx.Weeks)
	if cur == nil {
		fmt.Printf("No cycle; defaulting to week %d of Q%d %d\n", ctxInfo.Week, ctxInfo.Quarter, ctxInfo.Year)
		return nil
	}
	fmt.Printf("Week %d of Q%d %d (%s)\n", ctxInfo.Week, ctxInfo.Quarter, ctxInfo.Year, cur.Title)
	return nil
}

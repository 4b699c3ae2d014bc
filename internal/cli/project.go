package cli

import (
	"fmt"

	"github.com/julianstephens/quartr/internal/models"
)

type ProjectAddCmd struct {
	Title       string `arg:"" help:"Project title."`
	Description string `short:"d" help:"What this project is about."`
	Tactics     string `short:"t" help:"How you intend to get there."`
	Deadline    string `help:"Deadline (YYYY-MM-DD)."`
	Year        int    `short:"y" help:"Target year (defaults to the current cycle's year)."`
	Quarter     int    `short:"q" help:"Target quarter 1-4 (defaults to the current cycle's quarter)."`
}

func (c *ProjectAddCmd) Run(ctx *Context) error {
	ctx.State.FetchCurrentCycle()

	year := c.Year
	if year == 0 {
		year = ctx.State.CurrentYear
	}
	quarter := c.Quarter
	if quarter == 0 {
		quarter = ctx.State.CurrentQuarter
	}

	project, err := ctx.State.AddProject(models.NewProject{
		Title:       c.Title,
		Description: c.Description,
		Tactics:     c.Tactics,
		Deadline:    c.Deadline,
		Year:        year,
		Quarter:     quarter,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created project #%d: %s (Q%d %d)\n", project.ID, project.Title, project.Quarter, project.Year)
	return nil
}

type ProjectListCmd struct {
	Year    int `short:"y" help:"Year to list (defaults to the current cycle's year)."`
	Quarter int `short:"q" help:"Quarter to list (defaults to the current cycle's quarter)."`
}

func (c *ProjectListCmd) Run(ctx *Context) error {
	ctx.State.FetchCurrentCycle()
	if c.Year != 0 {
		ctx.State.CurrentYear = c.Year
	}
	if c.Quarter != 0 {
		ctx.State.CurrentQuarter = c.Quarter
	}
	ctx.State.FetchProjects()

	fmt.Println(headerStyle.Render(fmt.Sprintf("Projects for Q%d %d", ctx.State.CurrentQuarter, ctx.State.CurrentYear)))
	if len(ctx.State.Projects) == 0 {
		fmt.Println(dimStyle.Render("  No projects yet. Create one with 'quartr project add'."))
		return nil
	}

	for _, p := range ctx.State.Projects {
		fmt.Printf("  #%d %s\n", p.ID, titleStyle.Render(p.Title))
		if p.Description != "" {
			fmt.Printf("      %s\n", p.Description)
		}
		if p.Tactics != "" {
			fmt.Printf("      %s %s\n", dimStyle.Render("tactics:"), p.Tactics)
		}
		if p.Deadline != "" {
			fmt.Printf("      %s %s\n", dimStyle.Render("deadline:"), p.Deadline)
		}
		if p.Note != "" {
			fmt.Printf("      %s %s\n", dimStyle.Render("note:"), p.Note)
		}
	}
	return nil
}

type ProjectEditCmd struct {
	ID          int64   `arg:"" help:"Project id."`
	Title       *string `help:"New title."`
	Description *string `short:"d" help:"New description."`
	Deadline    *string `help:"New deadline (YYYY-MM-DD, empty clears)."`
	Note        *string `short:"n" help:"New note (empty clears)."`
}

func (c *ProjectEditCmd) Run(ctx *Context) error {
	if c.Title == nil && c.Description == nil && c.Deadline == nil && c.Note == nil {
		return fmt.Errorf("nothing to update: pass at least one of --title, --description, --deadline, --note")
	}

	err := ctx.State.UpdateProject(models.ProjectPatch{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Deadline:    c.Deadline,
		Note:        c.Note,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Updated project #%d\n", c.ID)
	return nil
}

type ProjectRmCmd struct {
	ID  int64 `arg:"" help:"Project id."`
	Yes bool  `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ProjectRmCmd) Run(ctx *Context) error {
	if !c.Yes {
		fmt.Printf("Delete project #%d and all of its actions and plans? [y/N] ", c.ID)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()
	if err := ctx.State.DeleteProject(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted project #%d (weekly actions and monthly plans removed with it)\n", c.ID)
	return nil
}

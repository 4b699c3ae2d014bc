// Package cycle derives temporal planning context (year, quarter, week)
// from a plan cycle's start date and the current calendar day. All functions
// are pure; both dates are treated as the same local calendar day.
package cycle

import (
	"math"
	"time"

	"github.com/julianstephens/quartr/internal/models"
	"github.com/julianstephens/quartr/internal/utils"
)

// Context is the temporal frame the UI plans against
type Context struct {
	Year    int
	Quarter int
	Week    int
}

// QuarterOf returns the calendar quarter (1-4) containing t.
func QuarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// CurrentWeek returns the 1-based week number of today within a cycle that
// started on start. Both dates are normalized to midnight before the day
// difference is taken, so partial days never shift the week boundary.
// The result is clamped to a minimum of 1 when today precedes the start, and
// to maxWeeks when maxWeeks is positive.
func CurrentWeek(start, today time.Time, maxWeeks int) int {
	// Rounding absorbs the off-by-an-hour day lengths around DST transitions.
	days := int(math.Round(utils.Midnight(today).Sub(utils.Midnight(start)).Hours() / 24))
	week := 1
	if days >= 0 {
		week = days/7 + 1
	}
	if week < 1 {
		week = 1
	}
	if maxWeeks > 0 && week > maxWeeks {
		week = maxWeeks
	}
	return week
}

// Resolve computes the planning context from the given cycle. When c is nil
// (no cycle exists yet) the context falls back to today's year and quarter
// with week 1. A cycle with an unparseable start date gets the same fallback.
func Resolve(c *models.PlanCycle, today time.Time, maxWeeks int) Context {
	ctx := Context{
		Year:    today.Year(),
		Quarter: QuarterOf(today),
		Week:    1,
	}
	if c == nil {
		return ctx
	}

	start, err := utils.ParseDate(c.StartDate)
	if err != nil {
		return ctx
	}

	ctx.Year = start.Year()
	ctx.Quarter = QuarterOf(start)
	ctx.Week = CurrentWeek(start, today, maxWeeks)
	return ctx
}

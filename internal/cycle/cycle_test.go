package cycle

import (
	"testing"
	"time"

	"github.com/julianstephens/quartr/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestQuarterOf(t *testing.T) {
	cases := []struct {
		month    time.Month
		expected int
	}{
		{time.January, 1},
		{time.February, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.September, 3},
		{time.October, 4},
		{time.December, 4},
	}

	for _, c := range cases {
		got := QuarterOf(date(2025, c.month, 15))
		if got != c.expected {
			t.Errorf("QuarterOf(%s) = %d, expected %d", c.month, got, c.expected)
		}
	}
}

func TestCurrentWeek(t *testing.T) {
	start := date(2025, time.April, 7)

	cases := []struct {
		name     string
		today    time.Time
		maxWeeks int
		expected int
	}{
		{"start day is week 1", start, 12, 1},
		{"sixth day still week 1", date(2025, time.April, 13), 12, 1},
		{"seventh day rolls to week 2", date(2025, time.April, 14), 12, 2},
		{"mid cycle", date(2025, time.May, 20), 12, 7},
		{"today before start clamps to 1", date(2025, time.March, 1), 12, 1},
		{"beyond cycle clamps to cap", date(2026, time.April, 7), 12, 12},
		{"zero cap disables upper clamp", date(2026, time.April, 7), 0, 53},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CurrentWeek(start, c.today, c.maxWeeks)
			if got != c.expected {
				t.Errorf("CurrentWeek = %d, expected %d", got, c.expected)
			}
		})
	}
}

func TestCurrentWeek_IgnoresTimeOfDay(t *testing.T) {
	start := date(2025, time.April, 7)
	lateToday := time.Date(2025, time.April, 14, 23, 59, 0, 0, time.Local)
	earlyToday := time.Date(2025, time.April, 14, 0, 1, 0, 0, time.Local)

	if CurrentWeek(start, lateToday, 12) != CurrentWeek(start, earlyToday, 12) {
		t.Error("week number should not depend on the time of day")
	}
}

func TestCurrentWeek_MonotonicByDay(t *testing.T) {
	start := date(2025, time.January, 6)
	prev := 0
	for d := 0; d < 12*7; d++ {
		week := CurrentWeek(start, start.AddDate(0, 0, d), 12)
		if week < prev {
			t.Fatalf("week decreased from %d to %d at day %d", prev, week, d)
		}
		if expected := d/7 + 1; week != expected {
			t.Fatalf("day %d: week = %d, expected %d", d, week, expected)
		}
		prev = week
	}
}

func TestResolve(t *testing.T) {
	today := date(2025, time.August, 20)

	t.Run("no cycle falls back to today", func(t *testing.T) {
		ctx := Resolve(nil, today, 12)
		if ctx.Year != 2025 || ctx.Quarter != 3 || ctx.Week != 1 {
			t.Errorf("unexpected fallback context: %+v", ctx)
		}
	})

	t.Run("context derives from cycle start", func(t *testing.T) {
		c := &models.PlanCycle{StartDate: "2025-06-30"}
		ctx := Resolve(c, today, 12)
		if ctx.Year != 2025 {
			t.Errorf("Year = %d, expected 2025", ctx.Year)
		}
		if ctx.Quarter != 2 {
			t.Errorf("Quarter = %d, expected 2", ctx.Quarter)
		}
		if ctx.Week != 8 {
			t.Errorf("Week = %d, expected 8", ctx.Week)
		}
	})

	t.Run("malformed start date falls back to today", func(t *testing.T) {
		c := &models.PlanCycle{StartDate: "30/06/2025"}
		ctx := Resolve(c, today, 12)
		if ctx.Quarter != 3 || ctx.Week != 1 {
			t.Errorf("unexpected context for malformed start: %+v", ctx)
		}
	})
}

// Resolve must count whole calendar days regardless of the host's UTC
// offset: the stored start date and today have to land in the same zone
// before the day difference is taken.
func TestResolve_FarEasternTimezone(t *testing.T) {
	orig := time.Local
	time.Local = time.FixedZone("UTC+13", 13*60*60)
	defer func() { time.Local = orig }()

	// Just past local midnight, exactly 14 calendar days after the start
	today := time.Date(2026, time.January, 19, 0, 30, 0, 0, time.Local)
	c := &models.PlanCycle{StartDate: "2026-01-05"}

	ctx := Resolve(c, today, 12)
	if ctx.Week != 3 {
		t.Errorf("Week = %d, expected 3", ctx.Week)
	}
}

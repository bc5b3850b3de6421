package report

import (
	"math"
	"time"

	"github.com/shipgrid/shipgrid/internal/model"
)

// DayBound returns the last day of the month to include in aggregate
// counts: today's day-of-month when (year, month) is the current calendar
// month, the month's final day otherwise.
func DayBound(year int, month time.Month, now time.Time) int {
	if now.Year() == year && now.Month() == month {
		return now.Day()
	}
	return model.DaysInMonth(year, month)
}

// Summarize computes the aggregate metrics over classified rows. The day
// bound is computed once and applied uniformly to every row; sent records
// after the bound do not count. Zero rows or a zero bound yield zeros,
// not an error.
func Summarize(rows []model.SupplierRow, year int, month time.Month, now time.Time) model.Summary {
	bound := DayBound(year, month, now)
	if len(rows) == 0 || bound == 0 {
		return model.Summary{}
	}

	var sent, pending int
	for _, row := range rows {
		for day := 1; day <= bound; day++ {
			switch row.Days[day].Status {
			case model.StatusSent:
				sent++
			case model.StatusPending:
				pending++
			}
		}
	}

	counted := bound * len(rows)
	return model.Summary{
		PendingAverage: pending / len(rows),
		TotalSent:      sent,
		SuccessRate:    int(math.Round(float64(sent) / float64(counted) * 100)),
	}
}

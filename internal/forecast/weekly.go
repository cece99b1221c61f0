package forecast

import (
	"strconv"

	"weather-dashboard/internal/types"
)

// Weekly maps the first WeeklyDays daily samples to chart points. The
// temperature plotted for a day is the midpoint of its range. Days without a
// usable timestamp are skipped.
func (n *Normalizer) Weekly(daily []types.DailySample) []NormalizedPoint {
	limit := n.Options.WeeklyDays
	if limit <= 0 || limit > len(daily) {
		limit = len(daily)
	}

	points := make([]NormalizedPoint, 0, limit)
	for _, day := range daily[:limit] {
		if day.Time.IsZero() {
			continue
		}

		date := day.Time.In(n.location())
		maxTemp := types.RoundOrZero(day.TempMax)
		minTemp := types.RoundOrZero(day.TempMin)

		points = append(points, NormalizedPoint{
			Label:       date.Format(dayLabelLayout),
			ShortLabel:  strconv.Itoa(date.Day()),
			Temperature: types.RoundOrZero((day.TempMax + day.TempMin) / 2),
			WindSpeed:   types.RoundOrZero(day.WindSpeed),
			Condition:   types.Classify(day.Code).Category.Lower(),
			TempMax:     &maxTemp,
			TempMin:     &minTemp,
		})
	}
	return points
}

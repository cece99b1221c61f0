// Package forecast turns irregular upstream forecast series into chart-ready
// points with stable x-axis placement.
package forecast

import (
	"math"
	"sort"
	"strconv"
	"time"

	"weather-dashboard/internal/types"
)

const (
	hourLabelLayout = "3 PM"
	dayLabelLayout  = "Jan 2"
)

// NormalizedPoint is one chart-ready entry
type NormalizedPoint struct {
	Label       string `json:"label"`
	ShortLabel  string `json:"shortLabel"`
	Temperature int    `json:"temp"`
	WindSpeed   int    `json:"wind"`
	Condition   string `json:"condition"`
	TempMax     *int   `json:"tempMax,omitempty"`
	TempMin     *int   `json:"tempMin,omitempty"`
}

// Options configures a Normalizer
type Options struct {
	TargetHours        []int
	SnapToleranceHours float64
	FallbackCount      int
	WeeklyDays         int
}

// DefaultOptions returns the dashboard defaults: every 2 hours from 07:00 to
// 23:00, one hour of tolerance, eight fallback samples and ten days.
func DefaultOptions() Options {
	return Options{
		TargetHours:        []int{7, 9, 11, 13, 15, 17, 19, 21, 23},
		SnapToleranceHours: 1,
		FallbackCount:      8,
		WeeklyDays:         10,
	}
}

// Normalizer selects and labels forecast samples. "Today" and hour-of-day are
// evaluated in Location against the time returned by Now.
type Normalizer struct {
	Options  Options
	Location *time.Location
	Now      func() time.Time
}

// NewNormalizer creates a Normalizer evaluating calendar days in loc
func NewNormalizer(opts Options, loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return &Normalizer{
		Options:  opts,
		Location: loc,
		Now:      time.Now,
	}
}

// Hourly normalizes an hourly series with the configured target hours and tolerance
func (n *Normalizer) Hourly(samples []types.TimedSample) []NormalizedPoint {
	return n.Normalize(samples, n.Options.TargetHours, n.Options.SnapToleranceHours)
}

// Normalize picks, for each target hour in ascending order, the closest unused
// sample within snapToleranceHours. Matched points are labeled with the target
// hour on the sample's date. When no target matches, the first FallbackCount
// samples are returned with their own times. A NaN or negative tolerance
// matches exact hours only.
func (n *Normalizer) Normalize(samples []types.TimedSample, targetHours []int, snapToleranceHours float64) []NormalizedPoint {
	if !(snapToleranceHours >= 0) {
		snapToleranceHours = 0
	}

	rows := n.candidates(samples)
	points := make([]NormalizedPoint, 0, len(targetHours))
	if len(rows) == 0 {
		return points
	}

	targets := append([]int(nil), targetHours...)
	sort.Ints(targets)

	used := make([]bool, len(rows))
	for _, target := range targets {
		best := -1
		bestDelta := math.Inf(1)
		for i, row := range rows {
			if used[i] {
				continue
			}
			delta := math.Abs(float64(row.Time.Hour() - target))
			if delta < bestDelta {
				bestDelta = delta
				best = i
			}
		}

		if best < 0 || bestDelta > snapToleranceHours {
			continue
		}
		used[best] = true

		t := rows[best].Time
		snapped := time.Date(t.Year(), t.Month(), t.Day(), target, 0, 0, 0, t.Location())
		points = append(points, newPoint(rows[best], snapped))
	}

	if len(points) > 0 {
		return points
	}

	limit := min(max(n.Options.FallbackCount, 0), len(rows))
	for _, row := range rows[:limit] {
		points = append(points, newPoint(row, row.Time))
	}
	return points
}

// candidates drops unplottable samples, prefers the ones on today's date and
// returns them in chronological order with times converted to n.Location.
func (n *Normalizer) candidates(samples []types.TimedSample) []types.TimedSample {
	today := n.now().In(n.location())
	ty, tm, td := today.Date()

	var all, sameDay []types.TimedSample
	for _, s := range samples {
		if !s.Plottable() {
			continue
		}
		s.Time = s.Time.In(n.location())
		all = append(all, s)

		y, m, d := s.Time.Date()
		if y == ty && m == tm && d == td {
			sameDay = append(sameDay, s)
		}
	}

	rows := sameDay
	if len(rows) == 0 {
		rows = all
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Time.Before(rows[j].Time)
	})
	return rows
}

func (n *Normalizer) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

func (n *Normalizer) location() *time.Location {
	if n.Location == nil {
		return time.UTC
	}
	return n.Location
}

func newPoint(s types.TimedSample, labelTime time.Time) NormalizedPoint {
	return NormalizedPoint{
		Label:       labelTime.Format(hourLabelLayout),
		ShortLabel:  strconv.Itoa(labelTime.Hour()),
		Temperature: types.Round(s.Temperature),
		WindSpeed:   types.RoundOrZero(s.WindSpeed),
		Condition:   types.Classify(s.Code).Category.Lower(),
	}
}

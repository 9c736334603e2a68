package planner

import (
	"fmt"
	"math"
	"strings"

	"yatra/internal/models/db_models"
	"yatra/pkg/utils"
)

// DailyHourBudget caps the total attraction duration assignable to one day.
const DailyHourBudget = 7.0

// dayStartHour is the local time the first visit of every day begins at.
const dayStartHour = 9.0

// minBackfillSize is the floor below which an interest-filtered candidate
// list gets backfilled from the rest of the catalog.
const minBackfillSize = 4

// cityCenters are the starting reference points for the nearest-neighbor
// walk. Cities not listed here fall back to the first candidate's coordinate.
var cityCenters = map[string][2]float64{
	"Mumbai": {18.9388, 72.8354},
	"Pune":   {18.5204, 73.8567},
	"Nashik": {19.9975, 73.7898},
}

type ScheduledStop struct {
	Attraction db_models.Attraction
	OrderIndex int
	StartTime  string // HH:MM
	EndTime    string // HH:MM
}

type DayPlan struct {
	Day   int
	Stops []ScheduledStop
}

// ParseInterests splits a comma-joined interest string into normalized
// (trimmed, lower-cased) tags, dropping empties.
func ParseInterests(csv string) []string {
	parts := strings.Split(csv, ",")
	interests := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			interests = append(interests, p)
		}
	}
	return interests
}

// FilterAttractions keeps attractions whose category matches a requested
// interest. An empty interest list returns the input unchanged. When the
// match is thin (fewer than 4 entries) the list is backfilled in catalog
// order until it reaches max(6, half the catalog) or the catalog runs out.
// Pure; catalog order is preserved within each segment.
func FilterAttractions(all []db_models.Attraction, interests []string) []db_models.Attraction {
	if len(interests) == 0 {
		return all
	}

	wanted := make(map[string]struct{}, len(interests))
	for _, i := range interests {
		wanted[i] = struct{}{}
	}

	filtered := make([]db_models.Attraction, 0, len(all))
	for _, a := range all {
		if _, ok := wanted[strings.ToLower(a.Category)]; ok {
			filtered = append(filtered, a)
		}
	}

	if len(filtered) < minBackfillSize {
		target := len(all) / 2
		if target < 6 {
			target = 6
		}
		names := make(map[string]struct{}, len(filtered))
		for _, a := range filtered {
			names[a.Name] = struct{}{}
		}
		for _, a := range all {
			if len(filtered) >= target {
				break
			}
			if _, ok := names[a.Name]; !ok {
				filtered = append(filtered, a)
			}
		}
	}

	return filtered
}

// BuildItinerary runs the greedy nearest-neighbor walk over the candidates
// and returns one DayPlan per requested day, back-to-back timed from 09:00.
// Each attraction is used at most once across the whole trip; trailing days
// may come back empty once candidates run out. Equal distances resolve to
// the candidate earliest in catalog order, which keeps the walk
// deterministic for a given catalog.
func BuildItinerary(city string, candidates []db_models.Attraction, days int) ([]DayPlan, error) {
	if len(candidates) == 0 {
		return nil, utils.ErrCityNotInCatalog
	}

	curLat, curLon := candidates[0].Lat, candidates[0].Lon
	if center, ok := cityCenters[city]; ok {
		curLat, curLon = center[0], center[1]
	}
	startLat, startLon := curLat, curLon

	used := make([]bool, len(candidates))
	remaining := len(candidates)

	plans := make([]DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		curLat, curLon = startLat, startLon
		dayHours := 0.0
		stops := []ScheduledStop{}

		for remaining > 0 {
			nearest := -1
			nearestDist := math.MaxFloat64
			for i, a := range candidates {
				if used[i] || dayHours+a.DurationHours > DailyHourBudget {
					continue
				}
				if d := utils.HaversineKM(curLat, curLon, a.Lat, a.Lon); d < nearestDist {
					nearest, nearestDist = i, d
				}
			}
			if nearest < 0 {
				break
			}

			a := candidates[nearest]
			start := dayStartHour + dayHours
			end := start + a.DurationHours
			stops = append(stops, ScheduledStop{
				Attraction: a,
				OrderIndex: len(stops) + 1,
				StartTime:  formatClock(start),
				EndTime:    formatClock(end),
			})

			used[nearest] = true
			remaining--
			curLat, curLon = a.Lat, a.Lon
			dayHours += a.DurationHours
		}

		plans = append(plans, DayPlan{Day: day, Stops: stops})
	}

	return plans, nil
}

// formatClock renders fractional hours since midnight as HH:MM, rounding to
// the nearest minute.
func formatClock(hours float64) string {
	total := int(math.Round(hours * 60))
	return fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)
}

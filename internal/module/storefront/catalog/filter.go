package catalog

import (
	"sort"
	"strings"
)

// applyFilters evaluates the dimensions the upstream API cannot express
// precisely. The fan-out already narrowed the candidate set; this pass
// makes membership exact.
func applyFilters(events []Event, filter FilterSpec) []Event {
	sports := lowerSet(filter.SportTypes)
	tournaments := stringSet(filter.TournamentIDs)
	cities := lowerSet(filter.Cities)
	venues := lowerSet(filter.Venues)
	statuses := lowerSet(filter.EventStatuses)

	countries := make(map[string]struct{}, len(filter.CountryCodes))
	for _, c := range filter.CountryCodes {
		if n := NormalizeCountry(c); n != "" {
			countries[n] = struct{}{}
		}
	}

	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if len(sports) > 0 {
			if _, ok := sports[strings.ToLower(ev.SportType)]; !ok {
				continue
			}
		}

		if len(tournaments) > 0 {
			if _, ok := tournaments[ev.TournamentID]; !ok {
				continue
			}
		}

		if len(countries) > 0 {
			if _, ok := countries[NormalizeCountry(ev.Country)]; !ok {
				continue
			}
		}

		if len(cities) > 0 {
			if _, ok := cities[strings.ToLower(strings.TrimSpace(ev.City))]; !ok {
				continue
			}
		}

		if len(venues) > 0 {
			if _, ok := venues[strings.ToLower(strings.TrimSpace(ev.Venue))]; !ok {
				continue
			}
		}

		if !priceInRange(ev, filter.PriceMin, filter.PriceMax) {
			continue
		}

		if len(statuses) > 0 {
			if _, ok := statuses[string(ev.DerivedStatus)]; !ok {
				continue
			}
		}

		out = append(out, ev)
	}

	return out
}

// priceInRange checks whether the event's normalized price band intersects
// the requested range. Events without price data (both bounds zero) are
// kept; dropping them would hide inventory the feed simply priced late.
func priceInRange(ev Event, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}

	if ev.MinPrice == 0 && ev.MaxPrice == 0 {
		return true
	}

	high := ev.MaxPrice
	if high < ev.MinPrice {
		high = ev.MinPrice
	}

	if min != nil && high < *min {
		return false
	}
	if max != nil && ev.MinPrice > *max {
		return false
	}

	return true
}

// sortByStartDate orders events ascending by start date; events without a
// date sort last, keeping their merge order among themselves.
func sortByStartDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		di, dj := events[i].DateStart, events[j].DateStart

		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
}

// dedupeByID keeps the first occurrence of every event id across the
// merged chain results.
func dedupeByID(events []Event) []Event {
	seen := make(map[string]struct{}, len(events))
	out := make([]Event, 0, len(events))

	for _, ev := range events {
		if _, ok := seen[ev.ID]; ok {
			continue
		}
		seen[ev.ID] = struct{}{}
		out = append(out, ev)
	}

	return out
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}

	return set
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = struct{}{}
		}
	}

	return set
}

package catalog

import (
	"net/url"
	"strconv"
	"time"
)

// DefaultPopularSports is the fixed list browsed when no filter dimension
// is set at all. This is a product default, not derived from data; it can
// be overridden through configuration.
var DefaultPopularSports = []string{
	"football", "formula-1", "motogp", "tennis", "basketball", "ice-hockey",
}

// Chain is one independent upstream request chain: a single starting URL
// query whose pagination the fetcher walks to exhaustion.
type Chain struct {
	Rule  string
	Query url.Values
}

// Planner translates a FilterSpec into fan-out chains. The upstream API
// accepts exactly one value per parameter per request, so every multi-value
// dimension costs one chain per value, and sport+country costs their
// cartesian product.
type Planner struct {
	defaultSports []string
	pageSize      int
}

func NewPlanner(defaultSports []string, pageSize int) *Planner {
	if len(defaultSports) == 0 {
		defaultSports = DefaultPopularSports
	}

	return &Planner{
		defaultSports: defaultSports,
		pageSize:      pageSize,
	}
}

// Plan applies the first matching fan-out rule. City, venue, price and
// derived-status dimensions never reach the upstream; they are client-side
// only and do not influence planning.
func (p *Planner) Plan(filter FilterSpec, teamID string) []Chain {
	switch {
	case p.isUnfiltered(filter, teamID), filter.PopularOnly && len(filter.SportTypes) == 0:
		chains := make([]Chain, 0, len(p.defaultSports))
		for _, sport := range p.defaultSports {
			chains = append(chains, p.chain("default-popular", filter, teamID, func(q url.Values) {
				q.Set("sport_type", sport)
			}))
		}
		return chains

	case len(filter.SportTypes) > 0 && len(filter.CountryCodes) > 0:
		chains := make([]Chain, 0, len(filter.SportTypes)*len(filter.CountryCodes))
		for _, sport := range filter.SportTypes {
			for _, country := range filter.CountryCodes {
				sport, country := sport, country
				chains = append(chains, p.chain("sport-country", filter, teamID, func(q url.Values) {
					q.Set("sport_type", sport)
					q.Set("country", NormalizeCountry(country))
				}))
			}
		}
		return chains

	case len(filter.SportTypes) > 0:
		chains := make([]Chain, 0, len(filter.SportTypes))
		for _, sport := range filter.SportTypes {
			sport := sport
			chains = append(chains, p.chain("sport", filter, teamID, func(q url.Values) {
				q.Set("sport_type", sport)
			}))
		}
		return chains

	case len(filter.TournamentIDs) > 0:
		chains := make([]Chain, 0, len(filter.TournamentIDs))
		for _, id := range filter.TournamentIDs {
			id := id
			chains = append(chains, p.chain("tournament", filter, teamID, func(q url.Values) {
				q.Set("tournament_id", id)
			}))
		}
		return chains

	case len(filter.CountryCodes) > 0:
		chains := make([]Chain, 0, len(filter.CountryCodes))
		for _, country := range filter.CountryCodes {
			country := country
			chains = append(chains, p.chain("country", filter, teamID, func(q url.Values) {
				q.Set("country", NormalizeCountry(country))
			}))
		}
		return chains

	default:
		return []Chain{p.chain("single", filter, teamID, nil)}
	}
}

// isUnfiltered reports whether no filter dimension is set at all. The
// client-side-only dimensions (city, venue, price, status) count too: a
// query narrowed by any of them must fan out over the full catalog, not
// just the default popular sports.
func (p *Planner) isUnfiltered(filter FilterSpec, teamID string) bool {
	return len(filter.SportTypes) == 0 &&
		len(filter.TournamentIDs) == 0 &&
		len(filter.CountryCodes) == 0 &&
		len(filter.Cities) == 0 &&
		len(filter.Venues) == 0 &&
		len(filter.EventStatuses) == 0 &&
		filter.PriceMin == nil &&
		filter.PriceMax == nil &&
		filter.FreeTextQuery == "" &&
		filter.DateFrom == nil &&
		filter.DateTo == nil &&
		teamID == ""
}

func (p *Planner) chain(rule string, filter FilterSpec, teamID string, set func(url.Values)) Chain {
	q := url.Values{}
	q.Set("page_size", strconv.Itoa(p.pageSize))

	if filter.FreeTextQuery != "" {
		q.Set("event_name", filter.FreeTextQuery)
	}
	if filter.DateFrom != nil {
		q.Set("date_start", "ge:"+filter.DateFrom.Format(time.RFC3339))
	}
	if filter.DateTo != nil {
		q.Set("date_stop", "le:"+filter.DateTo.Format(time.RFC3339))
	}
	if teamID != "" {
		q.Set("team_id", teamID)
	}

	if set != nil {
		set(q)
	}

	return Chain{Rule: rule, Query: q}
}

package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanDefaultPopularWhenUnfiltered(t *testing.T) {
	planner := NewPlanner([]string{"football", "motogp"}, 50)

	chains := planner.Plan(FilterSpec{}, "")

	require.Len(t, chains, 2)
	assert.Equal(t, "default-popular", chains[0].Rule)
	assert.Equal(t, "football", chains[0].Query.Get("sport_type"))
	assert.Equal(t, "motogp", chains[1].Query.Get("sport_type"))
	assert.Equal(t, "50", chains[0].Query.Get("page_size"))
}

func TestPlanSportCountryCartesianProduct(t *testing.T) {
	planner := NewPlanner(nil, 100)

	chains := planner.Plan(FilterSpec{
		SportTypes:   []string{"formula-1", "motogp"},
		CountryCodes: []string{"it", "monaco"},
	}, "")

	require.Len(t, chains, 4)

	type pair struct{ sport, country string }
	got := map[pair]bool{}
	for _, chain := range chains {
		assert.Equal(t, "sport-country", chain.Rule)
		got[pair{chain.Query.Get("sport_type"), chain.Query.Get("country")}] = true
	}

	assert.True(t, got[pair{"formula-1", "ITA"}])
	assert.True(t, got[pair{"formula-1", "MCO"}])
	assert.True(t, got[pair{"motogp", "ITA"}])
	assert.True(t, got[pair{"motogp", "MCO"}])
}

func TestPlanSportOnly(t *testing.T) {
	planner := NewPlanner(nil, 100)

	chains := planner.Plan(FilterSpec{SportTypes: []string{"tennis"}}, "")

	require.Len(t, chains, 1)
	assert.Equal(t, "sport", chains[0].Rule)
	assert.Equal(t, "tennis", chains[0].Query.Get("sport_type"))
	assert.Empty(t, chains[0].Query.Get("country"))
}

func TestPlanTournamentBeatsCountry(t *testing.T) {
	planner := NewPlanner(nil, 100)

	chains := planner.Plan(FilterSpec{
		TournamentIDs: []string{"T1", "T2"},
		CountryCodes:  []string{"gb"},
	}, "")

	require.Len(t, chains, 2)
	assert.Equal(t, "tournament", chains[0].Rule)
	assert.Equal(t, "T1", chains[0].Query.Get("tournament_id"))
	assert.Equal(t, "T2", chains[1].Query.Get("tournament_id"))
	assert.Empty(t, chains[0].Query.Get("country"))
}

func TestPlanCountryOnly(t *testing.T) {
	planner := NewPlanner(nil, 100)

	chains := planner.Plan(FilterSpec{CountryCodes: []string{"gb", "germany"}}, "")

	require.Len(t, chains, 2)
	assert.Equal(t, "country", chains[0].Rule)
	assert.Equal(t, "GBR", chains[0].Query.Get("country"))
	assert.Equal(t, "DEU", chains[1].Query.Get("country"))
}

func TestPlanCityOnlyFallsToSingleChain(t *testing.T) {
	planner := NewPlanner(nil, 100)

	chains := planner.Plan(FilterSpec{Cities: []string{"monza"}}, "")

	require.Len(t, chains, 1)
	assert.Equal(t, "single", chains[0].Rule)
	assert.Empty(t, chains[0].Query.Get("sport_type"))
}

func TestPlanClientSideDimensionsBlockDefaultPopular(t *testing.T) {
	planner := NewPlanner(nil, 100)

	for name, filter := range map[string]FilterSpec{
		"venue":     {Venues: []string{"wembley"}},
		"price-min": {PriceMin: f64ptr(10)},
		"price-max": {PriceMax: f64ptr(200)},
		"status":    {EventStatuses: []string{"on_sale"}},
	} {
		chains := planner.Plan(filter, "")
		require.Len(t, chains, 1, name)
		assert.Equal(t, "single", chains[0].Rule, name)
	}
}

func TestPlanSingleChainForResidualFilters(t *testing.T) {
	planner := NewPlanner(nil, 100)

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	chains := planner.Plan(FilterSpec{FreeTextQuery: "grand prix", DateFrom: &from}, "")

	require.Len(t, chains, 1)
	assert.Equal(t, "single", chains[0].Rule)
	assert.Equal(t, "grand prix", chains[0].Query.Get("event_name"))
	assert.Equal(t, "ge:2026-09-01T00:00:00Z", chains[0].Query.Get("date_start"))
}

func TestPlanTeamIDForwardedAndBlocksDefault(t *testing.T) {
	planner := NewPlanner(nil, 100)

	chains := planner.Plan(FilterSpec{}, "TEAM-9")

	require.Len(t, chains, 1)
	assert.Equal(t, "single", chains[0].Rule)
	assert.Equal(t, "TEAM-9", chains[0].Query.Get("team_id"))
}

func TestPlanPopularOnlyUsesDefaultSports(t *testing.T) {
	planner := NewPlanner([]string{"football"}, 100)

	chains := planner.Plan(FilterSpec{PopularOnly: true, CountryCodes: []string{"it"}}, "")

	require.Len(t, chains, 1)
	assert.Equal(t, "default-popular", chains[0].Rule)
	assert.Equal(t, "football", chains[0].Query.Get("sport_type"))
}

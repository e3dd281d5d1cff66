package catalog

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// GetEventsRequest is the query-string shape of the catalog endpoint.
// Multi-value dimensions accept both repeated parameters and comma
// separation.
type GetEventsRequest struct {
	SportTypes    []string `validate:"max=20,dive,max=64"`
	TournamentIDs []string `validate:"max=20,dive,max=64"`
	CountryCodes  []string `validate:"max=20,dive,max=64"`
	Cities        []string `validate:"max=20,dive,max=128"`
	Venues        []string `validate:"max=20,dive,max=128"`
	DateFrom      *time.Time
	DateTo        *time.Time
	PriceMin      *float64 `validate:"omitempty,gte=0"`
	PriceMax      *float64 `validate:"omitempty,gte=0"`
	FreeTextQuery string   `validate:"max=256"`
	PopularOnly   bool
	EventStatuses []string `validate:"max=4,dive,oneof=on_sale coming_soon sales_closed not_confirmed"`
	TeamID        string   `validate:"max=64"`
	ShowAll       bool
}

// PopulateFromQuery implements the inverse of the storefront's filter UI
// serialization.
func (r *GetEventsRequest) PopulateFromQuery(qs url.Values) {
	r.SportTypes = multiValue(qs, "sport_type")
	r.TournamentIDs = multiValue(qs, "tournament_id")
	r.CountryCodes = multiValue(qs, "country")
	r.Cities = multiValue(qs, "city")
	r.Venues = multiValue(qs, "venue")
	r.EventStatuses = multiValue(qs, "status")
	r.FreeTextQuery = strings.TrimSpace(qs.Get("q"))
	r.TeamID = strings.TrimSpace(qs.Get("team_id"))
	r.PopularOnly, _ = strconv.ParseBool(qs.Get("popular"))
	r.ShowAll, _ = strconv.ParseBool(qs.Get("show_all"))

	if v, err := time.Parse("2006-01-02", qs.Get("date_from")); err == nil {
		r.DateFrom = &v
	}
	if v, err := time.Parse("2006-01-02", qs.Get("date_to")); err == nil {
		r.DateTo = &v
	}
	if v, err := strconv.ParseFloat(qs.Get("price_min"), 64); err == nil {
		r.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(qs.Get("price_max"), 64); err == nil {
		r.PriceMax = &v
	}
}

func (r GetEventsRequest) FilterSpec() FilterSpec {
	return FilterSpec{
		SportTypes:    r.SportTypes,
		TournamentIDs: r.TournamentIDs,
		CountryCodes:  r.CountryCodes,
		Cities:        r.Cities,
		Venues:        r.Venues,
		DateFrom:      r.DateFrom,
		DateTo:        r.DateTo,
		PriceMin:      r.PriceMin,
		PriceMax:      r.PriceMax,
		FreeTextQuery: r.FreeTextQuery,
		PopularOnly:   r.PopularOnly,
		EventStatuses: r.EventStatuses,
	}
}

func multiValue(qs url.Values, key string) []string {
	var out []string
	for _, raw := range qs[key] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

package catalog

import (
	"time"

	"github.com/tsel-ticketmaster/tm-catalog/internal/module/storefront/feed"
	"github.com/tsel-ticketmaster/tm-catalog/internal/module/storefront/ticket"
)

// Event is the catalog's normalized view of an upstream event: prices in
// major units, status derived, dates parsed. Consumers never see raw feed
// records.
type Event struct {
	ID            string
	Slug          string
	Name          string
	DateStart     *time.Time
	DateStop      *time.Time
	TournamentID  string
	VenueID       string
	SportType     string
	Country       string
	City          string
	Venue         string
	MinPrice      float64
	MaxPrice      float64
	TicketCount   int64
	RawStatus     string
	DerivedStatus ticket.SaleStatus
}

// FilterSpec is the storefront's filter model. Array fields are unordered
// sets, OR'd within a field and AND'd across fields. Much of it cannot be
// expressed upstream and is applied client-side after the fan-out merge.
type FilterSpec struct {
	SportTypes    []string
	TournamentIDs []string
	CountryCodes  []string
	Cities        []string
	Venues        []string
	DateFrom      *time.Time
	DateTo        *time.Time
	PriceMin      *float64
	PriceMax      *float64
	FreeTextQuery string
	PopularOnly   bool
	EventStatuses []string
}

// dateLayouts covers the formats the feed has been seen emitting.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseFeedTime(v string) *time.Time {
	if v == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return &t
		}
	}

	return nil
}

// eventFromRaw normalizes one upstream record. Price normalization here
// and in the ticket module must stay the same function, or list filtering
// and detail display drift apart.
func eventFromRaw(raw feed.RawEvent) Event {
	return Event{
		ID:            raw.ID,
		Slug:          raw.Slug,
		Name:          raw.Name,
		DateStart:     parseFeedTime(raw.DateStart),
		DateStop:      parseFeedTime(raw.DateStop),
		TournamentID:  raw.TournamentID,
		VenueID:       raw.VenueID,
		SportType:     raw.SportType,
		Country:       raw.Country,
		City:          raw.City,
		Venue:         raw.Venue,
		MinPrice:      ticket.NormalizePrice(raw.MinPrice),
		MaxPrice:      ticket.NormalizePrice(raw.MaxPrice),
		TicketCount:   raw.TicketCount,
		RawStatus:     raw.Status,
		DerivedStatus: ticket.DeriveStatus(raw.Status, raw.TicketCount),
	}
}

package catalog

import "time"

type EventResponse struct {
	ID           string     `json:"id"`
	Slug         string     `json:"slug"`
	Name         string     `json:"name"`
	DateStart    *time.Time `json:"date_start"`
	DateStop     *time.Time `json:"date_stop"`
	TournamentID string     `json:"tournament_id"`
	VenueID      string     `json:"venue_id"`
	SportType    string     `json:"sport_type"`
	Country      string     `json:"country"`
	City         string     `json:"city"`
	Venue        string     `json:"venue"`
	MinPrice     float64    `json:"min_price"`
	MaxPrice     float64    `json:"max_price"`
	TicketCount  int64      `json:"ticket_count"`
	Status       string     `json:"status"`
}

type GetEventsResponse []EventResponse

func (r *GetEventsResponse) PopulateFromEntities(events []Event) {
	out := make(GetEventsResponse, len(events))
	for i, ev := range events {
		out[i] = EventResponse{
			ID:           ev.ID,
			Slug:         ev.Slug,
			Name:         ev.Name,
			DateStart:    ev.DateStart,
			DateStop:     ev.DateStop,
			TournamentID: ev.TournamentID,
			VenueID:      ev.VenueID,
			SportType:    ev.SportType,
			Country:      NormalizeCountry(ev.Country),
			City:         ev.City,
			Venue:        ev.Venue,
			MinPrice:     ev.MinPrice,
			MaxPrice:     ev.MaxPrice,
			TicketCount:  ev.TicketCount,
			Status:       string(ev.DerivedStatus),
		}
	}

	*r = out
}

type GetEventsMeta struct {
	Total int `json:"total"`
}

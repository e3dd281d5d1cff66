package feed

import "encoding/json"

// RawEvent is an event exactly as the upstream ticketing feed returns it.
// Only the id is guaranteed present and unique; every other field may be
// empty, missing, or inconsistently spelled across records.
type RawEvent struct {
	ID           string  `json:"id"`
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	DateStart    string  `json:"date_start"`
	DateStop     string  `json:"date_stop"`
	TournamentID string  `json:"tournament_id"`
	VenueID      string  `json:"venue_id"`
	SportType    string  `json:"sport_type"`
	Country      string  `json:"country"`
	City         string  `json:"city"`
	Venue        string  `json:"venue"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	TicketCount  int64   `json:"ticket_count"`
	Status       string  `json:"status"`
	UpdatedAt    string  `json:"updated_at"`
}

// RawTicket is a single purchasable ticket row for one event. Tickets are
// never persisted; they live for the duration of one event-detail view.
type RawTicket struct {
	TicketID    string  `json:"ticket_id"`
	EventID     string  `json:"event_id"`
	CategoryID  string  `json:"category_id"`
	SubCategory string  `json:"sub_category"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
}

type pagination struct {
	NextPage string `json:"next_page"`
}

// pageEnvelope tolerates the three item-array keys the upstream is known
// to use interchangeably.
type pageEnvelope struct {
	Events     json.RawMessage `json:"events"`
	Results    json.RawMessage `json:"results"`
	Items      json.RawMessage `json:"items"`
	Pagination *pagination     `json:"pagination"`
}

func (e pageEnvelope) itemsPayload() json.RawMessage {
	switch {
	case len(e.Events) > 0:
		return e.Events
	case len(e.Results) > 0:
		return e.Results
	default:
		return e.Items
	}
}

func (e pageEnvelope) nextPage() string {
	if e.Pagination == nil {
		return ""
	}

	return e.Pagination.NextPage
}

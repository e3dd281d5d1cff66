package resolver

import "time"

// Sport is immutable reference data; rows are created and refreshed only by
// the external sync process.
type Sport struct {
	ID        string
	ImagePath *string
}

// Tournament mirrors the tournament table. Slug is neither unique nor
// guaranteed present, and SportType spelling drifts relative to the
// canonical sport id; every sport-type comparison must go through the
// candidate set in candidates.go, never direct equality.
type Tournament struct {
	ID           string
	Slug         *string
	SportType    *string
	OfficialName *string
	ImagePath    *string
	UpdatedAt    *time.Time
}

// Event mirrors the event table. ID is the only field guaranteed unique;
// slugs can be null, empty, or shared between records.
type Event struct {
	ID           string
	Slug         *string
	Name         *string
	DateStart    *time.Time
	DateStop     *time.Time
	TournamentID *string
	VenueID      *string
	SportType    *string
	UpdatedAt    *time.Time
}

// TournamentResolution is the resolver's answer for a tournament page
// request: the canonical records plus the redirect decision the rendering
// layer must honor before any content renders.
type TournamentResolution struct {
	Tournament    *Tournament
	Sport         *Sport
	CanonicalPath string
	Redirect      bool
}

// EventResolution is the resolver's answer for an event page request.
// Tournament may be recovered after the fact when resolution went through
// the loose path.
type EventResolution struct {
	Event         *Event
	Tournament    *Tournament
	Sport         *Sport
	CanonicalPath string
	Redirect      bool
}

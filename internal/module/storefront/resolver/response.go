package resolver

import "time"

type SportResponse struct {
	ID        string  `json:"id"`
	ImagePath *string `json:"image_path"`
}

type TournamentResponse struct {
	ID           string     `json:"id"`
	Slug         *string    `json:"slug"`
	SportType    *string    `json:"sport_type"`
	OfficialName *string    `json:"official_name"`
	ImagePath    *string    `json:"image_path"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

type EventResponse struct {
	ID           string     `json:"id"`
	Slug         *string    `json:"slug"`
	Name         *string    `json:"name"`
	DateStart    *time.Time `json:"date_start"`
	DateStop     *time.Time `json:"date_stop"`
	TournamentID *string    `json:"tournament_id"`
	VenueID      *string    `json:"venue_id"`
	SportType    *string    `json:"sport_type"`
}

type ResolveTournamentResponse struct {
	Tournament    TournamentResponse `json:"tournament"`
	Sport         *SportResponse     `json:"sport,omitempty"`
	CanonicalPath string             `json:"canonical_path"`
	Redirect      bool               `json:"redirect"`
}

func (r *ResolveTournamentResponse) PopulateFromResolution(res TournamentResolution) {
	r.Tournament = tournamentResponseFromEntity(*res.Tournament)
	if res.Sport != nil {
		r.Sport = &SportResponse{ID: res.Sport.ID, ImagePath: res.Sport.ImagePath}
	}
	r.CanonicalPath = res.CanonicalPath
	r.Redirect = res.Redirect
}

type ResolveEventResponse struct {
	Event         EventResponse       `json:"event"`
	Tournament    *TournamentResponse `json:"tournament,omitempty"`
	Sport         *SportResponse      `json:"sport,omitempty"`
	CanonicalPath string              `json:"canonical_path"`
	Redirect      bool                `json:"redirect"`
}

func (r *ResolveEventResponse) PopulateFromResolution(res EventResolution) {
	r.Event = EventResponse{
		ID:           res.Event.ID,
		Slug:         res.Event.Slug,
		Name:         res.Event.Name,
		DateStart:    res.Event.DateStart,
		DateStop:     res.Event.DateStop,
		TournamentID: res.Event.TournamentID,
		VenueID:      res.Event.VenueID,
		SportType:    res.Event.SportType,
	}
	if res.Tournament != nil {
		t := tournamentResponseFromEntity(*res.Tournament)
		r.Tournament = &t
	}
	if res.Sport != nil {
		r.Sport = &SportResponse{ID: res.Sport.ID, ImagePath: res.Sport.ImagePath}
	}
	r.CanonicalPath = res.CanonicalPath
	r.Redirect = res.Redirect
}

func tournamentResponseFromEntity(t Tournament) TournamentResponse {
	return TournamentResponse{
		ID:           t.ID,
		Slug:         t.Slug,
		SportType:    t.SportType,
		OfficialName: t.OfficialName,
		ImagePath:    t.ImagePath,
		UpdatedAt:    t.UpdatedAt,
	}
}

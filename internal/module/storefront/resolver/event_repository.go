package resolver

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/tsel-ticketmaster/tm-catalog/pkg/errors"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/status"
)

// EventRepository exposes one method per cascade tier. tournamentID narrows
// a tier to a resolved tournament; an empty tournamentID runs the tier over
// the full event set (the loose path).
type EventRepository interface {
	FindBySlug(ctx context.Context, slug string, sportTypes []string, tournamentID string) (*Event, error)
	FindBySlugPrefix(ctx context.Context, slug string, sportTypes []string, tournamentID string) (*Event, error)
	FindBySlugContains(ctx context.Context, slug string, sportTypes []string, tournamentID string) (*Event, error)
	FindBySlugGlobal(ctx context.Context, slug string, tournamentID string) (*Event, error)
}

const eventColumns = `
			event_id, slug, name, date_start, date_stop, tournament_id, venue_id, sport_type, updated_at`

type eventRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewEventRepository(logger *logrus.Logger, db *sql.DB) EventRepository {
	return &eventRepository{
		logger: logger,
		db:     db,
	}
}

// FindBySlug implements EventRepository.
func (r *eventRepository) FindBySlug(ctx context.Context, slug string, sportTypes []string, tournamentID string) (*Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM event
		WHERE
			LOWER(slug) = LOWER($1)
			AND LOWER(COALESCE(sport_type, '')) = ANY($2)
			AND ($3 = '' OR tournament_id = $3)
		LIMIT 1
	`

	return r.queryOne(ctx, query, slug, pq.Array(sportTypes), tournamentID)
}

// FindBySlugPrefix implements EventRepository.
func (r *eventRepository) FindBySlugPrefix(ctx context.Context, slug string, sportTypes []string, tournamentID string) (*Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM event
		WHERE
			LOWER(slug) LIKE LOWER($1) || '%'
			AND LOWER(COALESCE(sport_type, '')) = ANY($2)
			AND ($3 = '' OR tournament_id = $3)
		ORDER BY updated_at DESC NULLS LAST
		LIMIT 1
	`

	return r.queryOne(ctx, query, slug, pq.Array(sportTypes), tournamentID)
}

// FindBySlugContains implements EventRepository.
func (r *eventRepository) FindBySlugContains(ctx context.Context, slug string, sportTypes []string, tournamentID string) (*Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM event
		WHERE
			LOWER(slug) LIKE '%' || LOWER($1) || '%'
			AND LOWER(COALESCE(sport_type, '')) = ANY($2)
			AND ($3 = '' OR tournament_id = $3)
		ORDER BY updated_at DESC NULLS LAST
		LIMIT 1
	`

	return r.queryOne(ctx, query, slug, pq.Array(sportTypes), tournamentID)
}

// FindBySlugGlobal implements EventRepository.
func (r *eventRepository) FindBySlugGlobal(ctx context.Context, slug string, tournamentID string) (*Event, error) {
	query := `
		SELECT` + eventColumns + `
		FROM event
		WHERE
			LOWER(slug) = LOWER($1)
			AND ($2 = '' OR tournament_id = $2)
		LIMIT 1
	`

	return r.queryOne(ctx, query, slug, tournamentID)
}

func (r *eventRepository) queryOne(ctx context.Context, query string, args ...interface{}) (*Event, error) {
	var cmd sqlCommand = r.db

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting event's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, args...)

	var data Event
	var slug, name, tournamentID, venueID, sportType sql.NullString
	var dateStart, dateStop, updatedAt sql.NullTime

	err = row.Scan(&data.ID, &slug, &name, &dateStart, &dateStop, &tournamentID, &venueID, &sportType, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting event's properties")
	}

	if slug.Valid {
		data.Slug = &slug.String
	}
	if name.Valid {
		data.Name = &name.String
	}
	if dateStart.Valid {
		data.DateStart = &dateStart.Time
	}
	if dateStop.Valid {
		data.DateStop = &dateStop.Time
	}
	if tournamentID.Valid {
		data.TournamentID = &tournamentID.String
	}
	if venueID.Valid {
		data.VenueID = &venueID.String
	}
	if sportType.Valid {
		data.SportType = &sportType.String
	}
	if updatedAt.Valid {
		data.UpdatedAt = &updatedAt.Time
	}

	return &data, nil
}

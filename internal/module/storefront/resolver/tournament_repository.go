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

// TournamentRepository exposes one method per cascade tier so the use case
// can drive the tiers as an ordered strategy list and tests can count which
// tiers were consulted.
type TournamentRepository interface {
	FindBySlug(ctx context.Context, slug string, sportTypes []string) (*Tournament, error)
	FindBySlugPrefix(ctx context.Context, slug string, sportTypes []string) (*Tournament, error)
	FindBySlugContains(ctx context.Context, slug string, sportTypes []string) (*Tournament, error)
	FindBySlugGlobal(ctx context.Context, slug string) (*Tournament, error)
	FindByID(ctx context.Context, id string) (*Tournament, error)
}

const tournamentColumns = `
			tournament_id, slug, sport_type, official_name, image_path, updated_at`

type tournamentRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewTournamentRepository(logger *logrus.Logger, db *sql.DB) TournamentRepository {
	return &tournamentRepository{
		logger: logger,
		db:     db,
	}
}

// FindBySlug implements TournamentRepository.
func (r *tournamentRepository) FindBySlug(ctx context.Context, slug string, sportTypes []string) (*Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM tournament
		WHERE
			LOWER(slug) = LOWER($1)
			AND LOWER(COALESCE(sport_type, '')) = ANY($2)
		LIMIT 1
	`

	return r.queryOne(ctx, query, slug, pq.Array(sportTypes))
}

// FindBySlugPrefix implements TournamentRepository.
func (r *tournamentRepository) FindBySlugPrefix(ctx context.Context, slug string, sportTypes []string) (*Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM tournament
		WHERE
			LOWER(slug) LIKE LOWER($1) || '%'
			AND LOWER(COALESCE(sport_type, '')) = ANY($2)
		ORDER BY updated_at DESC NULLS LAST
		LIMIT 1
	`

	return r.queryOne(ctx, query, slug, pq.Array(sportTypes))
}

// FindBySlugContains implements TournamentRepository.
func (r *tournamentRepository) FindBySlugContains(ctx context.Context, slug string, sportTypes []string) (*Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM tournament
		WHERE
			LOWER(slug) LIKE '%' || LOWER($1) || '%'
			AND LOWER(COALESCE(sport_type, '')) = ANY($2)
		ORDER BY updated_at DESC NULLS LAST
		LIMIT 1
	`

	return r.queryOne(ctx, query, slug, pq.Array(sportTypes))
}

// FindBySlugGlobal implements TournamentRepository.
func (r *tournamentRepository) FindBySlugGlobal(ctx context.Context, slug string) (*Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM tournament
		WHERE
			LOWER(slug) = LOWER($1)
		LIMIT 1
	`

	return r.queryOne(ctx, query, slug)
}

// FindByID implements TournamentRepository.
func (r *tournamentRepository) FindByID(ctx context.Context, id string) (*Tournament, error) {
	query := `
		SELECT` + tournamentColumns + `
		FROM tournament
		WHERE
			tournament_id = $1
		LIMIT 1
	`

	return r.queryOne(ctx, query, id)
}

func (r *tournamentRepository) queryOne(ctx context.Context, query string, args ...interface{}) (*Tournament, error) {
	var cmd sqlCommand = r.db

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting tournament's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, args...)

	var data Tournament
	var slug, sportType, officialName, imagePath sql.NullString
	var updatedAt sql.NullTime

	err = row.Scan(&data.ID, &slug, &sportType, &officialName, &imagePath, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting tournament's properties")
	}

	if slug.Valid {
		data.Slug = &slug.String
	}
	if sportType.Valid {
		data.SportType = &sportType.String
	}
	if officialName.Valid {
		data.OfficialName = &officialName.String
	}
	if imagePath.Valid {
		data.ImagePath = &imagePath.String
	}
	if updatedAt.Valid {
		data.UpdatedAt = &updatedAt.Time
	}

	return &data, nil
}

package resolver

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/tsel-ticketmaster/tm-catalog/pkg/errors"
	"github.com/tsel-ticketmaster/tm-catalog/pkg/status"
)

type SportRepository interface {
	FindByID(ctx context.Context, id string) (*Sport, error)
}

type sqlCommand interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

type sportRepository struct {
	logger *logrus.Logger
	db     *sql.DB
}

func NewSportRepository(logger *logrus.Logger, db *sql.DB) SportRepository {
	return &sportRepository{
		logger: logger,
		db:     db,
	}
}

// FindByID implements SportRepository.
func (r *sportRepository) FindByID(ctx context.Context, id string) (*Sport, error) {
	query := `
		SELECT
			sport_id, image_path
		FROM sport
		WHERE
			sport_id = LOWER($1)
		LIMIT 1
	`

	var cmd sqlCommand = r.db

	stmt, err := cmd.PrepareContext(ctx, query)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting sport's properties")
	}
	defer stmt.Close()

	row := stmt.QueryRowContext(ctx, id)

	var data Sport
	var imagePath sql.NullString

	if err := row.Scan(&data.ID, &imagePath); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.WithContext(ctx).WithError(err).Error()
		return nil, errors.New(http.StatusInternalServerError, status.INTERNAL_SERVER_ERROR, "an error occurred while getting sport's properties")
	}

	if imagePath.Valid {
		data.ImagePath = &imagePath.String
	}

	return &data, nil
}

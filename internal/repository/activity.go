package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"holiday_planner/internal/domain"
	errs "holiday_planner/pkg/errors"
	"holiday_planner/pkg/logger"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	ListByHoliday(ctx context.Context, holidayID uuid.UUID) ([]*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type activityRepository struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewActivityRepository(db *pgxpool.Pool, log logger.Logger) ActivityRepository {
	return &activityRepository{db: db, log: log}
}

const activityColumns = `id, holiday_id, name, description, start_date, end_date,
	       street, street_number, postal_code, city, country, category`

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	a := &domain.Activity{}
	err := row.Scan(
		&a.ID, &a.HolidayID, &a.Name, &a.Description, &a.StartDate, &a.EndDate,
		&a.Address.Street, &a.Address.StreetNumber, &a.Address.PostalCode,
		&a.Address.City, &a.Address.Country, &a.Category,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (id, holiday_id, name, description, start_date, end_date,
		                        street, street_number, postal_code, city, country, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		activity.ID, activity.HolidayID, activity.Name, activity.Description,
		activity.StartDate.Time, activity.EndDate.Time,
		activity.Address.Street, activity.Address.StreetNumber, activity.Address.PostalCode,
		activity.Address.City, activity.Address.Country, activity.Category,
	)
	if err != nil {
		r.log.Error("Failed to create activity", "error", err)
		return err
	}

	return nil
}

func (r *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE id = $1`

	activity, err := scanActivity(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFound("activity not found")
		}
		r.log.Error("Failed to get activity by ID", "error", err)
		return nil, err
	}

	return activity, nil
}

func (r *activityRepository) ListByHoliday(ctx context.Context, holidayID uuid.UUID) ([]*domain.Activity, error) {
	query := `SELECT ` + activityColumns + ` FROM activities WHERE holiday_id = $1 ORDER BY start_date ASC`

	rows, err := r.db.Query(ctx, query, holidayID)
	if err != nil {
		r.log.Error("Failed to list activities", "error", err)
		return nil, err
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			r.log.Error("Failed to scan activity", "error", err)
			return nil, err
		}
		activities = append(activities, activity)
	}

	return activities, nil
}

func (r *activityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	query := `
		UPDATE activities
		SET name = $2, description = $3, start_date = $4, end_date = $5,
		    street = $6, street_number = $7, postal_code = $8, city = $9, country = $10,
		    category = $11
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		activity.ID, activity.Name, activity.Description,
		activity.StartDate.Time, activity.EndDate.Time,
		activity.Address.Street, activity.Address.StreetNumber, activity.Address.PostalCode,
		activity.Address.City, activity.Address.Country, activity.Category,
	)
	if err != nil {
		r.log.Error("Failed to update activity", "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("activity not found")
	}

	return nil
}

func (r *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete activity", "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("activity not found")
	}
	return nil
}

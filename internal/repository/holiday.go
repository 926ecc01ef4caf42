package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"holiday_planner/internal/domain"
	errs "holiday_planner/pkg/errors"
	"holiday_planner/pkg/logger"
)

type HolidayRepository interface {
	// Create persists the holiday and the creator's invitation in one
	// transaction, so the aggregate is never observable without a guest.
	Create(ctx context.Context, holiday *domain.Holiday, creatorID uuid.UUID) error
	GetWithInvitations(ctx context.Context, id uuid.UUID) (*domain.Holiday, error)
	GetWithInvitationsAndActivities(ctx context.Context, id uuid.UUID) (*domain.Holiday, error)
	ListPublished(ctx context.Context, filter domain.HolidayFilter) ([]*domain.Holiday, error)
	ListInvited(ctx context.Context, userID uuid.UUID, filter domain.HolidayFilter) ([]*domain.Holiday, error)
	Update(ctx context.Context, holiday *domain.Holiday) error
	Delete(ctx context.Context, id uuid.UUID) error
	CreateInvitation(ctx context.Context, invitation *domain.Invitation) error
	// RemoveInvitation deletes the user's invitation and, when it was the
	// last one, the holiday itself. The holiday row is locked first so two
	// concurrent leaves serialize instead of double-deleting.
	RemoveInvitation(ctx context.Context, holidayID, userID uuid.UUID) (remaining int64, holidayDeleted bool, err error)
	ListGuests(ctx context.Context, holidayID uuid.UUID) ([]*domain.Guest, error)
}

type holidayRepository struct {
	db  *pgxpool.Pool
	log logger.Logger
}

func NewHolidayRepository(db *pgxpool.Pool, log logger.Logger) HolidayRepository {
	return &holidayRepository{db: db, log: log}
}

const holidayColumns = `id, name, description, start_date, end_date,
	       street, street_number, postal_code, city, country, published`

func scanHoliday(row pgx.Row) (*domain.Holiday, error) {
	h := &domain.Holiday{}
	err := row.Scan(
		&h.ID, &h.Name, &h.Description, &h.StartDate, &h.EndDate,
		&h.Address.Street, &h.Address.StreetNumber, &h.Address.PostalCode,
		&h.Address.City, &h.Address.Country, &h.Published,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *holidayRepository) Create(ctx context.Context, holiday *domain.Holiday, creatorID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", "error", err)
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO holidays (id, name, description, start_date, end_date,
		                      street, street_number, postal_code, city, country, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = tx.Exec(ctx, query,
		holiday.ID, holiday.Name, holiday.Description, holiday.StartDate.Time, holiday.EndDate.Time,
		holiday.Address.Street, holiday.Address.StreetNumber, holiday.Address.PostalCode,
		holiday.Address.City, holiday.Address.Country, holiday.Published,
	)
	if err != nil {
		r.log.Error("Failed to create holiday", "error", err)
		return err
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO invitations (user_id, holiday_id) VALUES ($1, $2)`,
		creatorID, holiday.ID,
	)
	if err != nil {
		r.log.Error("Failed to create creator invitation", "error", err)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit holiday creation", "error", err)
		return err
	}

	holiday.Invitations = []domain.Invitation{{UserID: creatorID, HolidayID: holiday.ID}}
	return nil
}

func (r *holidayRepository) GetWithInvitations(ctx context.Context, id uuid.UUID) (*domain.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE id = $1`

	holiday, err := scanHoliday(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NotFound("holiday not found")
		}
		r.log.Error("Failed to get holiday by ID", "error", err)
		return nil, err
	}

	if err := r.loadInvitations(ctx, []*domain.Holiday{holiday}); err != nil {
		return nil, err
	}

	return holiday, nil
}

func (r *holidayRepository) GetWithInvitationsAndActivities(ctx context.Context, id uuid.UUID) (*domain.Holiday, error) {
	holiday, err := r.GetWithInvitations(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, holiday_id, name, description, start_date, end_date,
		       street, street_number, postal_code, city, country, category
		FROM activities
		WHERE holiday_id = $1
		ORDER BY start_date ASC
	`, id)
	if err != nil {
		r.log.Error("Failed to load activities", "error", err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		a := domain.Activity{}
		err := rows.Scan(
			&a.ID, &a.HolidayID, &a.Name, &a.Description, &a.StartDate, &a.EndDate,
			&a.Address.Street, &a.Address.StreetNumber, &a.Address.PostalCode,
			&a.Address.City, &a.Address.Country, &a.Category,
		)
		if err != nil {
			r.log.Error("Failed to scan activity", "error", err)
			return nil, err
		}
		holiday.Activities = append(holiday.Activities, a)
	}

	return holiday, nil
}

func (r *holidayRepository) ListPublished(ctx context.Context, filter domain.HolidayFilter) ([]*domain.Holiday, error) {
	return r.list(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE published = true`, nil, filter)
}

func (r *holidayRepository) ListInvited(ctx context.Context, userID uuid.UUID, filter domain.HolidayFilter) ([]*domain.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays
		WHERE id IN (SELECT holiday_id FROM invitations WHERE user_id = $1)`
	return r.list(ctx, query, []interface{}{userID}, filter)
}

func (r *holidayRepository) list(ctx context.Context, base string, args []interface{}, filter domain.HolidayFilter) ([]*domain.Holiday, error) {
	query := base

	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}
	if filter.From != nil {
		args = append(args, filter.From.Time)
		query += fmt.Sprintf(" AND start_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, filter.To.Time)
		query += fmt.Sprintf(" AND start_date <= $%d", len(args))
	}
	query += " ORDER BY start_date ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list holidays", "error", err)
		return nil, err
	}
	defer rows.Close()

	var holidays []*domain.Holiday
	for rows.Next() {
		holiday, err := scanHoliday(rows)
		if err != nil {
			r.log.Error("Failed to scan holiday", "error", err)
			return nil, err
		}
		holidays = append(holidays, holiday)
	}

	if err := r.loadInvitations(ctx, holidays); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *holidayRepository) loadInvitations(ctx context.Context, holidays []*domain.Holiday) error {
	if len(holidays) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(holidays))
	byID := make(map[uuid.UUID]*domain.Holiday, len(holidays))
	for _, h := range holidays {
		ids = append(ids, h.ID)
		byID[h.ID] = h
	}

	rows, err := r.db.Query(ctx,
		`SELECT user_id, holiday_id FROM invitations WHERE holiday_id = ANY($1)`, ids)
	if err != nil {
		r.log.Error("Failed to load invitations", "error", err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		inv := domain.Invitation{}
		if err := rows.Scan(&inv.UserID, &inv.HolidayID); err != nil {
			r.log.Error("Failed to scan invitation", "error", err)
			return err
		}
		if h, ok := byID[inv.HolidayID]; ok {
			h.Invitations = append(h.Invitations, inv)
		}
	}

	return nil
}

func (r *holidayRepository) Update(ctx context.Context, holiday *domain.Holiday) error {
	query := `
		UPDATE holidays
		SET name = $2, description = $3, start_date = $4, end_date = $5,
		    street = $6, street_number = $7, postal_code = $8, city = $9, country = $10,
		    published = $11
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		holiday.ID, holiday.Name, holiday.Description, holiday.StartDate.Time, holiday.EndDate.Time,
		holiday.Address.Street, holiday.Address.StreetNumber, holiday.Address.PostalCode,
		holiday.Address.City, holiday.Address.Country, holiday.Published,
	)
	if err != nil {
		r.log.Error("Failed to update holiday", "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("holiday not found")
	}

	return nil
}

func (r *holidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Invitations, activities and chat messages go with the holiday
	// through ON DELETE CASCADE.
	tag, err := r.db.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete holiday", "error", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.NotFound("holiday not found")
	}
	return nil
}

func (r *holidayRepository) CreateInvitation(ctx context.Context, invitation *domain.Invitation) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO invitations (user_id, holiday_id) VALUES ($1, $2)`,
		invitation.UserID, invitation.HolidayID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errs.Conflict("user is already invited to this holiday")
		}
		r.log.Error("Failed to create invitation", "error", err)
		return err
	}
	return nil
}

func (r *holidayRepository) RemoveInvitation(ctx context.Context, holidayID, userID uuid.UUID) (int64, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", "error", err)
		return 0, false, err
	}
	defer tx.Rollback(ctx)

	var lockedID uuid.UUID
	err = tx.QueryRow(ctx, `SELECT id FROM holidays WHERE id = $1 FOR UPDATE`, holidayID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, errs.NotFound("holiday not found")
		}
		r.log.Error("Failed to lock holiday row", "error", err)
		return 0, false, err
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM invitations WHERE holiday_id = $1 AND user_id = $2`,
		holidayID, userID,
	)
	if err != nil {
		r.log.Error("Failed to remove invitation", "error", err)
		return 0, false, err
	}
	if tag.RowsAffected() == 0 {
		return 0, false, errs.NotFound("invitation not found")
	}

	var remaining int64
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM invitations WHERE holiday_id = $1`, holidayID,
	).Scan(&remaining)
	if err != nil {
		r.log.Error("Failed to count remaining invitations", "error", err)
		return 0, false, err
	}

	deleted := false
	if remaining == 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, holidayID); err != nil {
			r.log.Error("Failed to cascade-delete empty holiday", "error", err)
			return 0, false, err
		}
		deleted = true
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit leave", "error", err)
		return 0, false, err
	}

	return remaining, deleted, nil
}

func (r *holidayRepository) ListGuests(ctx context.Context, holidayID uuid.UUID) ([]*domain.Guest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.first_name, u.last_name, u.email
		FROM users u
		JOIN invitations i ON i.user_id = u.id
		WHERE i.holiday_id = $1
		ORDER BY u.first_name, u.last_name
	`, holidayID)
	if err != nil {
		r.log.Error("Failed to list guests", "error", err)
		return nil, err
	}
	defer rows.Close()

	var guests []*domain.Guest
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email); err != nil {
			r.log.Error("Failed to scan guest", "error", err)
			return nil, err
		}
		guests = append(guests, g)
	}

	return guests, nil
}

package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/grooming-service/internal/domain"
)

// AppointmentRepository encapsulates appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) error
	Reschedule(ctx context.Context, id string, date time.Time, timeStr string) error
	SetComplete(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	ListIncompleteByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Appointment, int, error)
	ListIncomplete(ctx context.Context, limit, offset int) ([]domain.Appointment, int, error)
	ListByDateTimeWindow(ctx context.Context, date time.Time, fromTime, toTime string) ([]domain.Appointment, error)
}

type appointmentRepository struct {
	pool *pgxpool.Pool
}

// NewAppointmentRepository instantiates repository.
func NewAppointmentRepository(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepository{pool: pool}
}

const appointmentColumns = `id, user_id, dog_id, service_id, address, date, time, comment, complete, create_time`

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	const query = `
        INSERT INTO appointments (user_id, dog_id, service_id, address, date, time, comment, complete)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, create_time`

	return r.pool.QueryRow(ctx, query,
		appointment.UserID,
		appointment.DogID,
		appointment.ServiceID,
		appointment.Address,
		appointment.Date,
		appointment.Time,
		appointment.Comment,
		appointment.Complete,
	).Scan(&appointment.ID, &appointment.CreateTime)
}

// Reschedule mutates date and time in place and nothing else.
func (r *appointmentRepository) Reschedule(ctx context.Context, id string, date time.Time, timeStr string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE appointments SET date=$1, time=$2 WHERE id=$3`, date, timeStr, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) SetComplete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE appointments SET complete=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteByUser removes every appointment owned by a user; called before the
// user row itself is deleted so no orphaned rows remain.
func (r *appointmentRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE user_id=$1`, userID)
	return err
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var appointment domain.Appointment
	const query = `SELECT ` + appointmentColumns + ` FROM appointments WHERE id=$1`
	if err := scanAppointment(r.pool.QueryRow(ctx, query, id), &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) ListIncompleteByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE user_id=$1 AND complete=FALSE`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT ` + appointmentColumns + ` FROM appointments
        WHERE user_id=$1 AND complete=FALSE
        ORDER BY create_time DESC
        LIMIT $2 OFFSET $3`
	return r.list(ctx, total, query, userID, limit, offset)
}

func (r *appointmentRepository) ListIncomplete(ctx context.Context, limit, offset int) ([]domain.Appointment, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM appointments WHERE complete=FALSE`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
        SELECT ` + appointmentColumns + ` FROM appointments
        WHERE complete=FALSE
        ORDER BY date ASC, time ASC
        LIMIT $1 OFFSET $2`
	return r.list(ctx, total, query, limit, offset)
}

// ListByDateTimeWindow returns appointments on date whose stored slot start
// falls in [fromTime, toTime). The time column holds fixed-width strings, so
// lexical comparison matches chronological order.
func (r *appointmentRepository) ListByDateTimeWindow(ctx context.Context, date time.Time, fromTime, toTime string) ([]domain.Appointment, error) {
	const query = `
        SELECT ` + appointmentColumns + ` FROM appointments
        WHERE date=$1 AND time >= $2 AND time < $3
        ORDER BY time ASC`
	rows, err := r.pool.Query(ctx, query, date, fromTime, toTime)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func (r *appointmentRepository) list(ctx context.Context, total int, query string, args ...any) ([]domain.Appointment, int, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	appointments, err := collectAppointments(rows)
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func collectAppointments(rows pgx.Rows) ([]domain.Appointment, error) {
	var appointments []domain.Appointment
	for rows.Next() {
		var appointment domain.Appointment
		if err := scanAppointment(rows, &appointment); err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}
	return appointments, rows.Err()
}

func scanAppointment(row pgx.Row, appointment *domain.Appointment) error {
	return row.Scan(
		&appointment.ID,
		&appointment.UserID,
		&appointment.DogID,
		&appointment.ServiceID,
		&appointment.Address,
		&appointment.Date,
		&appointment.Time,
		&appointment.Comment,
		&appointment.Complete,
		&appointment.CreateTime,
	)
}

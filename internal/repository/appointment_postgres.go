package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
	"barbershop/pkg/database"
)

type AppointmentRepo struct {
	db *pgxpool.Pool
}

func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepo {
	return &AppointmentRepo{
		db: db,
	}
}

const appointmentColumns = `
	a.id, a.customer_name, a.customer_phone, a.customer_email, a.service_id, s.name,
	to_char(a.appointment_date, 'YYYY-MM-DD'), a.appointment_time, a.notes, a.status,
	a.created_at, a.updated_at`

const appointmentFrom = `
	FROM appointments a
	LEFT JOIN services s ON s.id = a.service_id`

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var a domain.Appointment
	err := row.Scan(
		&a.ID,
		&a.CustomerName,
		&a.CustomerPhone,
		&a.CustomerEmail,
		&a.ServiceID,
		&a.ServiceName,
		&a.AppointmentDate,
		&a.AppointmentTime,
		&a.Notes,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// appointmentError maps the (date, time) unique constraint to ErrSlotTaken.
func appointmentError(op string, err error) error {
	if database.ErrorCode(err) == database.CodeUniqueViolation {
		return fmt.Errorf("%s: %w", op, domain.ErrSlotTaken)
	}
	return wrapError(op, err)
}

func (r *AppointmentRepo) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	date, err := time.Parse(domain.DateLayout, dto.AppointmentDate)
	if err != nil {
		return nil, domain.NewValidationError("appointment_date", "fecha inválida")
	}

	query := `
		INSERT INTO appointments (customer_name, customer_phone, customer_email, service_id,
		                          appointment_date, appointment_time, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id string
	err = r.db.QueryRow(ctx, query,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.CustomerEmail,
		dto.ServiceID,
		date,
		dto.AppointmentTime,
		dto.Notes,
		domain.AppointmentStatusPending,
	).Scan(&id)
	if err != nil {
		return nil, appointmentError("error al crear la cita", err)
	}

	a, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *AppointmentRepo) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + appointmentFrom + ` WHERE a.id = $1`

	a, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, wrapError("error al obtener la cita", err)
	}

	return a, nil
}

func (r *AppointmentRepo) Update(ctx context.Context, id string, dto domain.UpdateAppointmentDTO) (*domain.Appointment, error) {
	var b setBuilder

	if dto.CustomerName != nil {
		b.add("customer_name", *dto.CustomerName)
	}
	if dto.CustomerPhone != nil {
		b.add("customer_phone", *dto.CustomerPhone)
	}
	if dto.CustomerEmail != nil {
		b.add("customer_email", *dto.CustomerEmail)
	}
	if dto.ServiceID != nil {
		b.add("service_id", *dto.ServiceID)
	}
	if dto.AppointmentDate != nil {
		date, err := time.Parse(domain.DateLayout, *dto.AppointmentDate)
		if err != nil {
			return nil, domain.NewValidationError("appointment_date", "fecha inválida")
		}
		b.add("appointment_date", date)
	}
	if dto.AppointmentTime != nil {
		b.add("appointment_time", *dto.AppointmentTime)
	}
	if dto.Notes != nil {
		b.add("notes", *dto.Notes)
	}
	if dto.Status != nil {
		b.add("status", *dto.Status)
	}

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.query("appointments", "id", id, "id")

	var updatedID string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, appointmentError("error al actualizar la cita", err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	query := `UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING id`

	var updatedID string
	if err := r.db.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		return nil, wrapError("error al actualizar el estado de la cita", err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *AppointmentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return wrapError("error al eliminar la cita", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func appointmentWhere(filter domain.AppointmentFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("a.appointment_date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("a.appointment_date <= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *AppointmentRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, error) {
	where, args := appointmentWhere(filter)
	query := `SELECT ` + appointmentColumns + appointmentFrom + where +
		` ORDER BY a.appointment_date DESC, a.appointment_time DESC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return r.query(ctx, query, args...)
}

func (r *AppointmentRepo) CountByFilter(ctx context.Context, filter domain.AppointmentFilter) (int, error) {
	where, args := appointmentWhere(filter)

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM appointments a`+where, args...).Scan(&count); err != nil {
		return 0, wrapError("error al contar las citas", err)
	}
	return count, nil
}

func (r *AppointmentRepo) ListByDate(ctx context.Context, date time.Time) ([]domain.Appointment, error) {
	query := `SELECT ` + appointmentColumns + appointmentFrom +
		` WHERE a.appointment_date = $1 ORDER BY a.appointment_time`
	return r.query(ctx, query, date)
}

func (r *AppointmentRepo) query(ctx context.Context, query string, args ...any) ([]domain.Appointment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapError("error al listar las citas", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, wrapError("error al leer la cita", err)
		}
		appointments = append(appointments, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapError("error al listar las citas", err)
	}

	return appointments, nil
}

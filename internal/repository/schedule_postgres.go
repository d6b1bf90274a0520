package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"barbershop/internal/domain"
)

type ServiceHoursRepo struct {
	db *pgxpool.Pool
}

func NewServiceHoursRepository(db *pgxpool.Pool) *ServiceHoursRepo {
	return &ServiceHoursRepo{db: db}
}

const serviceHoursColumns = `id, day_of_week, day_name, is_available, start_time, end_time,
	break_start_time, break_end_time, slot_duration_minutes, available_slots, active,
	created_at, updated_at`

func scanServiceHours(row rowScanner) (*domain.ServiceHours, error) {
	var h domain.ServiceHours
	err := row.Scan(
		&h.ID,
		&h.DayOfWeek,
		&h.DayName,
		&h.IsAvailable,
		&h.StartTime,
		&h.EndTime,
		&h.BreakStartTime,
		&h.BreakEndTime,
		&h.SlotDurationMinutes,
		&h.AvailableSlots,
		&h.Active,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *ServiceHoursRepo) List(ctx context.Context) ([]domain.ServiceHours, error) {
	rows, err := r.db.Query(ctx, `SELECT `+serviceHoursColumns+` FROM service_hours ORDER BY day_of_week`)
	if err != nil {
		return nil, wrapError("error al listar los horarios de atención", err)
	}
	defer rows.Close()

	result := make([]domain.ServiceHours, 0, 7)
	for rows.Next() {
		h, err := scanServiceHours(rows)
		if err != nil {
			return nil, wrapError("error al leer el horario de atención", err)
		}
		result = append(result, *h)
	}

	return result, wrapError("error al listar los horarios de atención", rows.Err())
}

func (r *ServiceHoursRepo) GetByID(ctx context.Context, id string) (*domain.ServiceHours, error) {
	h, err := scanServiceHours(r.db.QueryRow(ctx, `SELECT `+serviceHoursColumns+` FROM service_hours WHERE id = $1`, id))
	if err != nil {
		return nil, wrapError("error al obtener el horario de atención", err)
	}
	return h, nil
}

// GetByDayOfWeek returns the active row for a weekday (0 = Sunday).
func (r *ServiceHoursRepo) GetByDayOfWeek(ctx context.Context, day int) (*domain.ServiceHours, error) {
	query := `SELECT ` + serviceHoursColumns + ` FROM service_hours WHERE day_of_week = $1 AND active = TRUE`

	h, err := scanServiceHours(r.db.QueryRow(ctx, query, day))
	if err != nil {
		return nil, wrapError("error al obtener el horario del día", err)
	}
	return h, nil
}

func (r *ServiceHoursRepo) Update(ctx context.Context, id string, dto domain.UpdateServiceHoursDTO) (*domain.ServiceHours, error) {
	var b setBuilder

	if dto.DayName != nil {
		b.add("day_name", dto.DayName)
	}
	if dto.IsAvailable != nil {
		b.add("is_available", *dto.IsAvailable)
	}
	if dto.StartTime != nil {
		b.add("start_time", *dto.StartTime)
	}
	if dto.EndTime != nil {
		b.add("end_time", *dto.EndTime)
	}
	if dto.ClearBreak {
		b.addRaw("break_start_time = NULL")
		b.addRaw("break_end_time = NULL")
	} else {
		if dto.BreakStartTime != nil {
			b.add("break_start_time", *dto.BreakStartTime)
		}
		if dto.BreakEndTime != nil {
			b.add("break_end_time", *dto.BreakEndTime)
		}
	}
	if dto.SlotDurationMinutes != nil {
		b.add("slot_duration_minutes", *dto.SlotDurationMinutes)
	}
	if dto.AvailableSlots != nil {
		if len(*dto.AvailableSlots) == 0 {
			b.addRaw("available_slots = NULL")
		} else {
			b.add("available_slots", *dto.AvailableSlots)
		}
	}
	if dto.Active != nil {
		b.add("active", *dto.Active)
	}

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.query("service_hours", "id", id, serviceHoursColumns)

	h, err := scanServiceHours(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapError("error al actualizar el horario de atención", err)
	}
	return h, nil
}

func (r *ServiceHoursRepo) Upsert(ctx context.Context, h domain.ServiceHours) error {
	var slots any
	if len(h.AvailableSlots) > 0 {
		slots = h.AvailableSlots
	}

	query := `
		INSERT INTO service_hours (day_of_week, day_name, is_available, start_time, end_time,
		                           break_start_time, break_end_time, slot_duration_minutes, available_slots, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (day_of_week) DO UPDATE SET
			day_name = EXCLUDED.day_name,
			is_available = EXCLUDED.is_available,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			break_start_time = EXCLUDED.break_start_time,
			break_end_time = EXCLUDED.break_end_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			available_slots = EXCLUDED.available_slots,
			active = EXCLUDED.active,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		h.DayOfWeek,
		text(h.DayName),
		h.IsAvailable,
		h.StartTime,
		h.EndTime,
		h.BreakStartTime,
		h.BreakEndTime,
		h.SlotDurationMinutes,
		slots,
		h.Active,
	)
	return wrapError("error al guardar el horario de atención", err)
}

type WorkingHoursRepo struct {
	db *pgxpool.Pool
}

func NewWorkingHoursRepository(db *pgxpool.Pool) *WorkingHoursRepo {
	return &WorkingHoursRepo{db: db}
}

const workingHoursColumns = `id, day_of_week, day_name, is_open, open_time, close_time,
	break_start_time, break_end_time, slot_duration_minutes, active, created_at, updated_at`

func scanWorkingHours(row rowScanner) (*domain.WorkingHours, error) {
	var h domain.WorkingHours
	err := row.Scan(
		&h.ID,
		&h.DayOfWeek,
		&h.DayName,
		&h.IsOpen,
		&h.OpenTime,
		&h.CloseTime,
		&h.BreakStartTime,
		&h.BreakEndTime,
		&h.SlotDurationMinutes,
		&h.Active,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *WorkingHoursRepo) List(ctx context.Context) ([]domain.WorkingHours, error) {
	rows, err := r.db.Query(ctx, `SELECT `+workingHoursColumns+` FROM working_hours ORDER BY day_of_week`)
	if err != nil {
		return nil, wrapError("error al listar el horario comercial", err)
	}
	defer rows.Close()

	result := make([]domain.WorkingHours, 0, 7)
	for rows.Next() {
		h, err := scanWorkingHours(rows)
		if err != nil {
			return nil, wrapError("error al leer el horario comercial", err)
		}
		result = append(result, *h)
	}

	return result, wrapError("error al listar el horario comercial", rows.Err())
}

func (r *WorkingHoursRepo) GetByID(ctx context.Context, id string) (*domain.WorkingHours, error) {
	h, err := scanWorkingHours(r.db.QueryRow(ctx, `SELECT `+workingHoursColumns+` FROM working_hours WHERE id = $1`, id))
	if err != nil {
		return nil, wrapError("error al obtener el horario comercial", err)
	}
	return h, nil
}

func (r *WorkingHoursRepo) Update(ctx context.Context, id string, dto domain.UpdateWorkingHoursDTO) (*domain.WorkingHours, error) {
	var b setBuilder

	if dto.DayName != nil {
		b.add("day_name", dto.DayName)
	}
	if dto.IsOpen != nil {
		b.add("is_open", *dto.IsOpen)
	}
	if dto.OpenTime != nil {
		b.add("open_time", *dto.OpenTime)
	}
	if dto.CloseTime != nil {
		b.add("close_time", *dto.CloseTime)
	}
	if dto.ClearBreak {
		b.addRaw("break_start_time = NULL")
		b.addRaw("break_end_time = NULL")
	} else {
		if dto.BreakStartTime != nil {
			b.add("break_start_time", *dto.BreakStartTime)
		}
		if dto.BreakEndTime != nil {
			b.add("break_end_time", *dto.BreakEndTime)
		}
	}
	if dto.SlotDurationMinutes != nil {
		b.add("slot_duration_minutes", *dto.SlotDurationMinutes)
	}
	if dto.Active != nil {
		b.add("active", *dto.Active)
	}

	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.query("working_hours", "id", id, workingHoursColumns)

	h, err := scanWorkingHours(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, wrapError("error al actualizar el horario comercial", err)
	}
	return h, nil
}

func (r *WorkingHoursRepo) Upsert(ctx context.Context, h domain.WorkingHours) error {
	query := `
		INSERT INTO working_hours (day_of_week, day_name, is_open, open_time, close_time,
		                           break_start_time, break_end_time, slot_duration_minutes, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (day_of_week) DO UPDATE SET
			day_name = EXCLUDED.day_name,
			is_open = EXCLUDED.is_open,
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			break_start_time = EXCLUDED.break_start_time,
			break_end_time = EXCLUDED.break_end_time,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			active = EXCLUDED.active,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		h.DayOfWeek,
		text(h.DayName),
		h.IsOpen,
		h.OpenTime,
		h.CloseTime,
		h.BreakStartTime,
		h.BreakEndTime,
		h.SlotDurationMinutes,
		h.Active,
	)
	return wrapError("error al guardar el horario comercial", err)
}

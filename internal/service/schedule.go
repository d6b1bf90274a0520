package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
	"barbershop/internal/slots"
)

type ScheduleServiceImpl struct {
	serviceHours repository.ServiceHoursRepository
	workingHours repository.WorkingHoursRepository
	logger       *zap.Logger
}

func NewScheduleService(
	serviceHours repository.ServiceHoursRepository,
	workingHours repository.WorkingHoursRepository,
	logger *zap.Logger,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		serviceHours: serviceHours,
		workingHours: workingHours,
		logger:       logger,
	}
}

func (s *ScheduleServiceImpl) ListServiceHours(ctx context.Context) ([]domain.ServiceHours, error) {
	hours, err := s.serviceHours.List(ctx)
	if err != nil {
		s.logger.Error("error al listar los horarios de servicio", zap.Error(err))
		return nil, fmt.Errorf("error al listar los horarios de servicio: %w", err)
	}
	return hours, nil
}

func (s *ScheduleServiceImpl) UpdateServiceHours(ctx context.Context, id string, dto domain.UpdateServiceHoursDTO) (*domain.ServiceHours, error) {
	current, err := s.serviceHours.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("error al obtener el horario de servicio", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	bounds := dayBounds{
		start:      merged(dto.StartTime, current.StartTime),
		end:        merged(dto.EndTime, current.EndTime),
		breakStart: merged(dto.BreakStartTime, current.BreakStartTime),
		breakEnd:   merged(dto.BreakEndTime, current.BreakEndTime),
	}
	if dto.ClearBreak {
		bounds.breakStart, bounds.breakEnd = nil, nil
	}
	if err := bounds.validate("start_time"); err != nil {
		return nil, err
	}

	if dto.AvailableSlots != nil {
		normalized, err := normalizeSlots(*dto.AvailableSlots)
		if err != nil {
			return nil, err
		}
		dto.AvailableSlots = &normalized
	}

	hours, err := s.serviceHours.Update(ctx, id, dto)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al actualizar el horario de servicio", zap.String("id", id), zap.Error(err))
	}
	return hours, err
}

func (s *ScheduleServiceImpl) ListWorkingHours(ctx context.Context) ([]domain.WorkingHours, error) {
	hours, err := s.workingHours.List(ctx)
	if err != nil {
		s.logger.Error("error al listar el horario de atención", zap.Error(err))
		return nil, fmt.Errorf("error al listar el horario de atención: %w", err)
	}
	return hours, nil
}

func (s *ScheduleServiceImpl) UpdateWorkingHours(ctx context.Context, id string, dto domain.UpdateWorkingHoursDTO) (*domain.WorkingHours, error) {
	current, err := s.workingHours.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("error al obtener el horario de atención", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	bounds := dayBounds{
		start:      merged(dto.OpenTime, current.OpenTime),
		end:        merged(dto.CloseTime, current.CloseTime),
		breakStart: merged(dto.BreakStartTime, current.BreakStartTime),
		breakEnd:   merged(dto.BreakEndTime, current.BreakEndTime),
	}
	if dto.ClearBreak {
		bounds.breakStart, bounds.breakEnd = nil, nil
	}
	if err := bounds.validate("open_time"); err != nil {
		return nil, err
	}

	hours, err := s.workingHours.Update(ctx, id, dto)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Error("error al actualizar el horario de atención", zap.String("id", id), zap.Error(err))
	}
	return hours, err
}

// dayBounds holds the times of a day as they will be stored after an update.
type dayBounds struct {
	start, end           *string
	breakStart, breakEnd *string
}

func merged(update, stored *string) *string {
	if update != nil {
		return update
	}
	return stored
}

// validate requires start < end, a complete break and, when the day has
// both bounds, a break inside them.
func (b dayBounds) validate(field string) error {
	from, to, hasRange, err := clockRange(field, b.start, b.end)
	if err != nil {
		return err
	}

	if (b.breakStart == nil) != (b.breakEnd == nil) {
		return domain.NewValidationError("break_start_time", "el descanso necesita inicio y fin")
	}
	breakFrom, breakTo, hasBreak, err := clockRange("break_start_time", b.breakStart, b.breakEnd)
	if err != nil {
		return err
	}

	if hasRange && hasBreak && (breakFrom < from || breakTo > to) {
		return domain.NewValidationError("break_start_time", "el descanso debe estar dentro del horario")
	}
	return nil
}

// clockRange parses both bounds and rejects start >= end. ok is false when
// either bound is unset.
func clockRange(field string, start, end *string) (from, to int, ok bool, err error) {
	if start == nil || end == nil {
		return 0, 0, false, nil
	}
	from, err = slots.ParseClock(*start)
	if err != nil {
		return 0, 0, false, domain.NewValidationError(field, "hora inválida")
	}
	to, err = slots.ParseClock(*end)
	if err != nil {
		return 0, 0, false, domain.NewValidationError(field, "hora inválida")
	}
	if from >= to {
		return 0, 0, false, domain.NewValidationError(field, "la hora de inicio debe ser anterior a la de fin")
	}
	return from, to, true, nil
}

// normalizeSlots returns the explicit slot list as sorted, unique "HH:MM".
func normalizeSlots(in []string) ([]string, error) {
	seen := make(map[int]struct{}, len(in))
	minutes := make([]int, 0, len(in))
	for _, v := range in {
		m, err := slots.ParseClock(v)
		if err != nil {
			return nil, domain.NewValidationError("available_slots", fmt.Sprintf("hora inválida: %q", v))
		}
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	out := make([]string, len(minutes))
	for i, m := range minutes {
		out[i] = slots.FormatClock(m)
	}
	return out, nil
}

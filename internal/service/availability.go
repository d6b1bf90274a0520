package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/repository"
	"barbershop/internal/slots"
)

type AvailabilityServiceImpl struct {
	hoursRepo       repository.ServiceHoursRepository
	appointmentRepo repository.AppointmentRepository
	logger          *zap.Logger
}

func NewAvailabilityService(
	hoursRepo repository.ServiceHoursRepository,
	appointmentRepo repository.AppointmentRepository,
	logger *zap.Logger,
) *AvailabilityServiceImpl {
	return &AvailabilityServiceImpl{
		hoursRepo:       hoursRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// ForDate computes the slots of date. Any failure yields an empty slot list
// rather than an error, so the booking form simply shows no times.
func (s *AvailabilityServiceImpl) ForDate(ctx context.Context, date string) *domain.DayAvailability {
	result := &domain.DayAvailability{
		Date:      date,
		DayOfWeek: -1,
		Slots:     []domain.Slot{},
	}

	weekday, err := slots.Weekday(date)
	if err != nil {
		s.logger.Warn("fecha inválida al calcular horarios", zap.String("date", date), zap.Error(err))
		return result
	}
	result.DayOfWeek = weekday

	hours, err := s.hoursRepo.GetByDayOfWeek(ctx, weekday)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("error al obtener el horario del día", zap.Int("day_of_week", weekday), zap.Error(err))
		}
		return result
	}

	day, _ := time.Parse(domain.DateLayout, date)
	appointments, err := s.appointmentRepo.ListByDate(ctx, day)
	if err != nil {
		s.logger.Warn("error al obtener las citas del día", zap.String("date", date), zap.Error(err))
		return result
	}

	booked := make([]string, 0, len(appointments))
	for _, a := range appointments {
		booked = append(booked, a.AppointmentTime)
	}

	result.Slots = slots.Compute(hours, booked)
	return result
}

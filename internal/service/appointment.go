package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/export"
	"barbershop/internal/metrics"
	"barbershop/internal/notify"
	"barbershop/internal/repository"
	"barbershop/pkg/validator"
)

// exportLimit caps the rows written to a single workbook.
const exportLimit = 10000

type AppointmentServiceImpl struct {
	repo        repository.AppointmentRepository
	recipients  *recipientResolver
	notifier    Notifier
	publisher   EventPublisher
	metrics     *metrics.Metrics
	defaultLang string
	logger      *zap.Logger
	now         func() time.Time
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	recipients *recipientResolver,
	notifier Notifier,
	publisher EventPublisher,
	m *metrics.Metrics,
	defaultLang string,
	logger *zap.Logger,
) *AppointmentServiceImpl {
	return &AppointmentServiceImpl{
		repo:        repo,
		recipients:  recipients,
		notifier:    notifier,
		publisher:   publisher,
		metrics:     m,
		defaultLang: defaultLang,
		logger:      logger,
		now:         time.Now,
	}
}

// Create stores a booking. The unique (date, time) constraint is the only
// guard against double booking; the loser of a race gets ErrSlotTaken.
func (s *AppointmentServiceImpl) Create(ctx context.Context, dto domain.CreateAppointmentDTO) (*domain.Appointment, error) {
	if _, err := time.Parse(domain.DateLayout, dto.AppointmentDate); err != nil {
		return nil, domain.NewValidationError("appointment_date", "la fecha debe tener el formato AAAA-MM-DD")
	}

	dto.CustomerName = validator.SanitizeString(dto.CustomerName)
	dto.CustomerPhone = validator.FormatPhone(dto.CustomerPhone)
	if dto.Notes != nil {
		dto.Notes = PointerTo(validator.SanitizeString(*dto.Notes))
	}

	appointment, err := s.repo.Create(ctx, dto)
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			s.metrics.AppointmentConflict()
			s.logger.Info("horario ya reservado",
				zap.String("date", dto.AppointmentDate),
				zap.String("time", dto.AppointmentTime))
			return nil, err
		}
		s.logger.Error("error al crear la cita", zap.Error(err))
		return nil, fmt.Errorf("error al crear la cita: %w", err)
	}

	s.metrics.AppointmentCreated()
	s.logger.Info("cita creada",
		zap.String("id", appointment.ID),
		zap.String("date", appointment.AppointmentDate),
		zap.String("time", appointment.AppointmentTime))

	s.notifier.Dispatch(notify.AppointmentCreated(appointment, s.defaultLang, s.recipients.Email(ctx)))
	s.publish(domain.EventAppointmentCreated, appointment, appointment.ID)

	return appointment, nil
}

func (s *AppointmentServiceImpl) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	appointment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("error al obtener la cita", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentServiceImpl) Update(ctx context.Context, id string, dto domain.UpdateAppointmentDTO) (*domain.Appointment, error) {
	if dto.Status != nil && !dto.Status.Valid() {
		return nil, domain.NewValidationError("status", "estado inválido")
	}
	if dto.AppointmentDate != nil {
		if _, err := time.Parse(domain.DateLayout, *dto.AppointmentDate); err != nil {
			return nil, domain.NewValidationError("appointment_date", "la fecha debe tener el formato AAAA-MM-DD")
		}
	}

	appointment, err := s.repo.Update(ctx, id, dto)
	if err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			s.metrics.AppointmentConflict()
			return nil, err
		}
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("error al actualizar la cita", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	s.publish(domain.EventAppointmentUpdated, appointment, id)
	return appointment, nil
}

func (s *AppointmentServiceImpl) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) (*domain.Appointment, error) {
	if !status.Valid() {
		return nil, domain.NewValidationError("status", "estado inválido")
	}

	appointment, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("error al cambiar el estado de la cita", zap.String("id", id), zap.Error(err))
		}
		return nil, err
	}

	s.publish(domain.EventAppointmentUpdated, appointment, id)
	return appointment, nil
}

func (s *AppointmentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("error al eliminar la cita", zap.String("id", id), zap.Error(err))
		}
		return err
	}

	s.publish(domain.EventAppointmentDeleted, nil, id)
	return nil
}

func (s *AppointmentServiceImpl) List(ctx context.Context, filter domain.AppointmentFilter) ([]domain.Appointment, int, error) {
	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error al listar las citas", zap.Error(err))
		return nil, 0, fmt.Errorf("error al listar las citas: %w", err)
	}

	count, err := s.repo.CountByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("error al contar las citas", zap.Error(err))
		return appointments, len(appointments), nil
	}

	return appointments, count, nil
}

func (s *AppointmentServiceImpl) ListByDate(ctx context.Context, date string) ([]domain.Appointment, error) {
	day, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return nil, domain.NewValidationError("date", "la fecha debe tener el formato AAAA-MM-DD")
	}

	appointments, err := s.repo.ListByDate(ctx, day)
	if err != nil {
		s.logger.Error("error al listar las citas del día", zap.String("date", date), zap.Error(err))
		return nil, fmt.Errorf("error al listar las citas del día: %w", err)
	}
	return appointments, nil
}

func (s *AppointmentServiceImpl) Export(ctx context.Context, w io.Writer, filter domain.AppointmentFilter, lang string) error {
	filter.Limit = exportLimit
	filter.Offset = 0

	appointments, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("error al listar las citas para exportar", zap.Error(err))
		return fmt.Errorf("error al exportar las citas: %w", err)
	}

	if lang == "" {
		lang = s.defaultLang
	}
	return export.Appointments(w, appointments, lang, s.defaultLang)
}

func (s *AppointmentServiceImpl) publish(eventType string, appointment *domain.Appointment, id string) {
	s.publisher.Publish(domain.AppointmentEvent{
		Type:        eventType,
		Appointment: appointment,
		ID:          id,
		OccurredAt:  s.now(),
	})
}

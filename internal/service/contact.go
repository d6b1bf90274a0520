package service

import (
	"context"

	"go.uber.org/zap"

	"barbershop/internal/domain"
	"barbershop/internal/notify"
	"barbershop/internal/repository"
	"barbershop/pkg/validator"
)

type ContactServiceImpl struct {
	serviceRepo repository.ServiceRepository
	recipients  *recipientResolver
	notifier    Notifier
	defaultLang string
	logger      *zap.Logger
}

func NewContactService(
	serviceRepo repository.ServiceRepository,
	recipients *recipientResolver,
	notifier Notifier,
	defaultLang string,
	logger *zap.Logger,
) *ContactServiceImpl {
	return &ContactServiceImpl{
		serviceRepo: serviceRepo,
		recipients:  recipients,
		notifier:    notifier,
		defaultLang: defaultLang,
		logger:      logger,
	}
}

// Send forwards a contact form submission to the owner. An unknown service
// id only drops the service line from the message.
func (s *ContactServiceImpl) Send(ctx context.Context, dto domain.ContactMessageDTO) error {
	dto.Name = validator.SanitizeString(dto.Name)
	dto.Phone = validator.FormatPhone(dto.Phone)
	dto.Message = validator.SanitizeString(dto.Message)

	var serviceName string
	if dto.ServiceID != nil && *dto.ServiceID != "" {
		svc, err := s.serviceRepo.GetByID(ctx, *dto.ServiceID)
		if err != nil {
			s.logger.Warn("servicio del formulario de contacto no encontrado",
				zap.String("service_id", *dto.ServiceID), zap.Error(err))
		} else {
			serviceName = svc.Name.Get(s.defaultLang, "es")
		}
	}

	s.notifier.Dispatch(notify.ContactRequest(dto, serviceName, s.recipients.Email(ctx)))
	s.logger.Info("mensaje de contacto recibido", zap.String("name", dto.Name))

	return nil
}

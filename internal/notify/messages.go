package notify

import (
	"fmt"
	"strings"

	"barbershop/internal/domain"
)

// AppointmentCreated renders the owner notification for a new booking.
func AppointmentCreated(a *domain.Appointment, lang, to string) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Nueva cita reservada\n\n")
	fmt.Fprintf(&b, "Cliente: %s\n", a.CustomerName)
	fmt.Fprintf(&b, "Teléfono: %s\n", a.CustomerPhone)
	if a.CustomerEmail != nil && *a.CustomerEmail != "" {
		fmt.Fprintf(&b, "Email: %s\n", *a.CustomerEmail)
	}
	if name := a.ServiceName.Get(lang, "es"); name != "" {
		fmt.Fprintf(&b, "Servicio: %s\n", name)
	}
	fmt.Fprintf(&b, "Fecha: %s\n", a.AppointmentDate)
	fmt.Fprintf(&b, "Hora: %s\n", a.AppointmentTime)
	if a.Notes != nil && *a.Notes != "" {
		fmt.Fprintf(&b, "Notas: %s\n", *a.Notes)
	}

	return Message{
		To:      to,
		Subject: fmt.Sprintf("Nueva cita: %s %s %s", a.CustomerName, a.AppointmentDate, a.AppointmentTime),
		Body:    b.String(),
	}
}

// ContactRequest renders a contact form submission. serviceName may be empty.
func ContactRequest(dto domain.ContactMessageDTO, serviceName, to string) Message {
	var b strings.Builder

	fmt.Fprintf(&b, "Nuevo mensaje de contacto\n\n")
	fmt.Fprintf(&b, "Nombre: %s\n", dto.Name)
	fmt.Fprintf(&b, "Teléfono: %s\n", dto.Phone)
	if dto.Email != nil && *dto.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", *dto.Email)
	}
	if serviceName != "" {
		fmt.Fprintf(&b, "Servicio: %s\n", serviceName)
	}
	fmt.Fprintf(&b, "\n%s\n", dto.Message)

	return Message{
		To:      to,
		Subject: "Contacto: " + dto.Name,
		Body:    b.String(),
	}
}

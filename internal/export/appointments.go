package export

import (
	"fmt"
	"io"

	"barbershop/internal/domain"
)

const (
	ContentType      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	AppointmentSheet = "Citas"
)

var appointmentColumns = []column{
	{title: "ID", width: 38},
	{title: "Fecha", width: 12},
	{title: "Hora", width: 8},
	{title: "Cliente", width: 24},
	{title: "Teléfono", width: 18},
	{title: "Email", width: 28},
	{title: "Servicio", width: 24},
	{title: "Estado", width: 12},
	{title: "Notas", width: 40},
	{title: "Creada", width: 17},
}

// Appointments writes the appointments as an .xlsx workbook to w. Service
// names are rendered in lang, falling back to fallbackLang.
func Appointments(w io.Writer, appointments []domain.Appointment, lang, fallbackLang string) error {
	t, err := newTable(AppointmentSheet, appointmentColumns)
	if err != nil {
		return err
	}
	defer t.close()

	for _, a := range appointments {
		row := []any{
			a.ID,
			a.AppointmentDate,
			a.AppointmentTime,
			a.CustomerName,
			a.CustomerPhone,
			deref(a.CustomerEmail),
			a.ServiceName.Get(lang, fallbackLang),
			string(a.Status),
			deref(a.Notes),
			a.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := t.append(row); err != nil {
			return fmt.Errorf("error al escribir la cita %s: %w", a.ID, err)
		}
	}

	if err := t.writeTo(w); err != nil {
		return fmt.Errorf("error al generar el archivo: %w", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

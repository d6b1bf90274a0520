package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"barbershop/internal/domain"
)

func TestAppointmentsWorkbook(t *testing.T) {
	notes := "sin máquina"
	appointments := []domain.Appointment{
		{
			ID:              "a1",
			CustomerName:    "Ana",
			CustomerPhone:   "+595981000000",
			ServiceName:     domain.LocalizedText{"es": "Corte", "pt": "Corte de cabelo"},
			AppointmentDate: "2024-06-03",
			AppointmentTime: "09:00",
			Notes:           &notes,
			Status:          domain.AppointmentStatusPending,
			CreatedAt:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:              "a2",
			CustomerName:    "Joao",
			CustomerPhone:   "+5511999999999",
			ServiceName:     domain.LocalizedText{"es": "Barba"},
			AppointmentDate: "2024-06-03",
			AppointmentTime: "09:30",
			Status:          domain.AppointmentStatusConfirmed,
			CreatedAt:       time.Date(2024, 6, 2, 8, 30, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Appointments(&buf, appointments, "pt", "es"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(AppointmentSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"ID", "Fecha", "Hora", "Cliente", "Teléfono", "Email", "Servicio", "Estado", "Notas", "Creada",
	}, rows[0])
	assert.Equal(t, "Corte de cabelo", rows[1][6])
	assert.Equal(t, "sin máquina", rows[1][8])
	assert.Equal(t, "Barba", rows[2][6])
	assert.Equal(t, "confirmed", rows[2][7])
	assert.Equal(t, "2024-06-02 08:30", rows[2][9])

	width, err := f.GetColWidth(AppointmentSheet, "I")
	require.NoError(t, err)
	assert.Equal(t, 40.0, width)
}

func TestAppointmentsWorkbookEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Appointments(&buf, nil, "es", "es"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(AppointmentSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

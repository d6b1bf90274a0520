package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barbershop/internal/domain"
)

// 2024-06-03 is a Monday.
const monday = "2024-06-03"

func newAvailabilityFixture(hours *domain.ServiceHours) (*AvailabilityServiceImpl, *fakeServiceHoursRepo, *fakeAppointmentRepo) {
	hoursRepo := &fakeServiceHoursRepo{byDay: map[int]*domain.ServiceHours{}}
	if hours != nil {
		hoursRepo.byDay[hours.DayOfWeek] = hours
	}
	appointments := newFakeAppointmentRepo()
	return NewAvailabilityService(hoursRepo, appointments, zap.NewNop()), hoursRepo, appointments
}

func mondayHours() *domain.ServiceHours {
	return &domain.ServiceHours{
		ID:                  "h1",
		DayOfWeek:           1,
		IsAvailable:         true,
		StartTime:           PointerTo("09:00"),
		EndTime:             PointerTo("12:00"),
		SlotDurationMinutes: 30,
	}
}

func slotTimes(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Time
	}
	return out
}

func TestAvailabilityForDate(t *testing.T) {
	svc, _, appointments := newAvailabilityFixture(mondayHours())
	ctx := context.Background()

	_, err := appointments.Create(ctx, domain.CreateAppointmentDTO{AppointmentDate: monday, AppointmentTime: "10:00"})
	require.NoError(t, err)

	day := svc.ForDate(ctx, monday)

	assert.Equal(t, 1, day.DayOfWeek)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slotTimes(day.Slots))
	for _, s := range day.Slots {
		assert.Equal(t, s.Time != "10:00", s.Available, s.Time)
	}
}

func TestAvailabilityWithBreak(t *testing.T) {
	hours := mondayHours()
	hours.BreakStartTime = PointerTo("10:00")
	hours.BreakEndTime = PointerTo("10:30")
	svc, _, _ := newAvailabilityFixture(hours)

	day := svc.ForDate(context.Background(), monday)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, slotTimes(day.Slots))
}

func TestAvailabilityExplicitSlots(t *testing.T) {
	hours := mondayHours()
	hours.AvailableSlots = []string{"09:15", "14:00"}
	svc, _, _ := newAvailabilityFixture(hours)

	day := svc.ForDate(context.Background(), monday)
	assert.Equal(t, []string{"09:15", "14:00"}, slotTimes(day.Slots))
}

func TestAvailabilityEmptyCases(t *testing.T) {
	closed := mondayHours()
	closed.IsAvailable = false

	inverted := mondayHours()
	inverted.EndTime = PointerTo("08:00")

	tests := []struct {
		name  string
		hours *domain.ServiceHours
		date  string
		err   error
	}{
		{name: "malformed date", hours: mondayHours(), date: "2024-13-01"},
		{name: "not a date", hours: mondayHours(), date: "mañana"},
		{name: "day without hours", hours: nil, date: monday},
		{name: "unavailable day", hours: closed, date: monday},
		{name: "end before start", hours: inverted, date: monday},
		{name: "lookup failure", hours: mondayHours(), date: monday, err: errors.New("db down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, hoursRepo, _ := newAvailabilityFixture(tt.hours)
			hoursRepo.err = tt.err

			day := svc.ForDate(context.Background(), tt.date)
			require.NotNil(t, day)
			assert.NotNil(t, day.Slots)
			assert.Empty(t, day.Slots)
		})
	}
}

func TestAvailabilityBookingLookupFailure(t *testing.T) {
	svc, _, appointments := newAvailabilityFixture(mondayHours())
	appointments.listErr = errors.New("db down")

	day := svc.ForDate(context.Background(), monday)
	assert.Empty(t, day.Slots)
}

func TestAvailabilityIsIdempotent(t *testing.T) {
	svc, _, appointments := newAvailabilityFixture(mondayHours())
	ctx := context.Background()

	_, err := appointments.Create(ctx, domain.CreateAppointmentDTO{AppointmentDate: monday, AppointmentTime: "11:00"})
	require.NoError(t, err)

	assert.Equal(t, svc.ForDate(ctx, monday), svc.ForDate(ctx, monday))
}

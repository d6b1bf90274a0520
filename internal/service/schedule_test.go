package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"barbershop/internal/domain"
)

func TestNormalizeSlots(t *testing.T) {
	got, err := normalizeSlots([]string{"14:00", "09:15", "14:00", "09:15:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:15", "14:00"}, got)

	_, err = normalizeSlots([]string{"25:00"})
	assert.True(t, domain.IsValidationError(err))
}

func TestDayBoundsValidate(t *testing.T) {
	tests := []struct {
		name    string
		bounds  dayBounds
		wantErr bool
	}{
		{name: "empty day", bounds: dayBounds{}},
		{name: "only end", bounds: dayBounds{end: PointerTo("10:00")}},
		{name: "valid range", bounds: dayBounds{start: PointerTo("09:00"), end: PointerTo("10:00")}},
		{name: "stored seconds", bounds: dayBounds{start: PointerTo("09:00:00"), end: PointerTo("18:00:00")}},
		{name: "equal bounds", bounds: dayBounds{start: PointerTo("10:00"), end: PointerTo("10:00")}, wantErr: true},
		{name: "inverted range", bounds: dayBounds{start: PointerTo("18:00"), end: PointerTo("09:00")}, wantErr: true},
		{
			name: "break inside range",
			bounds: dayBounds{
				start: PointerTo("09:00"), end: PointerTo("18:00"),
				breakStart: PointerTo("12:00"), breakEnd: PointerTo("13:00"),
			},
		},
		{name: "half a break", bounds: dayBounds{breakStart: PointerTo("12:00")}, wantErr: true},
		{name: "inverted break", bounds: dayBounds{breakStart: PointerTo("13:00"), breakEnd: PointerTo("12:00")}, wantErr: true},
		{
			name: "break outside range",
			bounds: dayBounds{
				start: PointerTo("09:00"), end: PointerTo("12:00"),
				breakStart: PointerTo("12:30"), breakEnd: PointerTo("13:00"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bounds.validate("start_time")
			if tt.wantErr {
				assert.True(t, domain.IsValidationError(err), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateServiceHoursNormalizesSlots(t *testing.T) {
	hours := &fakeServiceHoursRepo{byDay: map[int]*domain.ServiceHours{1: {ID: "h1", DayOfWeek: 1}}}
	svc := NewScheduleService(hours, nil, zap.NewNop())

	slots := []string{"11:00", "09:30"}
	updated, err := svc.UpdateServiceHours(context.Background(), "h1", domain.UpdateServiceHoursDTO{AvailableSlots: &slots})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:30", "11:00"}, updated.AvailableSlots)

	_, err = svc.UpdateServiceHours(context.Background(), "h1", domain.UpdateServiceHoursDTO{
		StartTime: PointerTo("18:00"),
		EndTime:   PointerTo("09:00"),
	})
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.UpdateServiceHours(context.Background(), "missing", domain.UpdateServiceHoursDTO{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateServiceHoursSingleBoundAgainstStoredRow(t *testing.T) {
	stored := &domain.ServiceHours{
		ID:             "h1",
		DayOfWeek:      1,
		IsAvailable:    true,
		StartTime:      PointerTo("09:00"),
		EndTime:        PointerTo("18:00"),
		BreakStartTime: PointerTo("12:00"),
		BreakEndTime:   PointerTo("13:00"),
	}
	hours := &fakeServiceHoursRepo{byDay: map[int]*domain.ServiceHours{1: stored}}
	svc := NewScheduleService(hours, nil, zap.NewNop())
	ctx := context.Background()

	rejected := []domain.UpdateServiceHoursDTO{
		{EndTime: PointerTo("08:00")},
		{StartTime: PointerTo("19:00")},
		{EndTime: PointerTo("12:30")},
		{BreakEndTime: PointerTo("11:00")},
		{BreakStartTime: PointerTo("08:00")},
	}
	for _, dto := range rejected {
		_, err := svc.UpdateServiceHours(ctx, "h1", dto)
		assert.True(t, domain.IsValidationError(err), "dto %+v: %v", dto, err)
	}
	assert.Equal(t, "09:00", *stored.StartTime)
	assert.Equal(t, "18:00", *stored.EndTime)

	updated, err := svc.UpdateServiceHours(ctx, "h1", domain.UpdateServiceHoursDTO{EndTime: PointerTo("12:30"), ClearBreak: true})
	require.NoError(t, err)
	assert.Equal(t, "12:30", *updated.EndTime)
	assert.Nil(t, updated.BreakStartTime)

	// The stored row keeps producing slots after a single-field update.
	availability := NewAvailabilityService(hours, newFakeAppointmentRepo(), zap.NewNop())
	day := availability.ForDate(ctx, monday)
	assert.Len(t, day.Slots, 7)
}

func TestUpdateWorkingHoursSingleBoundAgainstStoredRow(t *testing.T) {
	working := &fakeWorkingHoursRepo{rows: map[string]*domain.WorkingHours{
		"w1": {ID: "w1", DayOfWeek: 2, IsOpen: true, OpenTime: PointerTo("08:00"), CloseTime: PointerTo("20:00")},
	}}
	svc := NewScheduleService(nil, working, zap.NewNop())
	ctx := context.Background()

	_, err := svc.UpdateWorkingHours(ctx, "w1", domain.UpdateWorkingHoursDTO{CloseTime: PointerTo("07:00")})
	assert.True(t, domain.IsValidationError(err))

	_, err = svc.UpdateWorkingHours(ctx, "w1", domain.UpdateWorkingHoursDTO{OpenTime: PointerTo("21:00")})
	assert.True(t, domain.IsValidationError(err))

	updated, err := svc.UpdateWorkingHours(ctx, "w1", domain.UpdateWorkingHoursDTO{CloseTime: PointerTo("14:00")})
	require.NoError(t, err)
	assert.Equal(t, "14:00", *updated.CloseTime)

	_, err = svc.UpdateWorkingHours(ctx, "missing", domain.UpdateWorkingHoursDTO{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

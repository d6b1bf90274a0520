// Package slots derives bookable appointment times from per-weekday
// service hours and the appointments already booked on a date.
package slots

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"barbershop/internal/domain"
)

const DefaultSlotDuration = 30

// ParseClock converts "HH:MM" or "HH:MM:SS" to minutes since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NormalizeClock truncates a stored time such as "10:30:00" to "10:30".
// Unparsable input is returned unchanged.
func NormalizeClock(s string) string {
	m, err := ParseClock(s)
	if err != nil {
		return s
	}
	return FormatClock(m)
}

// Weekday returns 0 (Sunday) through 6 (Saturday) for a YYYY-MM-DD date.
func Weekday(date string) (int, error) {
	t, err := time.Parse(domain.DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("parse date: %w", err)
	}
	return int(t.Weekday()), nil
}

// Candidates lists the start times offered by h, before bookings are applied.
//
// A non-empty AvailableSlots list wins over the start/end/duration fields.
// Generated times satisfy start <= t < end and skip breakStart <= t < breakEnd.
func Candidates(h *domain.ServiceHours) []string {
	if h == nil || !h.IsAvailable {
		return []string{}
	}

	if len(h.AvailableSlots) > 0 {
		out := make([]string, len(h.AvailableSlots))
		copy(out, h.AvailableSlots)
		return out
	}

	if h.StartTime == nil || h.EndTime == nil {
		return []string{}
	}
	start, err := ParseClock(*h.StartTime)
	if err != nil {
		return []string{}
	}
	end, err := ParseClock(*h.EndTime)
	if err != nil || start >= end {
		return []string{}
	}

	step := h.SlotDurationMinutes
	if step <= 0 {
		step = DefaultSlotDuration
	}

	breakStart, breakEnd, hasBreak := breakWindow(h)

	out := make([]string, 0, (end-start)/step+1)
	for t := start; t < end; t += step {
		if hasBreak && t >= breakStart && t < breakEnd {
			continue
		}
		out = append(out, FormatClock(t))
	}
	return out
}

func breakWindow(h *domain.ServiceHours) (int, int, bool) {
	if h.BreakStartTime == nil || h.BreakEndTime == nil {
		return 0, 0, false
	}
	bs, err := ParseClock(*h.BreakStartTime)
	if err != nil {
		return 0, 0, false
	}
	be, err := ParseClock(*h.BreakEndTime)
	if err != nil {
		return 0, 0, false
	}
	return bs, be, true
}

// Annotate marks each candidate unavailable when a booked time matches it.
// Booked times are compared after truncation to "HH:MM".
func Annotate(candidates []string, booked []string) []domain.Slot {
	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[NormalizeClock(b)] = struct{}{}
	}

	out := make([]domain.Slot, 0, len(candidates))
	for _, c := range candidates {
		_, isTaken := taken[NormalizeClock(c)]
		out = append(out, domain.Slot{Time: c, Available: !isTaken})
	}
	return out
}

// Compute is Candidates followed by Annotate.
func Compute(h *domain.ServiceHours, booked []string) []domain.Slot {
	return Annotate(Candidates(h), booked)
}

// Available filters slots down to the ones that can still be booked.
func Available(slots []domain.Slot) []domain.Slot {
	out := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}

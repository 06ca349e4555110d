package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock parses a wall-clock label in "HH:MM" form. Hours are 0-23,
// minutes 0-59.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid clock value %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock value %q out of range", s)
	}
	return hour, minute, nil
}

// HourLabel formats an hour as a "HH:00" row label.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// HourSlots returns the ordered row labels for an hour range at one-hour
// steps, inclusive of both ends: HourSlots(8, 18) yields "08:00" .. "18:00".
func HourSlots(startHour, endHour int) []string {
	if endHour < startHour {
		return nil
	}
	slots := make([]string, 0, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		slots = append(slots, HourLabel(h))
	}
	return slots
}

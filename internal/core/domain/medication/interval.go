package medication

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const minutesPerHour = 60

// Interval is the delay between creating a medication and its reminder.
// Only the flattened number of minutes is kept.
type Interval struct {
	minutes uint32
}

func NewInterval(hours uint32, minutes uint32) Interval {
	return Interval{minutes: hours*minutesPerHour + minutes}
}

func IntervalFromMinutes(minutes uint32) Interval {
	return Interval{minutes: minutes}
}

// ParseInterval parses "HH:MM". Parts after the second colon are ignored and
// no range checks are applied, so "99:99" is 99*60+99 minutes.
func ParseInterval(spec string) (i Interval, err error) {
	if spec == "" {
		return i, ErrFieldsRequired
	}
	parts := strings.Split(spec, ":")
	if len(parts) < 2 {
		return i, ErrInvalidInterval
	}
	hours, err := parseIntervalPart(parts[0])
	if err != nil {
		return i, err
	}
	minutes, err := parseIntervalPart(parts[1])
	if err != nil {
		return i, err
	}
	if hours > (math.MaxUint32-minutes)/minutesPerHour {
		return i, fmt.Errorf("%w: %q is too long", ErrInvalidInterval, spec)
	}
	return NewInterval(hours, minutes), nil
}

func parseIntervalPart(value string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, value)
	}
	return uint32(n), nil
}

func (i Interval) Minutes() uint32 {
	return i.minutes
}

func (i Interval) Hours() uint32 {
	return i.minutes / minutesPerHour
}

func (i Interval) RemainderMinutes() uint32 {
	return i.minutes % minutesPerHour
}

func (i Interval) String() string {
	return fmt.Sprintf("%02d:%02d", i.Hours(), i.RemainderMinutes())
}

// Describe renders the interval the way the medication list shows it.
func (i Interval) Describe() string {
	if i.Hours() > 0 {
		return fmt.Sprintf("a cada %d horas e %d minutos", i.Hours(), i.RemainderMinutes())
	}
	return fmt.Sprintf("a cada %d minutos", i.RemainderMinutes())
}

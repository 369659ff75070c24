package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rentfolio/backend/internal/domain/shared"
)

// StorageLayout is the canonical string form for all persisted dates.
const StorageLayout = "2006-01-02"

// flexibleLayouts are tried in order for inputs that are not already in the
// canonical YYYY-MM-DD form.
var flexibleLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// CalendarDate is a value object representing a timezone-stable calendar day.
// It is anchored to UTC noon so that converting the underlying instant into
// any timezone for display can never flip it across a day boundary, which
// anchoring at midnight would risk.
// The zero value means "no date".
type CalendarDate struct {
	t time.Time
}

// NewCalendarDate creates a CalendarDate for the given calendar components.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{t: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

// CalendarDateOf extracts the local calendar day from an arbitrary instant
// and re-anchors it to UTC noon.
func CalendarDateOf(t time.Time) CalendarDate {
	if t.IsZero() {
		return CalendarDate{}
	}
	y, m, d := t.Date()
	return NewCalendarDate(y, m, d)
}

// ParseCalendarDate normalizes a date string into a CalendarDate.
// An empty string yields the zero CalendarDate. A string in the canonical
// YYYY-MM-DD form is parsed as calendar components, never as an instant, so
// the caller's timezone cannot shift the day. Any other input is tried
// against a list of common layouts; its calendar day is then re-anchored to
// UTC noon. Unparseable input is rejected with an INVALID_DATE error.
func ParseCalendarDate(s string) (CalendarDate, error) {
	if s == "" {
		return CalendarDate{}, nil
	}
	if len(s) == len(StorageLayout) && s[4] == '-' && s[7] == '-' {
		t, err := time.Parse(StorageLayout, s)
		if err != nil {
			return CalendarDate{}, shared.NewDomainError("INVALID_DATE", fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", s))
		}
		return NewCalendarDate(t.Year(), t.Month(), t.Day()), nil
	}
	for _, layout := range flexibleLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return CalendarDateOf(t), nil
		}
	}
	return CalendarDate{}, shared.NewDomainError("INVALID_DATE", fmt.Sprintf("unrecognized date %q", s))
}

// MustParseCalendarDate is ParseCalendarDate that panics on error.
// Intended for tests and static initialization only.
func MustParseCalendarDate(s string) CalendarDate {
	d, err := ParseCalendarDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Today returns the current calendar day in the local timezone.
func Today() CalendarDate {
	return CalendarDateOf(time.Now())
}

// IsZero reports whether the date is unset.
func (d CalendarDate) IsZero() bool {
	return d.t.IsZero()
}

// Time returns the underlying UTC-noon-anchored instant.
func (d CalendarDate) Time() time.Time {
	return d.t
}

// Year returns the calendar year.
func (d CalendarDate) Year() int {
	return d.t.UTC().Year()
}

// Month returns the calendar month.
func (d CalendarDate) Month() time.Month {
	return d.t.UTC().Month()
}

// Day returns the day of the month.
func (d CalendarDate) Day() int {
	return d.t.UTC().Day()
}

// String formats the date in the canonical YYYY-MM-DD storage form, built
// from the UTC calendar fields. The zero date formats as "".
func (d CalendarDate) String() string {
	if d.IsZero() {
		return ""
	}
	u := d.t.UTC()
	return fmt.Sprintf("%04d-%02d-%02d", u.Year(), int(u.Month()), u.Day())
}

// Before reports whether d falls on an earlier calendar day than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.t.Before(other.t)
}

// After reports whether d falls on a later calendar day than other.
func (d CalendarDate) After(other CalendarDate) bool {
	return d.t.After(other.t)
}

// Equal reports whether both values represent the same calendar day.
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.t.Equal(other.t)
}

// AddMonths adds n calendar months, clamping to the last day of the target
// month when the source day does not exist there (Jan 31 + 1 month yields
// Feb 28, or Feb 29 in a leap year). This differs from time.AddDate, which
// normalizes the overflow into the following month.
func (d CalendarDate) AddMonths(n int) CalendarDate {
	if d.IsZero() {
		return d
	}
	u := d.t.UTC()
	year, month, day := u.Date()
	total := int(month) - 1 + n
	year += total / 12
	rem := total % 12
	if rem < 0 {
		rem += 12
		year--
	}
	target := time.Month(rem + 1)
	if last := daysInMonth(year, target); day > last {
		day = last
	}
	return NewCalendarDate(year, target, day)
}

// WholeMonthsSince returns the number of whole calendar months from other to
// d. A partial month does not count: 2023-01-15 to 2023-03-14 is 1 month.
func (d CalendarDate) WholeMonthsSince(other CalendarDate) int {
	months := (d.Year()-other.Year())*12 + int(d.Month()) - int(other.Month())
	if d.Day() < other.Day() {
		months--
	}
	return months
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// MarshalJSON encodes the date as a YYYY-MM-DD string, or null when unset.
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string or null.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer. Dates are always persisted in the
// canonical YYYY-MM-DD string form; the zero date persists as NULL.
func (d CalendarDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan implements sql.Scanner, accepting DATE columns read back as
// time.Time as well as raw YYYY-MM-DD strings.
func (d *CalendarDate) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = CalendarDate{}
		return nil
	case time.Time:
		// DATE columns come back at UTC midnight; take the UTC day.
		u := v.UTC()
		*d = NewCalendarDate(u.Year(), u.Month(), u.Day())
		return nil
	case string:
		parsed, err := ParseCalendarDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseCalendarDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CalendarDate", src)
	}
}

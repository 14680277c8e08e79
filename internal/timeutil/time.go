package timeutil

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Layout is the fixed-width text format timestamps are stored in.
const Layout = "2006-01-02 15:04:05"

// ParseTime parses a stored timestamp ("2020-05-14 21:16:39") in local time.
func ParseTime(text string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, text, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", text, err)
	}
	return t, nil
}

// FormatTime renders t in the stored format using local time.
func FormatTime(t time.Time) string {
	return t.In(time.Local).Format(Layout)
}

// Timestamp is a text timestamp column parsed lazily on read.
// A value that does not parse is kept as Raw with Valid false.
type Timestamp struct {
	Time  time.Time
	Valid bool
	Raw   string
}

// NewTimestamp returns a valid Timestamp for t, truncated to the stored precision.
func NewTimestamp(t time.Time) Timestamp {
	t = t.In(time.Local).Truncate(time.Second)
	return Timestamp{Time: t, Valid: true, Raw: t.Format(Layout)}
}

// Malformed reports whether the column held text that could not be parsed.
func (t Timestamp) Malformed() bool {
	return !t.Valid && t.Raw != ""
}

// Ptr returns nil when the timestamp is absent.
func (t Timestamp) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// Scan implements sql.Scanner. It never fails on bad text.
func (t *Timestamp) Scan(src interface{}) error {
	*t = Timestamp{}
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		t.Raw = v
	case []byte:
		t.Raw = string(v)
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	default:
		return fmt.Errorf("timestamp: unsupported column type %T", src)
	}

	parsed, err := ParseTime(t.Raw)
	if err != nil {
		return nil
	}
	t.Time = parsed
	t.Valid = true
	return nil
}

// Value implements driver.Valuer. Malformed text is written back as it was read.
func (t Timestamp) Value() (driver.Value, error) {
	if t.Malformed() {
		return t.Raw, nil
	}
	if !t.Valid {
		return nil, nil
	}
	return FormatTime(t.Time), nil
}

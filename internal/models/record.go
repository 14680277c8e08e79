package models

import (
	"database/sql/driver"
	"fmt"

	"jobSearchTracker/internal/timeutil"
)

// Record holds the columns every table shares. ID is nil until the entity
// has been persisted; the timestamps are assigned by the store.
type Record struct {
	ID          *int64             `db:"id" json:"id,omitempty"`
	CreatedDate timeutil.Timestamp `db:"created_date" json:"-"`
	LastUpdated timeutil.Timestamp `db:"last_updated" json:"-"`
	Hide        Flag               `db:"hide" json:"hide"`
}

// Base gives repositories access to the shared columns.
func (r *Record) Base() *Record {
	return r
}

// Saved reports whether the entity has been assigned an id.
func (r *Record) Saved() bool {
	return r.ID != nil
}

// Flag is a boolean stored as an integer: 0 is false, anything else true.
type Flag bool

// Scan implements sql.Scanner.
func (f *Flag) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*f = v != 0
	case float64:
		*f = v != 0
	case bool:
		*f = Flag(v)
	case nil:
		*f = false
	default:
		return fmt.Errorf("flag: cannot convert %T to a number", src)
	}
	return nil
}

// Value implements driver.Valuer.
func (f Flag) Value() (driver.Value, error) {
	if f {
		return int64(1), nil
	}
	return int64(0), nil
}

// IntPtr is a convenience for optional foreign keys.
func IntPtr(v int64) *int64 {
	return &v
}

// StringPtr is a convenience for optional text columns.
func StringPtr(v string) *string {
	return &v
}

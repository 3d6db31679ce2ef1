package models

import (
	"database/sql/driver"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// DateLayout is the wire and storage layout of a calendar date.
const DateLayout = "2006-01-02"

// Deadline is an optional calendar date. Stored values that cannot be read
// back as a date are flagged Malformed instead of failing the scan, so a bad
// row never breaks a project listing.
type Deadline struct {
	Date      time.Time
	Valid     bool
	Malformed bool
}

// NewDeadline keeps the calendar date of t as written, dropping time of day
// and location.
func NewDeadline(t time.Time) Deadline {
	y, m, d := t.Date()
	return Deadline{Date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDeadline accepts a bare date or an RFC 3339 timestamp.
func ParseDeadline(s string) (Deadline, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewDeadline(t), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Deadline{}, err
	}
	return NewDeadline(t), nil
}

// Usable reports whether the deadline carries a readable date.
func (d Deadline) Usable() bool {
	return d.Valid && !d.Malformed
}

func (d Deadline) String() string {
	if !d.Usable() {
		return ""
	}
	return d.Date.Format(DateLayout)
}

func (Deadline) GormDataType() string {
	return "date"
}

func (d Deadline) Value() (driver.Value, error) {
	if !d.Valid || d.Malformed {
		return nil, nil
	}
	return datatypes.Date(d.Date).Value()
}

func (d *Deadline) Scan(value interface{}) error {
	*d = Deadline{}
	if value == nil {
		return nil
	}

	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		var date datatypes.Date
		if err := date.Scan(value); err != nil {
			d.Valid, d.Malformed = true, true
			return nil
		}
		*d = NewDeadline(time.Time(date))
		return nil
	}

	if len(raw) >= len(DateLayout) {
		if t, err := time.Parse(DateLayout, raw[:len(DateLayout)]); err == nil {
			*d = NewDeadline(t)
			return nil
		}
	}
	d.Valid, d.Malformed = true, true
	return nil
}

// Package localtime implements the wire format for timestamps:
// local date-time with second precision and no zone offset
// ("2006-01-02T15:04:05"). Clients and server agree on a shared zone.
package localtime

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02T15:04:05"

type Time struct {
	time.Time
}

func Of(t time.Time) Time {
	return Time{Time: t}
}

func Parse(s string) (Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return Time{}, fmt.Errorf("invalid date-time %q: expected %s", s, Layout)
	}
	return Time{Time: t}, nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(Layout) + `"`), nil
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Time) Value() (driver.Value, error) {
	return t.Time, nil
}

func (t *Time) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		t.Time = v
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot scan %T into localtime.Time", src)
	}
}

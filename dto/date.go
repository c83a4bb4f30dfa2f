package dto

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DateLayout is the calendar-date form accepted next to RFC 3339 timestamps.
const DateLayout = "2006-01-02"

// Date is a request timestamp that also accepts a bare YYYY-MM-DD date, read
// as midnight UTC. Unparseable values fail as *json.UnmarshalTypeError so the
// decoder reports the offending field.
type Date struct {
	time.Time
}

// NewDate wraps t.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return &json.UnmarshalTypeError{Value: "non-string", Type: reflect.TypeOf(d).Elem()}
	}
	for _, layout := range []string{time.RFC3339Nano, DateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t
			return nil
		}
	}
	return &json.UnmarshalTypeError{Value: "string " + raw, Type: reflect.TypeOf(d).Elem()}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return d.Time.MarshalJSON()
}

// requiredDate is validation.Required for Date fields, which ozzo cannot see
// through.
var requiredDate = validation.By(func(value interface{}) error {
	if d, ok := value.(Date); !ok || d.IsZero() {
		return validation.ErrRequired
	}
	return nil
})

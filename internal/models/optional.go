package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// OptionalTime is a request field that distinguishes an absent JSON key from
// an explicit null. UnmarshalJSON only runs when the key is present, so Set
// is false for absent keys; null (or an empty string) clears the value.
type OptionalTime struct {
	Set  bool
	Time *time.Time
}

func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Time = nil
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		o.Time = nil
		return nil
	}

	t, err := ParseDate(raw)
	if err != nil {
		return err
	}
	o.Time = &t
	return nil
}

// ParseDate accepts the date formats clients send for dueDate: RFC3339
// (trailing Z included), a bare datetime, or a bare date.
func ParseDate(raw string) (time.Time, error) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", raw)
}

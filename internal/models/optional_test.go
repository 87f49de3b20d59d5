package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dueDatePayload struct {
	DueDate OptionalTime `json:"dueDate"`
}

func TestOptionalTimeAbsentKey(t *testing.T) {
	var p dueDatePayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.False(t, p.DueDate.Set)
	assert.Nil(t, p.DueDate.Time)
}

func TestOptionalTimeNullClears(t *testing.T) {
	var p dueDatePayload
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":null}`), &p))
	assert.True(t, p.DueDate.Set)
	assert.Nil(t, p.DueDate.Time)
}

func TestOptionalTimeEmptyStringClears(t *testing.T) {
	var p dueDatePayload
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":""}`), &p))
	assert.True(t, p.DueDate.Set)
	assert.Nil(t, p.DueDate.Time)
}

func TestOptionalTimeValue(t *testing.T) {
	var p dueDatePayload
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2026-01-15"}`), &p))
	assert.True(t, p.DueDate.Set)
	require.NotNil(t, p.DueDate.Time)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), *p.DueDate.Time)
}

func TestOptionalTimeBadValue(t *testing.T) {
	var p dueDatePayload
	assert.Error(t, json.Unmarshal([]byte(`{"dueDate":"tomorrow"}`), &p))
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2026-01-15T10:30:00Z", time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2026-01-15T10:30:00", time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)},
		{"2026-01-15", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.True(t, got.Equal(tc.want), tc.raw)
	}

	_, err := ParseDate("15/01/2026")
	assert.Error(t, err)
}

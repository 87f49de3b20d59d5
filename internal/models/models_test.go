package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLifeAreas(t *testing.T) {
	now := time.Now().UTC()
	areas := DefaultLifeAreas("user-1", now)
	require.Len(t, areas, 8)

	ids := make([]string, 0, len(areas))
	for _, a := range areas {
		ids = append(ids, a.ID)
		assert.Equal(t, 5, a.Score)
		assert.Equal(t, "user-1", a.UserID)
		assert.Equal(t, now, a.LastUpdated)
		assert.NotEmpty(t, a.Name)
		assert.NotEmpty(t, a.Color)
		assert.NotEmpty(t, a.Icon)
	}
	assert.Equal(t, []string{
		"health", "career", "relationships", "finances",
		"personal", "leisure", "family", "spirituality",
	}, ids)
}

func TestValidPriority(t *testing.T) {
	assert.True(t, ValidPriority(PriorityLow))
	assert.True(t, ValidPriority(PriorityMedium))
	assert.True(t, ValidPriority(PriorityHigh))
	assert.False(t, ValidPriority(""))
	assert.False(t, ValidPriority("urgent"))
}

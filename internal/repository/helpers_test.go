package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
)

func TestUnwrapOne_StatementWrapper(t *testing.T) {
	result := map[string]interface{}{
		"status": "OK",
		"result": []interface{}{
			map[string]interface{}{"id": "forum_topic:1", "title": "first"},
		},
	}

	data, err := unwrapOne(result)
	require.NoError(t, err)
	assert.Equal(t, "first", getString(data, "title"))
}

func TestUnwrapOne_EmptyResult(t *testing.T) {
	result := map[string]interface{}{
		"status": "OK",
		"result": []interface{}{},
	}

	_, err := unwrapOne(result)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestUnwrapOne_Nil(t *testing.T) {
	_, err := unwrapOne(nil)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestUnwrapOne_BareRecord(t *testing.T) {
	data, err := unwrapOne(map[string]interface{}{"id": "blog:1"})
	require.NoError(t, err)
	assert.Equal(t, "blog:1", getString(data, "id"))
}

func TestUnwrapMany(t *testing.T) {
	result := []interface{}{
		map[string]interface{}{
			"status": "OK",
			"result": []interface{}{
				map[string]interface{}{"id": "tool:1"},
				map[string]interface{}{"id": "tool:2"},
			},
		},
	}

	records := unwrapMany(result)
	require.Len(t, records, 2)
	assert.Equal(t, "tool:2", getString(records[1], "id"))
}

func TestUnwrapMany_Empty(t *testing.T) {
	assert.Nil(t, unwrapMany(nil))
	assert.Empty(t, unwrapMany([]interface{}{
		map[string]interface{}{"status": "OK", "result": []interface{}{}},
	}))
}

func TestExtractCount(t *testing.T) {
	result := map[string]interface{}{
		"status": "OK",
		"result": []interface{}{
			map[string]interface{}{"count": float64(42)},
		},
	}

	assert.Equal(t, 42, extractCount(result))
	assert.Equal(t, 0, extractCount(nil))
}

func TestExtractRecordID(t *testing.T) {
	assert.Equal(t, "user:1", extractRecordID("user:1"))
	assert.Equal(t, "user:1", extractRecordID(map[string]interface{}{"tb": "user", "id": "1"}))
	assert.Equal(t, "", extractRecordID(nil))
}

func TestGetInt_NumericKinds(t *testing.T) {
	m := map[string]interface{}{
		"f64": float64(7),
		"i":   8,
		"i64": int64(9),
		"u64": uint64(10),
	}

	assert.Equal(t, 7, getInt(m, "f64"))
	assert.Equal(t, 8, getInt(m, "i"))
	assert.Equal(t, 9, getInt(m, "i64"))
	assert.Equal(t, 10, getInt(m, "u64"))
	assert.Equal(t, 0, getInt(m, "missing"))
}

func TestGetTime_RFC3339String(t *testing.T) {
	m := map[string]interface{}{"created_on": "2026-01-15T10:30:00Z"}

	got := getTime(m, "created_on")
	assert.Equal(t, time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC), got)
	assert.True(t, getTime(m, "missing").IsZero())
}

func TestParseUserSummary(t *testing.T) {
	fetched := parseUserSummary(map[string]interface{}{
		"id":       "user:7",
		"username": "ghostshell",
		"rank":     float64(3),
	})
	require.NotNil(t, fetched)
	assert.Equal(t, "ghostshell", fetched.Username)
	assert.Equal(t, 3, fetched.Rank)

	bare := parseUserSummary("user:7")
	require.NotNil(t, bare)
	assert.Equal(t, "user:7", bare.ID)
	assert.Empty(t, bare.Username)

	assert.Nil(t, parseUserSummary(nil))
}

func TestIsUniqueConstraintError(t *testing.T) {
	assert.True(t, isUniqueConstraintError(errors.New("index email_idx already exists")))
	assert.True(t, isUniqueConstraintError(errors.New("found duplicate value")))
	assert.False(t, isUniqueConstraintError(errors.New("connection refused")))
	assert.False(t, isUniqueConstraintError(nil))
}

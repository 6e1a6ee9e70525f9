package repository

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/database"
	"github.com/eceelesgerli/redline-cybersecurity-platforms/internal/model"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// extractRecordID converts a SurrealDB record id (which may be a complex
// object) to its string form.
func extractRecordID(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}

	return ""
}

// unwrapOne unwraps a QueryOne result into the record map.
func unwrapOne(result interface{}) (map[string]interface{}, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Handle the {status: "OK", result: [...]} response wrapper
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			} else if resp["result"] != nil {
				result = resp["result"]
			}
		}
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return data, nil
}

// unwrapMany unwraps a Query result into the record maps of its first
// statement.
func unwrapMany(result []interface{}) []map[string]interface{} {
	if len(result) == 0 {
		return nil
	}

	first := result[0]
	if resp, ok := first.(map[string]interface{}); ok {
		if resultData, ok := resp["result"].([]interface{}); ok {
			records := make([]map[string]interface{}, 0, len(resultData))
			for _, r := range resultData {
				if m, ok := r.(map[string]interface{}); ok {
					records = append(records, m)
				}
			}
			return records
		}
	}

	records := make([]map[string]interface{}, 0, len(result))
	for _, r := range result {
		if m, ok := r.(map[string]interface{}); ok {
			records = append(records, m)
		}
	}
	return records
}

// extractCount extracts the tally from a `SELECT count() ... GROUP ALL` result.
func extractCount(result interface{}) int {
	data, err := unwrapOne(result)
	if err != nil {
		return 0
	}
	return getInt(data, "count")
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt extracts an int value from a map
func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}

// getBool extracts a bool value from a map
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

// getTime extracts a time value from a map, handling the driver's
// CustomDateTime as well as RFC 3339 strings.
func getTime(m map[string]interface{}, key string) time.Time {
	switch v := m[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return t
		}
	case models.CustomDateTime:
		return v.Time
	case *models.CustomDateTime:
		if v != nil {
			return v.Time
		}
	}
	return time.Time{}
}

// parseUserSummary decodes a fetched author reference. When the reference
// was not fetched the driver hands back a bare record id, which still
// yields a summary with only the ID set.
func parseUserSummary(v interface{}) *model.UserSummary {
	if v == nil {
		return nil
	}
	if m, ok := v.(map[string]interface{}); ok {
		if _, hasUsername := m["username"]; hasUsername {
			return &model.UserSummary{
				ID:       extractRecordID(m["id"]),
				Username: getString(m, "username"),
				Rank:     getInt(m, "rank"),
				Avatar:   getString(m, "avatar"),
			}
		}
	}
	if id := extractRecordID(v); id != "" {
		return &model.UserSummary{ID: id}
	}
	return nil
}

package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/srkarthi1982/fortune-teller/internal/database"
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

// recordIDString converts a SurrealDB record ID to its table:id string form
func recordIDString(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return fmt.Sprintf("%s:%v", v.Table, v.ID)
	case *models.RecordID:
		if v != nil {
			return fmt.Sprintf("%s:%v", v.Table, v.ID)
		}
	case map[string]interface{}:
		// Handle {"tb": "table", "id": "xxx"} format
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}
	return ""
}

// normalizeRow rewrites SurrealDB-specific values (record IDs, datetimes)
// into JSON-friendly forms so a row can be decoded into a model struct.
func normalizeRow(data map[string]interface{}) {
	for k, v := range data {
		switch t := v.(type) {
		case models.RecordID, *models.RecordID:
			data[k] = recordIDString(t)
		case models.CustomDateTime:
			data[k] = t.Time.Format(time.RFC3339Nano)
		case *models.CustomDateTime:
			if t != nil {
				data[k] = t.Time.Format(time.RFC3339Nano)
			}
		case map[string]interface{}:
			normalizeRow(t)
		}
	}
}

// decodeRecord converts one row map into the target model type
func decodeRecord[T any](data map[string]interface{}) (*T, error) {
	normalizeRow(data)

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(jsonBytes, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// decodeOne decodes a single QueryOne result into the target model type
func decodeOne[T any](result interface{}) (*T, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Handle array wrapper
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
	return decodeRecord[T](data)
}

// decodeRows flattens a Query result into model records, unwrapping the
// {status: "OK", result: [...]} response wrapper where present.
func decodeRows[T any](result []interface{}) ([]*T, error) {
	records := make([]*T, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					data, ok := item.(map[string]interface{})
					if !ok {
						continue
					}
					record, err := decodeRecord[T](data)
					if err != nil {
						continue
					}
					records = append(records, record)
				}
				continue
			}
		}

		record, err := decodeOne[T](res)
		if err != nil {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

// decodeFirst decodes the first row of a Query result, typically the record
// returned by a CREATE statement.
func decodeFirst[T any](result []interface{}) (*T, error) {
	rows, err := decodeRows[T](result)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("no record returned")
	}
	return rows[0], nil
}

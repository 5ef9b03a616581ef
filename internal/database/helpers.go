package database

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	sqldb "github.com/course-kit/coursekit/internal/database/sqlc"
)

func nullInt64Ptr(value *int64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *value, Valid: true}
}

func optionalString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

func optionalInt64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64
	return &v
}

func optionalTime(nt sql.NullTime) time.Time {
	if !nt.Valid {
		return time.Time{}
	}
	return nt.Time
}

func boolToInt64(value bool) int64 {
	if value {
		return 1
	}
	return 0
}

// encodePosition joins the position list as CSV for the position column.
func encodePosition(position []int) string {
	if len(position) == 0 {
		return ""
	}
	parts := make([]string, len(position))
	for i, p := range position {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

// decodePosition parses the CSV position column back into a list.
func decodePosition(value string) []int {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		result = append(result, n)
	}
	return result
}

func queriesFromContext(ctx *Context) *sqldb.Queries {
	if ctx == nil {
		return nil
	}
	if ctx.Queries != nil {
		return ctx.Queries
	}
	if ctx.DB == nil {
		return nil
	}
	return sqldb.New(ctx.DB)
}

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

// ParseDurationEnv reads durations written as "10s", "5m" or plain seconds ("10").
// Surrounding quotes left by some .env editors are ignored.
func ParseDurationEnv(raw string) (time.Duration, error) {
	v := unquote(strings.TrimSpace(raw))
	if v == "" {
		return 0, errors.New("empty duration")
	}
	if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("duration must be like 10s, 5m or a number of seconds: %w", err)
	}
	return d, nil
}

func unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	if q := v[0]; (q == '"' || q == '\'') && v[len(v)-1] == q {
		return v[1 : len(v)-1]
	}
	return v
}

// ParseRedisURL splits a redis:// or rediss:// URL into client settings.
func ParseRedisURL(raw string) (addr, password string, db int, err error) {
	opts, err := redis.ParseURL(strings.TrimSpace(raw))
	if err != nil {
		return "", "", 0, err
	}
	return opts.Addr, opts.Password, opts.DB, nil
}

// Layouts accepted for plan and assignment times, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04", // <input type="datetime-local">
	"2006-01-02",
}

// ParseTimestamp accepts RFC3339 or a zone-less date/datetime; zone-less values are UTC.
func ParseTimestamp(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a valid date or RFC3339 datetime", v)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes LIKE/ILIKE wildcards so q matches literally.
func EscapeLike(q string) string {
	return likeEscaper.Replace(q)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pgCode(err error) string {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return pge.Code
	}
	return ""
}

// IsPGUniqueViolation reports a duplicate key on insert or update.
func IsPGUniqueViolation(err error) bool { return pgCode(err) == pgUniqueViolation }

// IsPGForeignKeyViolation reports a reference to a missing row.
func IsPGForeignKeyViolation(err error) bool { return pgCode(err) == pgForeignKeyViolation }

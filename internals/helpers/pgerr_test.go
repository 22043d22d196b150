package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pgerr 23505", &pgconn.PgError{Code: "23505"}, true},
		{"pgerr lain", &pgconn.PgError{Code: "23503"}, false},
		{"pgerr terbungkus", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"string fallback duplicate key", errors.New(`ERROR: duplicate key value violates unique constraint "employees_employee_email_key"`), true},
		{"string fallback kode", errors.New("SQLSTATE 23505"), true},
		{"error biasa", errors.New("connection refused"), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsUniqueViolation(c.err); got != c.want {
				t.Errorf("IsUniqueViolation = %v, want %v", got, c.want)
			}
		})
	}
}

package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
)

// nullable maps an empty string to SQL NULL
func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func joinSets(sets []string) string {
	return strings.Join(sets, ", ")
}

// boolToInt maps a flag to its stored 0/1 form
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// requireRow turns a zero-row UPDATE/DELETE into a not-found error
func requireRow(res sql.Result, msg string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s", msg)
	}
	return nil
}

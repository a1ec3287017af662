package postgres

import (
	"strings"

	"todo/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation matches both the translated gorm error and the
// raw driver error (SQLSTATE 23505) for sessions created without TranslateError.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "sqlstate 23505") ||
		strings.Contains(errMsg, "duplicate key value violates unique constraint")
}

func isNotNullConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateConstraintError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "logbook_entries_student_week_key"}
	wrapped := fmt.Errorf("insert logbook: %w", pgErr)

	assert.True(t, IsDuplicateConstraintError(wrapped, "logbook_entries_student_week_key"))
	assert.False(t, IsDuplicateConstraintError(wrapped, "users_email_key"))

	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: "logbook_entries_student_week_key"}
	assert.False(t, IsDuplicateConstraintError(fkErr, "logbook_entries_student_week_key"))
	assert.False(t, IsDuplicateConstraintError(errors.New("boom"), "logbook_entries_student_week_key"))
}

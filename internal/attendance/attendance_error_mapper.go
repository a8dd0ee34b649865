package attendance

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const duplicateEventConstraint = "uq_attendance_emp_date_action"

// isDuplicateEvent reports whether an insert lost the race against a
// concurrent event for the same (employee, day, action).
func isDuplicateEvent(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == duplicateEventConstraint
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, duplicateEventConstraint)
}

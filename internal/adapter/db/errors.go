package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlDuplicateEntry = 1062
	mysqlFKViolation    = 1452
)

// isDuplicate reports whether err is a MySQL unique-constraint violation.
// Repositories translate it to a Conflict domain error so nothing above the
// store layer ever inspects driver errors.
func isDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// isFKViolation reports whether err is a MySQL foreign-key failure, i.e. a
// reference to a row that does not exist.
func isFKViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlFKViolation
}

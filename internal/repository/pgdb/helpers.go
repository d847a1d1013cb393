package pgdb

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// postgresDuplicate сообщает, является ли ошибка нарушением уникальности.
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// sprintfQuery подставляет имя таблицы в шаблон запроса.
// Имена берутся только из фиксированного списка, не из пользовательского ввода.
func sprintfQuery(format string, table string) string {
	return fmt.Sprintf(format, table)
}

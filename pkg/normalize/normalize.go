// Package normalize строит канонический ключ сравнения для строк:
// обрезка пробелов, каноническая нормализация Unicode (NFC) и case folding.
// Ключ используется только для проверки равенства — исходная строка
// сохраняется в агрегате без изменений.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Key возвращает ключ сравнения для строки.
// Для пустой строки возвращается пустой ключ.
func Key(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	return folder.String(norm.NFC.String(s))
}

// Equal сравнивает две строки по их ключам сравнения.
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

package metrics

import (
	"errors"
	"strings"
)

// ErrMalformed возвращается, если строку невозможно разобрать как пару
// "имя значение".
var ErrMalformed = errors.New("metric is malformed")

// separator разделяет имя и значение метрики в теле запроса.
const separator = " "

// Metric определяет пару "имя метрики" и "значение метрики".
//
// Имя и значение передаются как есть: они не проверяются, а значение не
// разбирается как число.
type Metric struct {
	Name  string
	Value string
}

// New возвращает новую метрику.
func New(name, value string) Metric {
	return Metric{Name: name, Value: value}
}

// String возвращает метрику в формате тела запроса: имя и значение,
// разделённые одним пробелом, без завершающего переноса строки.
func (m Metric) String() string {
	return m.Name + separator + m.Value
}

// Parse разбирает строку по первому пробелу. Пробелы в значении
// сохраняются как есть.
func Parse(s string) (Metric, error) {
	name, value, ok := strings.Cut(s, separator)
	if !ok {
		return Metric{}, ErrMalformed
	}
	return New(name, value), nil
}

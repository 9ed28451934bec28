package version

import "fmt"

var (
	Build  = "N/A" // Версия сборки.
	Date   = "N/A" // Дата сборки.
	Commit = "N/A" // Последний коммит.
)

// String возвращает справочную информацию о сборке одной строкой.
func String() string {
	return fmt.Sprintf("%s (%s, %s)", Build, Commit, Date)
}

package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	zerolog.ErrorFieldName = "error"
}

// Logger определяет регистратор логов.
type Logger struct {
	level Level
	log   zerolog.Logger
}

// New возвращает новый экземпляр Logger.
func New(w io.Writer, level Level) *Logger {
	log := zerolog.New(w)
	return &Logger{level: level, log: log}
}

// Discard возвращает пустой Logger.
func Discard() *Logger {
	return New(io.Discard, LevelError+1)
}

// Enabled возвращает true, если уровень логирования разрешён.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level >= l.level
}

// With возвращает копию Logger, которая добавляет пары ключ-значение
// к каждой записи.
func (l *Logger) With(a ...any) *Logger {
	ctx := l.log.With()
	forEachPair(a, func(key string, value any) {
		ctx = ctx.Interface(key, value)
	})
	return &Logger{level: l.level, log: ctx.Logger()}
}

// Log записывает сообщение с парами ключ-значение. Нулевой Logger
// ничего не записывает.
func (l *Logger) Log(level Level, msg string, a ...any) {
	if !l.Enabled(level) {
		return
	}

	ev := l.log.Log()
	ev = ev.Str("level", level.String())
	ev = ev.Timestamp()

	forEachPair(a, func(key string, value any) {
		if err, ok := value.(error); ok {
			ev = ev.AnErr(key, err)
			return
		}
		ev = ev.Any(key, value)
	})

	ev.Msg(msg)
}

func forEachPair(a []any, fn func(key string, value any)) {
	if len(a) == 0 || len(a)%2 != 0 {
		return
	}
	for i := 0; i < len(a)-1; i = i + 2 {
		key, ok := a[i].(string)
		if !ok {
			key = fmt.Sprintf("%s", a[i])
		}
		fn(key, a[i+1])
	}
}

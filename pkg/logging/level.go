package logging

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strconv"
)

var (
	_ encoding.TextMarshaler   = (*Level)(nil)
	_ encoding.TextUnmarshaler = (*Level)(nil)
)

// Level определяет уровень логирования.
type Level int

const (
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelError Level = 4
)

// ErrInvalidLevel возвращается, если уровень логирования не распознан.
var ErrInvalidLevel = errors.New("level is invalid")

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText принимает уровень как в виде значения флага (info, debug+1),
// так и в виде JSON-строки ("info").
func (l *Level) UnmarshalText(text []byte) error {
	var offset Level

	text = bytes.TrimSpace(text)
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	if len(text) == 0 {
		return ErrInvalidLevel
	}

	n := bytes.IndexAny(text, "+-")
	if n == 0 || n == len(text)-1 {
		return errors.New("level offset is incorrect")
	}
	if n > 0 {
		v, err := strconv.ParseInt(string(text[n:]), 10, 64)
		if err != nil {
			return fmt.Errorf("parse the level offset: %w", err)
		}

		offset = Level(v)
		text = text[:n]
	}

	switch string(bytes.ToLower(text)) {
	case "debug":
		*l = LevelDebug
	case "info":
		*l = LevelInfo
	case "error":
		*l = LevelError
	default:
		return ErrInvalidLevel
	}

	*l += offset
	return nil
}

func (l Level) String() string {
	str := func(base string, val Level) string {
		if val == 0 {
			return base
		}
		return fmt.Sprintf("%s%+d", base, val)
	}
	switch {
	case l < LevelInfo:
		return str("debug", l-LevelDebug)
	case l < LevelError:
		return str("info", l-LevelInfo)
	default:
		return str("error", l-LevelError)
	}
}

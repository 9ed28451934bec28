package configs

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/sergeizaitcev/metricsender/pkg/commands"
	"github.com/sergeizaitcev/metricsender/pkg/logging"
)

var DefaultSender = &Sender{
	Level:  logging.LevelInfo,
	Strict: false,
}

var (
	_ commands.Config = (*Sender)(nil)
	_ commands.Args   = (*Sender)(nil)
	_ io.ReaderFrom   = (*Sender)(nil)
)

// Sender определяет конфиг для отправителя метрики.
type Sender struct {
	commands.UnimplementedConfig

	// Путь к файлу конфигурации.
	ConfigPath commands.ConfigPath `env:"CONFIG" json:"-"`

	// Уровень логирования.
	//
	// По умолчанию "info".
	Level logging.Level `env:"LEVEL" json:"level"`

	// Проверка кода ответа сервера. Если выключена, любой ответ,
	// тело которого удалось прочитать, считается успешным.
	//
	// По умолчанию false.
	Strict bool `env:"STRICT" json:"strict"`

	// Адрес приёмника метрик; не настраивается через флаги и окружение.
	// Пустое значение означает адрес по умолчанию.
	Endpoint string `json:"-"`

	// Имя и значение метрики из позиционных аргументов.
	Name  string `json:"-"`
	Value string `json:"-"`

	args []string
}

func (s *Sender) ReadFrom(r io.Reader) (int64, error) {
	dec := json.NewDecoder(r)
	err := dec.Decode(s)
	if err != nil {
		return 0, err
	}
	return dec.InputOffset(), nil
}

func (s *Sender) SetFlags(fs *flag.FlagSet) {
	fs.Var(&s.ConfigPath, "c", "path to config")
	fs.TextVar(&s.Level, "v", DefaultSender.Level, "logging level")
	fs.BoolVar(&s.Strict, "strict", DefaultSender.Strict, "fail on a non-2xx response")
}

func (s *Sender) SetArgs(args []string) {
	s.args = args
}

func (s *Sender) ArgsUsage() string {
	return "[--] <metricName> <metricValue>"
}

func (s *Sender) Validate() error {
	if len(s.args) != 2 {
		return fmt.Errorf("%w: expected 2 arguments, got %d", commands.ErrUsage, len(s.args))
	}
	s.Name, s.Value = s.args[0], s.args[1]
	return nil
}

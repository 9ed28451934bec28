package configs

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net"

	"github.com/sergeizaitcev/metricsender/pkg/commands"
	"github.com/sergeizaitcev/metricsender/pkg/logging"
)

var DefaultListener = &Listener{
	Level:   logging.LevelInfo,
	Address: "localhost:14499",
	Reply:   "ok",
}

var (
	_ commands.Config = (*Listener)(nil)
	_ io.ReaderFrom   = (*Listener)(nil)
)

// Listener определяет конфиг для локального приёмника метрик.
type Listener struct {
	commands.UnimplementedConfig

	// Путь к файлу конфигурации.
	ConfigPath commands.ConfigPath `env:"CONFIG" json:"-"`

	// Уровень логирования.
	//
	// По умолчанию "info".
	Level logging.Level `env:"LEVEL" json:"level"`

	// Адрес приёмника.
	//
	// По умолчанию "localhost:14499".
	Address string `env:"ADDRESS" json:"address"`

	// Текст ответа на принятую метрику.
	//
	// По умолчанию "ok".
	Reply string `env:"REPLY" json:"reply"`
}

func (l *Listener) ReadFrom(r io.Reader) (int64, error) {
	dec := json.NewDecoder(r)
	err := dec.Decode(l)
	if err != nil {
		return 0, err
	}
	return dec.InputOffset(), nil
}

func (l *Listener) SetFlags(fs *flag.FlagSet) {
	fs.Var(&l.ConfigPath, "c", "path to config")
	fs.TextVar(&l.Level, "v", DefaultListener.Level, "logging level")
	fs.StringVar(&l.Address, "a", DefaultListener.Address, "listener address")
	fs.StringVar(&l.Reply, "r", DefaultListener.Reply, "reply text")
}

func (l *Listener) Validate() error {
	if l.Address == "" {
		return errors.New("address must be not empty")
	}
	_, _, err := net.SplitHostPort(l.Address)
	if err != nil {
		return err
	}
	return nil
}

package sender

import (
	"io"
	"net/http"

	"github.com/sergeizaitcev/metricsender/pkg/logging"
)

type Option func(*options)

type options struct {
	logger    *logging.Logger
	output    io.Writer
	transport http.RoundTripper
	strict    bool
}

// WithLogger устанавливает регистратор логов.
func WithLogger(logger *logging.Logger) Option {
	return func(opt *options) {
		opt.logger = logger
	}
}

// WithOutput устанавливает назначение для ответа сервера.
//
// По умолчанию os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(opt *options) {
		opt.output = w
	}
}

// WithTransport устанавливает пользовательский транспорт.
func WithTransport(rt http.RoundTripper) Option {
	return func(opt *options) {
		opt.transport = rt
	}
}

// WithStrict включает проверку кода ответа сервера.
func WithStrict(strict bool) Option {
	return func(opt *options) {
		opt.strict = strict
	}
}

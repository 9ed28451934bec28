package listener

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/sergeizaitcev/metricsender/internal/configs"
	"github.com/sergeizaitcev/metricsender/pkg/httpserver"
	"github.com/sergeizaitcev/metricsender/pkg/logging"
	"github.com/sergeizaitcev/metricsender/pkg/middleware"
)

// Run запускает приёмник метрик и блокируется до тех пор, пока не сработает
// контекст или сервер не вернёт ошибку.
func Run(ctx context.Context, c *configs.Listener) error {
	logger := logging.New(os.Stderr, c.Level)

	lis, err := net.Listen("tcp", c.Address)
	if err != nil {
		return fmt.Errorf("listening to %s: %w", c.Address, err)
	}
	defer lis.Close()

	l := New(&ListenerOpts{
		Reply:  c.Reply,
		Logger: logger,
	})

	opts := &httpserver.ServerOpts{
		Listener:     lis,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  time.Minute,
	}

	srv := httpserver.New(l.Handler(Trace(logger)), opts)

	logger.Log(logging.LevelInfo, "listening", "address", srv.Addr().String())

	return srv.ListenAndServe(ctx)
}

// Trace возвращает обёртку, которая логирует каждый запрос.
func Trace(logger *logging.Logger) middleware.Middleware {
	return middleware.Trace(func(p *middleware.Params) {
		if p.Error != nil {
			logger.Log(logging.LevelError, p.Error.Error(),
				"method", p.Method,
				"uri", p.URI,
				"status_code", p.StatusCode,
			)
			return
		}
		logger.Log(logging.LevelDebug, "",
			"method", p.Method,
			"uri", p.URI,
			"status_code", p.StatusCode,
			"duration", p.Duration,
			"size", p.Size,
			"remote_addr", p.RemoteAddr,
		)
	})
}

package sender

import (
	"context"
	"os"

	"github.com/sergeizaitcev/metricsender/internal/configs"
	"github.com/sergeizaitcev/metricsender/internal/metrics"
	"github.com/sergeizaitcev/metricsender/pkg/logging"
	"github.com/sergeizaitcev/metricsender/version"
)

// Run отправляет метрику из конфига и печатает ответ в стандартный вывод.
func Run(ctx context.Context, c *configs.Sender) error {
	logger := logging.New(os.Stderr, c.Level)
	logger.Log(logging.LevelDebug, "", "version", version.String())

	s := New(c.Endpoint,
		WithLogger(logger),
		WithStrict(c.Strict),
	)

	return s.Send(ctx, metrics.New(c.Name, c.Value))
}

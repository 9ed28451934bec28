package listener

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/julienschmidt/httprouter"

	"github.com/sergeizaitcev/metricsender/internal/metrics"
	"github.com/sergeizaitcev/metricsender/pkg/logging"
	"github.com/sergeizaitcev/metricsender/pkg/middleware"
)

// IngestPath определяет путь приёма метрик.
const IngestPath = "/metrics/ingest"

// maxBodySize ограничивает размер тела запроса.
const maxBodySize = 1 << 20

// ListenerOpts определяет не обязательные параметры приёмника.
type ListenerOpts struct {
	// Текст ответа на принятую метрику.
	//
	// По умолчанию "ok".
	Reply string

	// Регистратор логов.
	Logger *logging.Logger
}

// Listener определяет локальный приёмник метрик в текстовом формате
// "имя значение".
type Listener struct {
	reply  string
	logger *logging.Logger

	mu       sync.Mutex
	received []metrics.Metric
}

// New возвращает новый экземпляр Listener.
func New(opts *ListenerOpts) *Listener {
	if opts == nil {
		opts = &ListenerOpts{}
	}

	l := &Listener{
		reply:  opts.Reply,
		logger: opts.Logger,
	}
	if l.reply == "" {
		l.reply = "ok"
	}
	if l.logger == nil {
		l.logger = logging.Discard()
	}

	return l
}

// Handler возвращает обработчик HTTP-запросов приёмника.
func (l *Listener) Handler(middlewares ...middleware.Middleware) http.Handler {
	router := httprouter.New()
	router.Handle(http.MethodPost, IngestPath, middleware.Use(l.ingest, middlewares...))
	return router
}

// Received возвращает копию принятых метрик в порядке поступления.
func (l *Listener) Received() []metrics.Metric {
	l.mu.Lock()
	defer l.mu.Unlock()

	values := make([]metrics.Metric, len(l.received))
	copy(values, l.received)

	return values
}

func (l *Listener) ingest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}

	m, err := metrics.Parse(string(b))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", err, b))
		return
	}

	l.mu.Lock()
	l.received = append(l.received, m)
	l.mu.Unlock()

	l.logger.Log(logging.LevelInfo, "metric received", "name", m.Name, "value", m.Value)

	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, l.reply)
}

func writeError(w http.ResponseWriter, code int, err error) {
	middleware.WriteError(w, err)
	w.WriteHeader(code)
	_, _ = io.WriteString(w, err.Error())
}

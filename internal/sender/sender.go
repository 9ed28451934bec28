package sender

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/sergeizaitcev/metricsender/internal/metrics"
	"github.com/sergeizaitcev/metricsender/pkg/logging"
)

// DefaultEndpoint определяет адрес приёмника метрик по умолчанию.
const DefaultEndpoint = "http://localhost:14499/metrics/ingest"

// Banner печатается перед ответом сервера.
const Banner = "Output from Server .... "

// maxLineSize ограничивает длину одной строки ответа.
const maxLineSize = 1 << 20

// Sender отправляет метрику на приёмник одним POST-запросом и печатает
// ответ сервера построчно.
type Sender struct {
	endpoint string
	client   *http.Client
	opts     options
}

// New возвращает новый экземпляр Sender. Пустой endpoint заменяется на
// DefaultEndpoint.
func New(endpoint string, opts ...Option) *Sender {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	sender := &Sender{endpoint: endpoint}
	for _, opt := range opts {
		opt(&sender.opts)
	}

	if sender.opts.output == nil {
		sender.opts.output = os.Stdout
	}
	if sender.opts.logger == nil {
		sender.opts.logger = logging.Discard()
	}
	sender.opts.logger = sender.opts.logger.With("endpoint", endpoint)

	// NOTE: тайм-аут не устанавливается; запрос прерывается только
	// через контекст.
	sender.client = &http.Client{Transport: sender.opts.transport}

	return sender
}

// Send отправляет метрику и печатает ответ сервера. Код ответа
// не проверяется, если не включён строгий режим.
func (s *Sender) Send(ctx context.Context, m metrics.Metric) error {
	req, err := s.prepareRequest(ctx, m)
	if err != nil {
		return fmt.Errorf("request preparation: %w", err)
	}

	s.opts.logger.Log(logging.LevelDebug, "sending a metric",
		"name", m.Name,
		"value", m.Value,
	)

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: sending a request: %w", ErrTransport, err)
	}
	defer gracefulClose(res)

	s.opts.logger.Log(logging.LevelDebug, "", "status_code", res.StatusCode)

	// NOTE: без строгого режима код ответа намеренно игнорируется:
	// ответ с любым кодом печатается так же, как успешный.
	if s.opts.strict && !success(res.StatusCode) {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
	}

	return s.printResponse(res.Body)
}

func (s *Sender) prepareRequest(ctx context.Context, m metrics.Metric) (*http.Request, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEndpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformedEndpoint, s.endpoint)
	}

	body := strings.NewReader(m.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("create a new request: %w", err)
	}

	req.Header.Set("Content-Type", "text/plain")

	return req, nil
}

// printResponse печатает баннер, пустую строку и каждую строку тела ответа
// по мере чтения.
func (s *Sender) printResponse(body io.Reader) error {
	w := &errWriter{w: s.opts.output}

	w.println(Banner)
	w.println("")

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	scanner.Split(scanLines)
	for scanner.Scan() && w.err == nil {
		w.println(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: reading a response: %w", ErrTransport, err)
	}
	if w.err != nil {
		return fmt.Errorf("writing output: %w", w.err)
	}

	return nil
}

// errWriter запоминает первую ошибку записи.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) println(line string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, line+"\n")
}

// scanLines разбивает ввод на строки по "\n", "\r\n" или одиночному "\r".
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0:
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data):
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	case atEOF:
		return i + 1, data[:i], nil
	default:
		// Одиночный "\r" в конце буфера: следующий байт может быть "\n".
		return 0, nil, nil
	}
}

func success(code int) bool {
	return code >= 200 && code < 300
}

func gracefulClose(res *http.Response) {
	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()
}

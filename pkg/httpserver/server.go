package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"
)

// shutdownTimeout ограничивает время завершения активных соединений.
const shutdownTimeout = 3 * time.Second

// ServerOpts определяет не обязательные параметры сервера.
type ServerOpts struct {
	// Пользовательское прослушивание соединения. Если не задано,
	// сервер слушает свободный порт на всех интерфейсах.
	Listener net.Listener

	// Тайм-аут чтения запроса.
	ReadTimeout time.Duration

	// Тайм-аут записи ответа.
	WriteTimeout time.Duration

	// Время жизни не используемого `keep-alive` соединения.
	IdleTimeout time.Duration
}

// Server определяет HTTP-сервер.
type Server struct {
	mu  sync.Mutex
	lis net.Listener
	srv http.Server
}

// New возвращает новый экземпляр Server.
func New(h http.Handler, opts *ServerOpts) *Server {
	if opts == nil {
		opts = &ServerOpts{}
	}

	server := &Server{
		lis: opts.Listener,
		srv: http.Server{
			Handler:      h,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
			IdleTimeout:  opts.IdleTimeout,
		},
	}

	return server
}

// Addr возвращает адрес прослушивания или nil, если сервер ещё не слушает.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lis == nil {
		return nil
	}
	return s.lis.Addr()
}

// ListenAndServe слушает входящие запросы и блокируется до тех пор, пока
// не сработает контекст, не сработает метод Close или функция не вернёт ошибку.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() { errc <- s.Serve(ctx) }()

	select {
	case <-ctx.Done():
	case err := <-errc:
		return err
	}

	err := s.Close()
	<-errc

	return err
}

// Close завершает работу HTTP-сервера.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// Serve слушает входящие запросы и блокируется до тех пор, пока не сработает
// метод Close или функция не вернёт ошибку. Завершение через Close не
// считается ошибкой.
func (s *Server) Serve(ctx context.Context) error {
	s.srv.BaseContext = func(net.Listener) context.Context { return ctx }

	s.mu.Lock()
	if s.lis == nil {
		lis, err := net.Listen("tcp", "")
		if err != nil {
			s.mu.Unlock()
			return err
		}
		s.lis = lis
	}
	lis := s.lis
	s.mu.Unlock()

	err := s.srv.Serve(lis)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

package middleware

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
)

// Params определяет параметры запроса.
type Params struct {
	URI        string
	Method     string
	RemoteAddr string
	Duration   time.Duration
	StatusCode int
	Size       int
	Error      error
}

// Trace передает параметры запроса в paramsFunc после его обработки.
func Trace(paramsFunc func(*Params)) Middleware {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
			rw := &traceResponseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			start := time.Now()
			next(rw, r, p)
			elapsed := time.Since(start)

			reqURI := r.RequestURI
			if reqURI == "" {
				reqURI = r.URL.RequestURI()
			}

			paramsFunc(&Params{
				URI:        reqURI,
				Method:     r.Method,
				RemoteAddr: r.RemoteAddr,
				Duration:   elapsed,
				StatusCode: rw.statusCode,
				Size:       rw.size,
				Error:      rw.err,
			})
		}
	}
}

type traceResponseWriter struct {
	http.ResponseWriter
	size       int
	statusCode int
	err        error
}

// WriteError сохраняет ошибку обработки запроса для Trace; если w не
// обёрнут Trace, вызов ничего не делает.
func WriteError(w http.ResponseWriter, err error) {
	rw, ok := w.(*traceResponseWriter)
	if ok {
		rw.err = err
	}
}

func (w *traceResponseWriter) Write(p []byte) (int, error) {
	n, err := w.ResponseWriter.Write(p)
	w.size += n
	return n, err
}

func (w *traceResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

package httpserver_test

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/nettest"

	"github.com/sergeizaitcev/metricsender/pkg/httpserver"
	"github.com/sergeizaitcev/metricsender/pkg/testutil"
)

func TestServer(t *testing.T) {
	lis, err := nettest.NewLocalListener("tcp")
	require.NoError(t, err)
	t.Cleanup(func() { lis.Close() })

	mux := http.NewServeMux()
	mux.HandleFunc("/test", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	s := httpserver.New(mux, &httpserver.ServerOpts{Listener: lis})
	require.Equal(t, lis.Addr().String(), s.Addr().String())

	ctx, cancel := context.WithTimeout(testutil.Context(t), 3*time.Second)
	t.Cleanup(cancel)

	errc := make(chan error, 1)
	go func() { errc <- s.ListenAndServe(ctx) }()

	u := &url.URL{
		Scheme: "http",
		Host:   lis.Addr().String(),
		Path:   "/test",
	}

	res, err := http.Get(u.String())
	require.NoError(t, err)

	_, _ = io.Copy(io.Discard, res.Body)
	_ = res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	cancel()
	require.NoError(t, <-errc)
}

package server

import (
	"context"
	"net/http"
)

// httpServer abstracts the HTTP server implementation for easier testing.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// netHTTPServer adapts a *http.Server to the httpServer seam.
type netHTTPServer struct {
	srv *http.Server
}

func newNetHTTPServer(addr string, handler http.Handler, withTimeouts bool) *netHTTPServer {
	srv := &http.Server{Addr: addr, Handler: handler}
	if withTimeouts {
		srv.ReadTimeout = readTimeout
		srv.WriteTimeout = writeTimeout
		srv.IdleTimeout = idleTimeout
	}
	return &netHTTPServer{srv: srv}
}

func (s *netHTTPServer) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

func (s *netHTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *netHTTPServer) Addr() string {
	return s.srv.Addr
}

func (s *netHTTPServer) Handler() http.Handler {
	return s.srv.Handler
}

package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with sane defaults for this project. writeTimeout
// should exceed the request timeout so deadline errors still reach the client.
func New(addr string, handler http.Handler, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       120 * time.Second,
	}
}

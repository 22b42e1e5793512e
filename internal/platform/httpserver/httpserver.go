package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with defaults for this project. writeTimeout must
// cover the whole analysis pipeline, which chains several bounded stages.
func New(addr string, handler http.Handler, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}
}

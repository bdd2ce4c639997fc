package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DefaultMaxBodySize limits the size of request bodies and websocket messages
const DefaultMaxBodySize = 1 << 20

// HttpServer exposes the alphabets over HTTP and websockets.
type HttpServer struct {
	Address           string
	EnableCompression bool
	MaxBodySize       int64

	server   *http.Server
	listener net.Listener
}

func NewHttpServer(address string) *HttpServer {
	return &HttpServer{
		Address:     address,
		MaxBodySize: DefaultMaxBodySize,
	}
}

func (ws *HttpServer) String() string {
	if ws.listener != nil {
		return fmt.Sprintf("http://%v", ws.listener.Addr())
	}
	return fmt.Sprintf("http://%v", ws.Address)
}

// Router creates the handler with all the routes. The address is only used for logging.
func (ws *HttpServer) Router(address *net.TCPAddr) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	router.Post("/encode/{alphabet}", ws.handleEncode)
	router.Post("/decode/{alphabet}", ws.handleDecode)
	router.Get("/alphabet/{alphabet}", ws.handleAlphabet)
	router.Get("/ws/{alphabet}", ws.handleWebsocket())

	return router
}

// Startup starts listening and serves the requests in the background.
func (ws *HttpServer) Startup() error {
	ln, err := net.Listen("tcp", ws.Address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", ws.Address)
	}
	ws.listener = ln

	address, _ := ln.Addr().(*net.TCPAddr)
	ws.server = &http.Server{
		Addr:    ws.Address,
		Handler: ws.Router(address),
	}

	go func() {
		log.Infof("Starting HTTP server at %v", ws)
		if err := ws.server.Serve(ln); err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
		}
	}()

	return nil
}

// Addr returns the address the server is listening on, or nil if it was not started.
func (ws *HttpServer) Addr() net.Addr {
	if ws.listener == nil {
		return nil
	}
	return ws.listener.Addr()
}

func (ws *HttpServer) Shutdown() error {
	if ws.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return errors.WithStack(ws.server.Shutdown(ctx))
}

// Package stream serves generator output over WebSocket. Every connection
// gets its own child generator split from the stream's parent, so clients
// never share or interleave a sequence.
package stream

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"

	"github.com/cellmorph/utils/internal/config"
	"github.com/cellmorph/utils/rng"
)

// Message is one emission on a stream connection.
type Message struct {
	Stream string   `json:"stream"`
	Seq    uint64   `json:"seq"`
	Uint   *uint64  `json:"uint,omitempty"`
	Float  *float64 `json:"float,omitempty"`
}

// Server exposes configured generator streams over WebSocket.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	logger   *log.Logger
	clock    quartz.Clock

	mu      sync.Mutex
	streams map[string]*stream
	http    *http.Server

	ctx    context.Context
	cancel context.CancelFunc
}

// stream is one configured generator with its parent instance. The mutex
// serialises splits; generator instances are single-owner.
type stream struct {
	cfg    config.StreamConfig
	mu     sync.Mutex
	parent rng.Splittable
}

// NewServer creates a server for the given configuration. The configuration
// must already be validated.
func NewServer(cfg *config.Config, logger *log.Logger, clock quartz.Clock) (*Server, error) {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		addr: cfg.ListenAddress(),
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger:  logger.WithPrefix("stream"),
		clock:   clock,
		streams: make(map[string]*stream),
		ctx:     ctx,
		cancel:  cancel,
	}
	for _, sc := range cfg.Streams {
		parent, err := rng.NewFromName(sc.Generator, uint64(sc.Seed))
		if err != nil {
			cancel()
			return nil, fmt.Errorf("stream %s: %w", sc.Name, err)
		}
		s.streams[sc.Name] = &stream{cfg: sc, parent: parent}
	}
	return s, nil
}

// Handler returns the HTTP handler serving /stream/{name} and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/stream/", s.handleStream)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start serves until the listener fails or Stop is called. A Stop-initiated
// shutdown returns nil.
func (s *Server) Start() error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}
	s.mu.Lock()
	s.http = srv
	s.mu.Unlock()

	s.logger.Info("Starting stream server", "addr", s.addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop cancels all connection loops and shuts the listener down.
func (s *Server) Stop() {
	s.cancel()

	s.mu.Lock()
	srv := s.http
	s.mu.Unlock()
	if srv != nil {
		// WebSocket connections are hijacked, so Shutdown does not wait on
		// them; the context cancellation above ends their emit loops.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/stream/")
	s.mu.Lock()
	st, ok := s.streams[name]
	s.mu.Unlock()
	if !ok {
		http.Error(w, fmt.Sprintf("unknown stream %q", name), http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	// One split child per connection; the parent stays with the server.
	st.mu.Lock()
	child := st.parent.SplitProvider()
	st.mu.Unlock()

	s.logger.Info("Client connected", "stream", name, "remote", conn.RemoteAddr())
	go s.emit(st.cfg, child, conn)
}

// emit writes one value per tick until the client goes away or the server
// stops.
func (s *Server) emit(cfg config.StreamConfig, child rng.Provider, conn *websocket.Conn) {
	defer conn.Close()

	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	// Surface client-side closure: reads fail once the peer disconnects.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	interval := time.Second / time.Duration(cfg.Rate)
	seq := uint64(0)
	waiter := s.clock.TickerFunc(ctx, interval, func() error {
		msg := Message{Stream: cfg.Name, Seq: seq}
		seq++
		switch cfg.Format {
		case "uint64":
			v := child.Uint64()
			msg.Uint = &v
		default:
			v := child.Float64()
			msg.Float = &v
		}
		if err := conn.WriteJSON(msg); err != nil {
			return err
		}
		return nil
	})
	if err := waiter.Wait(); err != nil && ctx.Err() == nil {
		s.logger.Debug("Stream loop ended", "stream", cfg.Name, "error", err)
	}
	s.logger.Info("Client disconnected", "stream", cfg.Name)
}

package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/nhdewitt/digit-matrix/internal/request"
	"github.com/nhdewitt/digit-matrix/internal/response"
)

// Server accepts one connection at a time and serves it to completion
// before accepting the next. There are no read or write deadlines: a client
// that never sends holds the device until its transport gives up or the
// server is closed.
type Server struct {
	listener    net.Listener
	isListening atomic.Bool
	handler     Handler
	logger      *slog.Logger
	done        chan struct{}

	mu     sync.Mutex
	active net.Conn
}

func Serve(addr string, handler Handler, logger *slog.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return ServeListener(listener, handler, logger), nil
}

// ServeListener runs the accept loop on an already bound listener.
func ServeListener(listener net.Listener, handler Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		listener: listener,
		handler:  handler,
		logger:   logger,
		done:     make(chan struct{}),
	}
	s.isListening.Store(true)
	go s.listen()

	return s
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Done is closed once the accept loop has returned, for whatever reason.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Close stops accepting, drops the connection in progress, if any, and
// waits for the loop to return.
func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		<-s.done
		return nil
	}

	err := s.listener.Close()

	s.mu.Lock()
	if s.active != nil {
		s.active.Close()
	}
	s.mu.Unlock()

	<-s.done
	return err
}

// track records conn as the one being served. It reports false once Close
// has started, in which case conn must not be read.
func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isListening.Load() {
		return false
	}
	s.active = conn
	return true
}

func (s *Server) untrack() {
	s.mu.Lock()
	s.active = nil
	s.mu.Unlock()
}

func (s *Server) listen() {
	defer close(s.done)

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() {
				return
			}
			if errors.Is(err, net.ErrClosed) {
				s.logger.Error("listener closed unexpectedly", "err", err)
				s.isListening.Store(false)
				return
			}
			s.logger.Error("error accepting connection", "err", err)
			continue
		}

		s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	logger := s.logger.With("conn", uuid.NewString(), "remote", conn.RemoteAddr().String())
	defer func() {
		if r := recover(); r != nil {
			logger.Error("handler panicked", "panic", r)
		}
		if err := conn.Close(); err != nil {
			logger.Debug("error closing connection", "err", err)
		}
	}()

	if !s.track(conn) {
		logger.Debug("server closing, dropping connection")
		return
	}
	defer s.untrack()

	logger.Info("client connected")

	req, err := request.RequestFromReader(conn)
	if err != nil {
		logger.Error("connection error", "err", err)
		return
	}
	logger.Debug("request parsed",
		"method", req.RequestLine.Method,
		"target", req.RequestLine.RequestTarget,
		"params", len(req.Params),
		"headers", req.Headers,
	)

	if err := s.handler(response.NewWriter(conn), req, logger); err != nil {
		logger.Error("connection error", "err", err)
	}
}

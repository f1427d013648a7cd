package server

import (
	"log/slog"

	"github.com/nhdewitt/digit-matrix/internal/request"
	"github.com/nhdewitt/digit-matrix/internal/response"
)

// Handler answers one parsed request. logger is scoped to the connection.
// A returned error is logged; it never stops the server.
type Handler func(w *response.Writer, req *request.Request, logger *slog.Logger) error

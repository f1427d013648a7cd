// Package control turns parsed requests into display updates and replies.
package control

import (
	"fmt"
	"log/slog"

	"github.com/nhdewitt/digit-matrix/internal/display"
	"github.com/nhdewitt/digit-matrix/internal/glyph"
	"github.com/nhdewitt/digit-matrix/internal/page"
	"github.com/nhdewitt/digit-matrix/internal/request"
	"github.com/nhdewitt/digit-matrix/internal/response"
	"github.com/nhdewitt/digit-matrix/internal/status"
)

// A displayed digit is acknowledged with a short plain-text body.
const (
	AckContentType = "text/plain"
	AckBody        = "OK"
)

type Config struct {
	Thickness    glyph.Thickness
	DefaultColor glyph.Color
}

type Controller struct {
	status *status.Status
	sink   display.Sink
	cfg    Config
}

func New(st *status.Status, sink display.Sink, cfg Config) *Controller {
	if cfg.Thickness == 0 {
		cfg.Thickness = glyph.DefaultThickness
	}
	if cfg.DefaultColor == glyph.Background {
		cfg.DefaultColor = glyph.White
	}
	return &Controller{
		status: st,
		sink:   sink,
		cfg:    cfg,
	}
}

// Handle answers one request. A valid num draws the digit and gets a plain
// "OK"; everything else, including out-of-range digits, gets the control
// page.
func (c *Controller) Handle(w *response.Writer, req *request.Request, logger *slog.Logger) error {
	if raw, ok := req.Params.Get("num"); ok {
		num := ParseNum(raw)
		if num.Defaulted {
			logger.Warn("num is not an integer, using 0", "num", raw)
		}

		if d, ok := glyph.ToDigit(num.Value); ok && num.Overflow == "" {
			return c.show(w, req, d, logger)
		}

		logger.Warn("invalid digit", "num", num.Invalid())
		c.status.SetInvalidText(num.Invalid())
	}

	logger.Debug("serving control page")
	body := page.Render(c.status.Snapshot())
	if err := w.Reply(response.StatusOK, page.ContentType, body); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}

func (c *Controller) show(w *response.Writer, req *request.Request, d glyph.Digit, logger *slog.Logger) error {
	c.status.SetDigit(d)

	col := c.cfg.DefaultColor
	if name, ok := req.Params.Get("color"); ok {
		col = glyph.ResolveColor(name)
	}

	logger.Info("displaying digit", "digit", d.Int(), "color", col.String())
	frame := glyph.Render(d, col, c.cfg.Thickness)
	if err := c.sink.Show(&frame); err != nil {
		// still acknowledged
		logger.Error("display update failed", "err", err)
	}

	if err := w.Reply(response.StatusOK, AckContentType, []byte(AckBody)); err != nil {
		return fmt.Errorf("write ack: %w", err)
	}
	return nil
}

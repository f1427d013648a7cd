// Package device wires the status record, the display sink and the request
// loop into one appliance with a boot splash and a clearing shutdown.
package device

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/nhdewitt/digit-matrix/internal/config"
	"github.com/nhdewitt/digit-matrix/internal/control"
	"github.com/nhdewitt/digit-matrix/internal/display"
	"github.com/nhdewitt/digit-matrix/internal/glyph"
	"github.com/nhdewitt/digit-matrix/internal/server"
	"github.com/nhdewitt/digit-matrix/internal/status"
)

var ErrLoopStopped = errors.New("server loop stopped")

type Device struct {
	cfg    *config.Config
	sink   display.Sink
	status *status.Status
	logger *slog.Logger

	srv       *server.Server
	clearOnce sync.Once
	clearErr  error
}

// New expects cfg to be validated and normalized.
func New(cfg *config.Config, sink display.Sink, logger *slog.Logger) *Device {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Device{
		cfg:    cfg,
		sink:   sink,
		status: status.New(),
		logger: logger,
	}
}

func (d *Device) Status() *status.Status {
	return d.status
}

// Start shows the splash and binds the listener. A bind failure is fatal:
// the device must not run without an address.
func (d *Device) Start(ctx context.Context) error {
	if err := d.splash(ctx); err != nil {
		return err
	}

	ctrl := control.New(d.status, d.sink, control.Config{
		Thickness:    glyph.Thickness(d.cfg.Display.Thickness),
		DefaultColor: glyph.ResolveColor(d.cfg.Display.DefaultColor),
	})

	srv, err := server.Serve(d.cfg.Server.Listen, ctrl.Handle, d.logger)
	if err != nil {
		return err
	}
	d.srv = srv
	d.logger.Info("server running",
		"addr", srv.Addr().String(),
		"api", "/?num=5&color=red",
	)
	return nil
}

// Addr is nil until Start succeeds.
func (d *Device) Addr() net.Addr {
	if d.srv == nil {
		return nil
	}
	return d.srv.Addr()
}

// Run serves until ctx is cancelled or the loop dies, then shuts down.
func (d *Device) Run(ctx context.Context) error {
	if err := d.Start(ctx); err != nil {
		d.Shutdown()
		return err
	}

	var runErr error
	select {
	case <-ctx.Done():
		d.logger.Info("shutdown requested")
	case <-d.srv.Done():
		runErr = ErrLoopStopped
	}

	if err := d.Shutdown(); err != nil {
		d.logger.Error("shutdown", "err", err)
	}
	return runErr
}

// Shutdown stops the loop and blanks the display. The blanking happens once
// however many times Shutdown is called.
func (d *Device) Shutdown() error {
	if d.srv != nil {
		if err := d.srv.Close(); err != nil {
			d.logger.Debug("closing listener", "err", err)
		}
	}

	d.clearOnce.Do(func() {
		blank := glyph.Clear()
		d.clearErr = d.sink.Show(&blank)
		d.logger.Info("display cleared, shutdown complete")
	})
	return d.clearErr
}

func (d *Device) splash(ctx context.Context) error {
	s := d.cfg.Splash
	if !s.Enabled {
		return nil
	}

	digit, ok := glyph.ToDigit(s.Digit)
	if !ok {
		digit = 0
	}
	frame := glyph.Render(digit, glyph.ResolveColor(s.Color), glyph.Thickness(d.cfg.Display.Thickness))
	if err := d.sink.Show(&frame); err != nil {
		d.logger.Error("splash failed", "err", err)
		return nil
	}

	if s.DurationMs <= 0 {
		return nil
	}
	t := time.NewTimer(time.Duration(s.DurationMs) * time.Millisecond)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

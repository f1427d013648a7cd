package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"tinygo.org/x/drivers"

	"github.com/nhdewitt/digit-matrix/internal/config"
	"github.com/nhdewitt/digit-matrix/internal/device"
	"github.com/nhdewitt/digit-matrix/internal/display"
	"github.com/nhdewitt/digit-matrix/internal/glyph"
	"github.com/nhdewitt/digit-matrix/internal/logging"
)

var (
	serveConfigPath string
	serveListen     string
	servePreview    bool
	serveLogLevel   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the display server",
	Long: `Run the display server until interrupted.

Connections are served one at a time. On shutdown the display is cleared.
With --preview the matrix is drawn in the terminal instead of being kept
in memory; press q, Esc or Ctrl+C to stop.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "YAML config file (defaults apply when omitted)")
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address, overrides server.listen")
	serveCmd.Flags().BoolVar(&servePreview, "preview", false, "Draw frames in the terminal")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.AddCommand(serveCmd)
}

func loadServeConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if serveConfigPath != "" {
		var err error
		if cfg, err = config.Load(serveConfigPath); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("listen") {
		cfg.Server.Listen = serveListen
	}
	if cmd.Flags().Changed("preview") {
		cfg.Display.Preview = servePreview
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = serveLogLevel
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	config.Normalize(cfg)
	return cfg, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var panel drivers.Displayer = display.NewMemory(glyph.Width, glyph.Height)
	logOut := os.Stderr
	if cfg.Display.Preview {
		term, err := display.NewTerminal()
		if err != nil {
			return err
		}
		defer term.Close()
		panel = term

		// the terminal owns stdout/stderr while previewing
		if logOut, err = os.OpenFile("matrixd.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer logOut.Close()

		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()
		go func() {
			select {
			case <-term.Interrupted():
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	logger, err := logging.New(logOut, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	logger.Info("starting display server",
		"listen", cfg.Server.Listen,
		"brightness", cfg.Display.Brightness,
		"thickness", cfg.Display.Thickness,
		"preview", cfg.Display.Preview,
	)

	dev := device.New(cfg, display.NewPanel(panel, cfg.Display.Brightness), logger)
	return dev.Run(ctx)
}

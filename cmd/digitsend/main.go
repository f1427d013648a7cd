package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhdewitt/digit-matrix/internal/client"
	"github.com/nhdewitt/digit-matrix/internal/logging"
)

var (
	addr       string
	timeout    time.Duration
	sideColors bool
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "digitsend",
	Short: "Send digits read from stdin to a digit matrix",
	Long: `digitsend reads one entry per line from stdin and forwards it to the
display over HTTP. A line is a digit optionally followed by a color:

  5
  3 red

With --side-colors the color is picked from the digit instead (1-3 green,
4-6 red, anything else white), as a dice tracker would.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&addr, "addr", "a", "192.168.0.185", "Display address (host, host:port or URL)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Second, "Per-request timeout")
	rootCmd.Flags().BoolVar(&sideColors, "side-colors", false, "Color digits by tracker side")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "digitsend:", err)
		os.Exit(1)
	}
}

type entry struct {
	digit int
	color string
}

func parseLine(line string) (entry, bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return entry{}, false, nil
	}
	if len(fields) > 2 {
		return entry{}, false, fmt.Errorf("want \"digit [color]\", got %q", line)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return entry{}, false, fmt.Errorf("bad digit %q", fields[0])
	}
	e := entry{digit: n}
	if len(fields) == 2 {
		e.color = fields[1]
	}
	return e, true, nil
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(cmd.ErrOrStderr(), logLevel, "text")
	if err != nil {
		return err
	}
	c, err := client.New(addr, timeout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return send(ctx, c, cmd.InOrStdin(), logger)
}

// send forwards every line of r. Failed sends are logged and skipped.
func send(ctx context.Context, c *client.Client, r io.Reader, logger *slog.Logger) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		e, ok, err := parseLine(sc.Text())
		if err != nil {
			logger.Warn("skipping line", "error", err)
			continue
		}
		if !ok {
			continue
		}
		if sideColors && e.color == "" {
			e.color = client.ColorForSide(e.digit)
		}

		if err := c.Show(ctx, e.digit, e.color); err != nil {
			logger.Error("send failed", "digit", e.digit, "color", e.color, "error", err)
			continue
		}
		logger.Info("sent", "digit", e.digit, "color", e.color)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("input error: %w", err)
	}
	return nil
}

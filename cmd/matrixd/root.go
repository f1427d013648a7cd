package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matrixd",
	Short: "Digit display server for a 32x32 LED matrix",
	Long: `matrixd renders a single digit (0-9) in a chosen color on a 32x32 LED
matrix and exposes a tiny HTTP control surface:

  GET /?num=5            show a white 5, reply "OK"
  GET /?num=3&color=red  show a red 3, reply "OK"
  GET /                  HTML control page with status and uptime`,
	SilenceUsage: true,
}

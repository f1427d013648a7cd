package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nhdewitt/digit-matrix/internal/glyph"
)

var (
	renderColor     string
	renderThickness int
)

var renderCmd = &cobra.Command{
	Use:   "render <digit>",
	Short: "Print a digit as the matrix would show it",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderColor, "color", "white", "Color name")
	renderCmd.Flags().IntVarP(&renderThickness, "thickness", "t", int(glyph.DefaultThickness), "Stroke thickness in pixels")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("digit must be a number: %w", err)
	}
	d, ok := glyph.ToDigit(n)
	if !ok {
		return fmt.Errorf("digit %d out of range 0-9", n)
	}

	b := glyph.Render(d, glyph.ResolveColor(renderColor), glyph.Thickness(renderThickness))
	fmt.Fprint(cmd.OutOrStdout(), b.Format('#', '.'))
	return nil
}

// jigsaw-bake pre-cuts a source image into per-piece puzzle sprites.
//
// It re-derives the same interlocking shapes as the in-app generator (both
// sit on the jigsaw package's shared core) and writes one masked, shadowed
// sprite per piece, a pre-stretched background, a metadata file and a
// generated Go asset module.
package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/jigsaw"
	"github.com/gogpu/jigsaw/internal/bake"
	"github.com/gogpu/jigsaw/internal/filter"
)

var (
	imagePath    string
	outputDir    string
	grid         string
	seed         int64
	pattern      string
	jitter       float64
	shadowRadius float64
	shadowOffset int
	pkgName      string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jigsaw-bake",
		Short: "Bake puzzle-piece sprites from a source image",
		Long: `Bake cuts a source image into interlocking jigsaw-piece sprites.

Examples:
  jigsaw-bake --imagePath=kitten.png --outputDir=assets/kitten --grid=4x6
  jigsaw-bake --imagePath=map.jpg --outputDir=out --grid=3x3 --seed=7 --pattern=checker`,
		RunE: runBake,
	}

	rootCmd.Flags().StringVar(&imagePath, "imagePath", "", "Source image file (PNG or JPEG)")
	rootCmd.Flags().StringVar(&outputDir, "outputDir", "", "Directory for baked assets")
	rootCmd.Flags().StringVar(&grid, "grid", "3x3", "Grid size as RxC, e.g. 4x6")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	rootCmd.Flags().StringVar(&pattern, "pattern", "auto", "Edge pattern: auto, random, checker or stripe")
	rootCmd.Flags().Float64Var(&jitter, "jitter", 0.06, "Tab-height jitter fraction")
	rootCmd.Flags().Float64Var(&shadowRadius, "shadow-radius", filter.DefaultShadow.Radius, "Shadow blur radius in pixels")
	rootCmd.Flags().IntVar(&shadowOffset, "shadow-offset", filter.DefaultShadow.OffsetY, "Shadow offset in pixels")
	rootCmd.Flags().StringVar(&pkgName, "package", "pieces", "Package name for the generated asset module")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	_ = rootCmd.MarkFlagRequired("imagePath")
	_ = rootCmd.MarkFlagRequired("outputDir")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBake(cmd *cobra.Command, args []string) error {
	if verbose {
		jigsaw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	rows, cols, err := parseGrid(grid)
	if err != nil {
		return err
	}

	policy, err := parsePattern(pattern)
	if err != nil {
		return err
	}

	notch := jigsaw.DefaultNotch
	notch.Jitter = jitter

	res, err := bake.Bake(bake.Options{
		ImagePath: imagePath,
		OutputDir: outputDir,
		Rows:      rows,
		Cols:      cols,
		Seed:      seed,
		Policy:    policy,
		Notch:     notch,
		Shadow: filter.ShadowStyle{
			OffsetX: shadowOffset,
			OffsetY: shadowOffset,
			Radius:  shadowRadius,
			Color:   color.NRGBA{A: 128},
		},
		Package: pkgName,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "baked %d sprites (%dx%d, piece %dpx) into %s\n",
		len(res.Pieces), res.Rows, res.Cols, res.PieceSize, res.Dir)
	return nil
}

// parseGrid parses a grid spec of the form "RxC", e.g. "4x6".
func parseGrid(s string) (rows, cols int, err error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid grid %q: want RxC, e.g. 4x6", s)
	}
	rows, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid rows %q: %w", parts[0], err)
	}
	cols, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid grid cols %q: %w", parts[1], err)
	}
	if rows < 1 || cols < 1 {
		return 0, 0, fmt.Errorf("%w: %dx%d", jigsaw.ErrInvalidGrid, rows, cols)
	}
	return rows, cols, nil
}

// parsePattern maps a pattern name to its edge policy.
// "auto" leaves the policy nil so the baker draws one per puzzle.
func parsePattern(s string) (jigsaw.EdgePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return nil, nil
	case "random":
		return jigsaw.RandomEdges, nil
	case "checker":
		return jigsaw.CheckerEdges, nil
	case "stripe":
		return jigsaw.StripeEdges, nil
	default:
		return nil, errors.New("pattern must be one of: auto, random, checker, stripe")
	}
}

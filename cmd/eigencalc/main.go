// Command eigencalc computes the exact eigendecomposition of a small
// matrix and optionally renders its real eigenvectors as an SVG diagram.
//
// Usage:
//
//	eigencalc -matrix "2,0;0,3"
//	eigencalc -matrix "0,-1;1,0" -svg out.svg
//
// Rows are separated by ';', entries within a row by ','. Configuration
// is layered from defaults, an optional YAML file (EIGENCALC_CONFIG),
// and EIGENCALC_-prefixed environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/Cheezcuits/EigenCalculator/diagram"
	"github.com/Cheezcuits/EigenCalculator/eigen"
	"github.com/Cheezcuits/EigenCalculator/internal/config"
)

func main() {
	matrixFlag := flag.String("matrix", "", `matrix rows, e.g. "2,0;0,3"`)
	svgFlag := flag.String("svg", "", "write the eigenvector diagram to this file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "eigencalc:", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel)

	if *matrixFlag == "" {
		fmt.Fprintln(os.Stderr, "eigencalc: -matrix is required")
		flag.Usage()
		os.Exit(2)
	}

	rows, err := parseMatrix(*matrixFlag)
	if err != nil {
		log.Error("parse matrix", "error", err)
		os.Exit(1)
	}

	res, err := eigen.Decompose(rows)
	if err != nil {
		log.Error("decompose", "error", err)
		os.Exit(1)
	}
	log.Debug("decomposed", "size", res.Size, "distinct_eigenvalues", len(res.Entries))

	printResult(os.Stdout, res)

	svgOut := cfg.SVGOut
	if *svgFlag != "" {
		svgOut = *svgFlag
	}
	if svgOut == "" {
		return
	}

	doc, err := diagram.Render(res,
		diagram.WithCanvasSize(cfg.CanvasSize),
		diagram.WithPadding(cfg.Padding),
		diagram.WithBasisColor(cfg.BasisColor),
		diagram.WithEigenvalueColor(cfg.EigenvalueColor),
	)
	if err != nil {
		if errors.Is(err, diagram.ErrNothingToDraw) {
			log.Warn("no real eigenvectors to draw, skipping diagram")
			return
		}
		log.Error("render diagram", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(svgOut, []byte(doc), 0o644); err != nil {
		log.Error("write diagram", "path", svgOut, "error", err)
		os.Exit(1)
	}
	log.Info("diagram written", "path", svgOut)
}

// newLogger builds a text slog.Logger on stderr at the configured level,
// keeping stdout clean for the result itself.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// parseMatrix turns "a,b;c,d" into row-major float rows. Shape checks are
// left to eigen.Decompose.
func parseMatrix(s string) ([][]float64, error) {
	rowSpecs := strings.Split(s, ";")
	rows := make([][]float64, 0, len(rowSpecs))
	for i, spec := range rowSpecs {
		cells := strings.Split(spec, ",")
		row := make([]float64, 0, len(cells))
		for j, cell := range cells {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, entry %d: %w", i+1, j+1, err)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// printResult writes the human-readable decomposition report.
func printResult(w *os.File, res *eigen.Result) {
	fmt.Fprintf(w, "Matrix size: %d×%d\n", res.Size, res.Size)
	fmt.Fprintf(w, "Determinant: %s\n", formatFloat(res.Determinant))
	fmt.Fprintf(w, "Characteristic polynomial: %s\n", res.CharPoly)
	fmt.Fprintf(w, "Factored form: %s\n", res.FactoredPoly)

	fmt.Fprintln(w, "\nEigenspaces:")
	for _, entry := range res.Entries {
		fmt.Fprintf(w, "  λ = %s (multiplicity %d)\n", entry.Value, entry.Multiplicity)
		if len(entry.Basis) == 0 {
			fmt.Fprintln(w, "    None (zero nullspace)")
			continue
		}
		for _, vec := range entry.Basis {
			parts := make([]string, len(vec))
			for i, c := range vec {
				parts[i] = c.String()
			}
			fmt.Fprintf(w, "    [%s]\n", strings.Join(parts, ", "))
		}
	}

	spectrum := make([]string, len(res.Spectrum))
	for i, s := range res.Spectrum {
		spectrum[i] = s.String()
	}
	fmt.Fprintf(w, "\nSpectrum: {%s}\n", strings.Join(spectrum, ", "))
}

// formatFloat renders a float in its shortest exact form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

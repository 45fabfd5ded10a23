package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/binzume/simplemath/batch"
	"github.com/binzume/simplemath/geom"
	"github.com/binzume/simplemath/numutil"
	"github.com/binzume/simplemath/plot"
	"github.com/spf13/cobra"
)

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}

// runOne evaluates a single operation through the batch evaluator.
func (a *app) runOne(ctx context.Context, op batch.Op) (any, error) {
	job := &batch.Job{Workers: 1, Ops: []batch.Op{op}}
	results, err := job.Run(ctx, a.logger)
	if err != nil {
		return nil, err
	}
	return results[0].Value, results[0].Err
}

func (a *app) scalarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scalar <op> <args...>",
		Short: "Evaluate a scalar operation",
		Long:  "Evaluate a scalar operation. Operations: " + strings.Join(batch.Ops(), ", "),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			v, err := a.runOne(cmd.Context(), batch.Op{Op: args[0], Args: values})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.format(v))
			return nil
		},
	}
}

func (a *app) vecCmd() *cobra.Command {
	var integer bool
	cmd := &cobra.Command{
		Use:   "vec <op> x1 y1 [x2 y2]",
		Short: "Evaluate a 2D vector operation",
		Args:  cobra.RangeArgs(3, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			op := batch.Op{Op: args[0], Int: integer}
			switch len(values) {
			case 2:
				op.A = values
			case 4:
				op.A, op.B = values[:2], values[2:]
			default:
				return fmt.Errorf("expected 2 or 4 coordinates, got %d", len(values))
			}
			v, err := a.runOne(cmd.Context(), op)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.format(v))
			return nil
		},
	}
	cmd.Flags().BoolVar(&integer, "int", false, "Use integer vectors")
	return cmd
}

func (a *app) batchCmd() *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch <job.yaml>",
		Short: "Run operations listed in a YAML job file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := batch.Load(args[0])
			if err != nil {
				return err
			}
			if workers > 0 {
				job.Workers = workers
			}
			a.logger.Debug("loaded job", "file", args[0], "ops", len(job.Ops))
			results, err := job.Run(cmd.Context(), a.logger)
			if err != nil {
				return err
			}
			failed := 0
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(out, "#%d %s: error: %v\n", r.Index, r.Op, r.Err)
					continue
				}
				fmt.Fprintf(out, "#%d %s: %s\n", r.Index, r.Op, a.format(r.Value))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d operations failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", getEnvInt("SIMPLEMATH_WORKERS", 0), "Concurrent workers (0 = use job file)")
	return cmd
}

var palette = []color.RGBA{
	{0xd6, 0x27, 0x28, 0xff},
	{0x1f, 0x77, 0xb4, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
}

func (a *app) plotCmd() *cobra.Command {
	var (
		out, format   string
		width, height int
		scale         float32
		points, path  bool
		fill          bool
	)
	cmd := &cobra.Command{
		Use:   "plot x1 y1 [x2 y2 ...]",
		Short: "Draw vectors from the origin into an image",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseFloats(args)
			if err != nil {
				return err
			}
			if len(values)%2 != 0 {
				return errors.New("coordinates must come in x y pairs")
			}
			if format == "" {
				format = filepath.Ext(out)
			}
			f, err := plot.ParseFormat(format)
			if err != nil {
				return err
			}

			canvas := plot.NewCanvas(width, height, scale)
			vs := make([]geom.Vector2, 0, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				vs = append(vs, geom.NewVector2(float32(values[i]), float32(values[i+1])))
			}
			if fill {
				canvas.FillPolygon(vs, palette[1])
			}
			var prev geom.Vector2
			for i, v := range vs {
				col := palette[i%len(palette)]
				switch {
				case points:
					canvas.DrawPoint(v, col)
				case path && i > 0:
					canvas.DrawSegment(prev, v, col)
				case !path && !fill:
					canvas.DrawVector(v, col)
				}
				prev = v
			}

			w, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := canvas.Encode(w, f); err != nil {
				w.Close()
				return err
			}
			a.logger.Info("wrote plot", "file", out, "vectors", len(vs))
			return w.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "plot.png", "Output file")
	cmd.Flags().StringVar(&format, "format", "", "Image format: png, bmp (default from file extension)")
	cmd.Flags().IntVar(&width, "width", 512, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", 512, "Image height in pixels")
	cmd.Flags().Float32Var(&scale, "scale", 32, "Pixels per unit")
	cmd.Flags().BoolVar(&points, "points", false, "Draw points instead of vectors")
	cmd.Flags().BoolVar(&path, "path", false, "Connect consecutive points with segments")
	cmd.Flags().BoolVar(&fill, "fill", false, "Fill the polygon through all points")
	return cmd
}

func (a *app) triangularCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "triangular <n> <m>",
		Short: "Apply 1 + ... + n to n, m times",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			m, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			steps, err := numutil.TriangularChain(n, m)
			out := cmd.OutOrStdout()
			for _, s := range steps {
				a.printer.Fprintf(out, "1 + ... + %d = %d\n", s.Limit, s.Total)
			}
			if err != nil {
				return err
			}
			var total int64
			if len(steps) > 0 {
				total = steps[len(steps)-1].Total
			}
			a.printer.Fprintf(out, "\nSum(%d, %d) = %d\n", n, m, total)
			return nil
		},
	}
}

func (a *app) binaryCmd() *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "binary <value>",
		Short: "Print the low bits of an integer in binary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 10, 32)
			if err != nil {
				return err
			}
			s, err := numutil.IntToBinary(int32(v), width)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d in binary is:\t%s\n", v, s)
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", numutil.DefaultBinaryWidth, "Number of bits")
	return cmd
}

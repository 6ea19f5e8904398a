package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/wudi/geomkit/adapt"
	"github.com/wudi/geomkit/channel"
	"github.com/wudi/geomkit/geom"
	"github.com/wudi/geomkit/observability"
	"github.com/wudi/geomkit/scripting"
)

type options struct {
	list    bool
	json    bool
	verbose bool
	from    channel.Kind
	to      channel.Kind
	color   bool
	script  string
	values  []float64
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "geomconv: %v\n", err)
		os.Exit(2)
	}
	if err := run(context.Background(), opts, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "geomconv: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("geomconv", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: geomconv -list | geomconv -from <kind> -to <kind> [flags] <x,y[,z[,w]]>\n")
		fs.PrintDefaults()
	}
	fs.BoolVar(&opts.list, "list", false, "Print the registered descriptors in lookup order")
	fs.BoolVar(&opts.json, "json", false, "Emit JSON instead of text")
	fs.BoolVar(&opts.verbose, "v", false, "Log registry activity to stderr")
	fs.BoolVar(&opts.color, "color", false, "Treat the input as a color (3 or 4 components)")
	fs.StringVar(&opts.script, "script", "", "JavaScript file defining narrow(v) and widen(v) for this conversion")
	from := fs.String("from", "float64", "Source channel (float64, float32, int32, uint8)")
	to := fs.String("to", "float32", "Destination channel")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.list {
		return opts, nil
	}

	var err error
	if opts.from, err = channel.ParseKind(*from); err != nil {
		return options{}, err
	}
	if opts.to, err = channel.ParseKind(*to); err != nil {
		return options{}, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return options{}, fmt.Errorf("missing components")
	}
	if opts.values, err = parseValues(fs.Arg(0)); err != nil {
		return options{}, err
	}
	if opts.color && len(opts.values) == 2 {
		return options{}, fmt.Errorf("a color needs 3 or 4 components")
	}
	return opts, nil
}

func parseValues(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 4 {
		return nil, fmt.Errorf("expected 2 to 4 components, got %d", len(parts))
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func run(ctx context.Context, opts options, stdout, stderr io.Writer) error {
	logger := observability.Logger(observability.NopLogger{})
	if opts.verbose {
		logger = observability.NewSlogLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if opts.list {
		r := adapt.New(adapt.WithLogger(logger))
		return emitDescriptors(stdout, r.Descriptors(), opts.json)
	}

	res, err := convert(ctx, opts, logger)
	if err != nil {
		return err
	}
	return emitResult(stdout, res, opts.json)
}

type result struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	Descriptor string    `json:"descriptor,omitempty"`
	Values     []float64 `json:"values"`
}

func convert(ctx context.Context, opts options, logger observability.Logger) (result, error) {
	switch opts.from {
	case channel.Float64:
		return convertFrom[float64](ctx, opts, logger)
	case channel.Float32:
		return convertFrom[float32](ctx, opts, logger)
	case channel.Int32:
		return convertFrom[int32](ctx, opts, logger)
	case channel.Uint8:
		return convertFrom[uint8](ctx, opts, logger)
	}
	return result{}, fmt.Errorf("unknown channel %v", opts.from)
}

func convertFrom[S channel.Type](ctx context.Context, opts options, logger observability.Logger) (result, error) {
	switch opts.to {
	case channel.Float64:
		return convertPair[S, float64](ctx, opts, logger)
	case channel.Float32:
		return convertPair[S, float32](ctx, opts, logger)
	case channel.Int32:
		return convertPair[S, int32](ctx, opts, logger)
	case channel.Uint8:
		return convertPair[S, uint8](ctx, opts, logger)
	}
	return result{}, fmt.Errorf("unknown channel %v", opts.to)
}

func convertPair[S, D channel.Type](ctx context.Context, opts options, logger observability.Logger) (result, error) {
	regOpts := []adapt.Option{adapt.WithLogger(logger)}
	if opts.script != "" {
		src, err := os.ReadFile(opts.script)
		if err != nil {
			return result{}, fmt.Errorf("read script: %w", err)
		}
		p, err := scripting.CompilePolicy[S, D](ctx, string(src), logger)
		if err != nil {
			return result{}, err
		}
		regOpts = append(regOpts, adapt.WithPolicy(p, adapt.ColorWeight-1, adapt.TagNone))
	}
	r := adapt.New(regOpts...)

	src := source[S](opts.values, opts.color)
	res := result{From: opts.from.String(), To: opts.to.String()}

	var err error
	switch len(opts.values) {
	case 2:
		res.Values, err = read2(r, src, adapt.Tuple2Of[D](), &res)
	case 3:
		res.Values, err = read3(r, src, adapt.Tuple3Of[D](), &res)
	case 4:
		res.Values, err = read4(r, src, adapt.Tuple4Of[D](), &res)
	}
	return res, err
}

// source builds a value stored in channel S. Inputs are coerced with the
// default cast, so -from uint8 with 300 saturates to 255.
func source[S channel.Type](vals []float64, color bool) any {
	c := make([]S, len(vals))
	for i, v := range vals {
		c[i] = channel.Cast[float64, S](v)
	}
	switch len(c) {
	case 2:
		return &geom.Vec2[S]{c[0], c[1]}
	case 3:
		if color {
			return &geom.RGB[S]{c[0], c[1], c[2]}
		}
		return &geom.Vec3[S]{c[0], c[1], c[2]}
	default:
		if color {
			return &geom.RGBA[S]{c[0], c[1], c[2], c[3]}
		}
		return &geom.Vec4[S]{c[0], c[1], c[2], c[3]}
	}
}

func describe[T any](r *adapt.Registry, src any, to adapt.Target[T], res *result) {
	if d, ok := r.Select(src, to.Capability()); ok {
		res.Descriptor = d.String()
	}
}

func read2[D channel.Type](r *adapt.Registry, src any, to adapt.Target[geom.Tuple2[D]], res *result) ([]float64, error) {
	t, err := adapt.Convert(r, src, to)
	if err != nil {
		return nil, err
	}
	describe(r, src, to, res)
	return []float64{float64(t.X()), float64(t.Y())}, nil
}

func read3[D channel.Type](r *adapt.Registry, src any, to adapt.Target[geom.Tuple3[D]], res *result) ([]float64, error) {
	t, err := adapt.Convert(r, src, to)
	if err != nil {
		return nil, err
	}
	describe(r, src, to, res)
	return []float64{float64(t.X()), float64(t.Y()), float64(t.Z())}, nil
}

func read4[D channel.Type](r *adapt.Registry, src any, to adapt.Target[geom.Tuple4[D]], res *result) ([]float64, error) {
	t, err := adapt.Convert(r, src, to)
	if err != nil {
		return nil, err
	}
	describe(r, src, to, res)
	return []float64{float64(t.X()), float64(t.Y()), float64(t.Z()), float64(t.W())}, nil
}

func emitDescriptors(w io.Writer, ds []adapt.Descriptor, asJSON bool) error {
	if asJSON {
		lines := make([]string, len(ds))
		for i, d := range ds {
			lines[i] = d.String()
		}
		return emitJSON(w, lines)
	}
	for _, d := range ds {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}

func emitResult(w io.Writer, res result, asJSON bool) error {
	if asJSON {
		return emitJSON(w, res)
	}
	bits := 64
	if res.To == channel.Float32.String() {
		bits = 32
	}
	parts := make([]string, len(res.Values))
	for i, v := range res.Values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, bits)
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, ","))
	return err
}

func emitJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

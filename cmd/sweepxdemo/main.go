package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	sweepx "github.com/jiangshengdev/sweep-line"
	"github.com/jiangshengdev/sweep-line/limits"
	"github.com/jiangshengdev/sweep-line/preprocess"
)

// inputSegmentJSON is the on-the-wire shape of one segment in an --input
// file: a 4-element [ax, ay, bx, by] array of floats in [-1, +1].
type inputSegmentJSON [4]float64

func main() {
	cmd := &cli.Command{
		Name:      "sweepxdemo",
		Usage:     "Runs the exact sweep-line intersection engine and prints byte-stable session JSON to stdout",
		UsageText: "sweepxdemo --input <file> --backend <array|treap|rbt>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path to a JSON file of [ax,ay,bx,by] segments; '-' or omitted reads stdin",
				OnlyOnce: true,
				Value:    "-",
			},
			&cli.StringFlag{
				Name:     "backend",
				Usage:    "Status-structure backend: array, treap, or rbt",
				OnlyOnce: true,
				Value:    "array",
				Validator: func(s string) error {
					switch s {
					case "array", "treap", "rbt":
						return nil
					default:
						return fmt.Errorf("backend must be one of array, treap, rbt")
					}
				},
			},
			&cli.IntFlag{
				Name:     "number",
				Usage:    "Generate this many random segments instead of reading --input (0 reads --input)",
				OnlyOnce: true,
				Value:    0,
				Validator: func(n int64) error {
					if n < 0 {
						return fmt.Errorf("number must not be negative")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "max-session-bytes",
				Usage:    "Overrides the session JSON byte ceiling (0 keeps the default)",
				OnlyOnce: true,
				Value:    0,
			},
		},
		HideVersion: true,
		Action:      app,
		Authors:     []any{"https://github.com/jiangshengdev"},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	n := cmd.Int("number")

	var inputs []preprocess.InputSegment
	if n > 0 {
		inputs = randomInputSegments(n)
	} else {
		raw, err := readInput(cmd.String("input"))
		if err != nil {
			return err
		}
		inputs, err = decodeInputSegments(raw)
		if err != nil {
			return err
		}
	}

	backend, err := parseBackend(cmd.String("backend"))
	if err != nil {
		return err
	}

	var opts []limits.Option
	if maxBytes := cmd.Int("max-session-bytes"); maxBytes > 0 {
		opts = append(opts, limits.WithMaxSessionBytes(maxBytes))
	}

	out, err := sweepx.WriteSession(inputs, backend, limits.Default(opts...))
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}

func parseBackend(s string) (sweepx.Backend, error) {
	switch s {
	case "array":
		return sweepx.ArrayBackend, nil
	case "treap":
		return sweepx.TreapBackend, nil
	case "rbt":
		return sweepx.RBTBackend, nil
	default:
		return 0, fmt.Errorf("unknown backend %q", s)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func decodeInputSegments(raw []byte) ([]preprocess.InputSegment, error) {
	var wire []inputSegmentJSON
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("decoding input segments: %w", err)
	}
	out := make([]preprocess.InputSegment, len(wire))
	for i, s := range wire {
		out[i] = preprocess.InputSegment{AX: s[0], AY: s[1], BX: s[2], BY: s[3]}
	}
	return out, nil
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

// randomInputSegments generates n random segments on the [-1, +1] plane,
// mirroring github.com/mikenye/geom2d/cmd/genlinesegments's random-generator
// shape but against this engine's normalized coordinate domain, skipping
// degenerate (zero-length) draws the same way.
func randomInputSegments(n int64) []preprocess.InputSegment {
	const scale = 1_000_000
	out := make([]preprocess.InputSegment, n)
	for i := int64(0); i < n; i++ {
		for {
			out[i] = preprocess.InputSegment{
				AX: float64(randomIntInRange(-scale, scale)) / scale,
				AY: float64(randomIntInRange(-scale, scale)) / scale,
				BX: float64(randomIntInRange(-scale, scale)) / scale,
				BY: float64(randomIntInRange(-scale, scale)) / scale,
			}
			if out[i].AX != out[i].BX || out[i].AY != out[i].BY {
				break
			}
		}
	}
	return out
}

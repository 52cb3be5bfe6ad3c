// Command spcgen builds a fatigue stress spectrum from a YAML case file,
// prints its statistics, and saves it in max-min-cycle format.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/fatiguelab/spectrum/loadcase"
)

// traceSamplingRate is the sampling rate for sweep excitation traces. The
// sweep band tops out at 100 Hz, so 1 kHz resolves every cycle comfortably.
const traceSamplingRate = 1000 // Hz

func init() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))
}

func main() {
	casePath := flag.String("case", "case.yaml", "YAML case file to build the spectrum from")
	outPath := flag.String("out", "", "override the output filename from the case file")
	quiet := flag.Bool("quiet", false, "suppress the per-event echo on save")
	tracePath := flag.String("trace", "", "write sine sweep excitation histories to this CSV file")
	watch := flag.Bool("watch", false, "re-run whenever the case file changes")
	flag.Parse()

	if err := run(*casePath, *outPath, *tracePath, *quiet); err != nil {
		slog.Error("spectrum generation failed", "case", *casePath, "err", err)
		if !*watch {
			os.Exit(1)
		}
	}

	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("watching for changes", "case", *casePath)

	err := loadcase.Watch(ctx, *casePath,
		func(f *loadcase.File) {
			slog.Info("case file reloaded", "case", *casePath, "cases", len(f.Cases))
			if err := generate(f, *outPath, *tracePath, *quiet); err != nil {
				slog.Error("spectrum generation failed", "case", *casePath, "err", err)
			}
		},
		func(err error) {
			slog.Error("reload failed, keeping previous spectrum", "case", *casePath, "err", err)
		})
	if err != nil {
		slog.Error("watch failed", "case", *casePath, "err", err)
		os.Exit(1)
	}
}

func run(casePath, outPath, tracePath string, quiet bool) error {
	f, err := loadcase.Load(casePath)
	if err != nil {
		return err
	}
	return generate(f, outPath, tracePath, quiet)
}

func generate(f *loadcase.File, outPath, tracePath string, quiet bool) error {
	if outPath != "" {
		f.Spectrum.Filename = outPath
	}

	s, err := f.BuildSpectrum()
	if err != nil {
		return err
	}

	stats, err := s.Stats()
	if err != nil {
		return err
	}
	stats.Report(os.Stdout)

	if err := s.Save(!quiet); err != nil {
		return err
	}
	slog.Info("spectrum saved", "file", s.Filename(), "events", s.Len())

	if tracePath != "" {
		if err := writeTraces(f.Cases, tracePath); err != nil {
			return err
		}
		slog.Info("sweep traces written", "file", tracePath)
	}

	return nil
}

// writeTraces samples the excitation time history of every traceable case
// and writes them all to one CSV file.
func writeTraces(cases loadcase.Container, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{"case", "t", "value"}); err != nil {
		f.Close()
		return err
	}

	for _, cs := range cases {
		tracer, ok := cs.(loadcase.Tracer)
		if !ok {
			continue
		}

		samples, err := tracer.Trace(traceSamplingRate)
		if err != nil {
			f.Close()
			return err
		}

		for i, v := range samples {
			t := float64(i) / traceSamplingRate
			record := []string{
				cs.Name(),
				strconv.FormatFloat(t, 'f', 4, 64),
				strconv.FormatFloat(v, 'g', -1, 64),
			}
			if err := w.Write(record); err != nil {
				f.Close()
				return err
			}
		}

		slog.Info("sweep trace sampled", "case", cs.Name(), "id", cs.ID(), "samples", len(samples))
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/decred/turborand"
	"github.com/decred/turborand/entropy"
	"github.com/decred/turborand/internal/progresslog"
	"github.com/decred/turborand/internal/version"
	"github.com/decred/turborand/sampleconfig"
	flags "github.com/jessevdk/go-flags"
	"golang.org/x/term"
)

// stateful is the persistence surface shared by every generator handle.
type stateful interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// wyrandSeed returns the WyRand seed selected by the configuration.
func wyrandSeed(cfg *config) (uint64, error) {
	switch {
	case cfg.Seed != "":
		seed, err := strconv.ParseUint(cfg.Seed, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid wyrand seed %q: %w", cfg.Seed, err)
		}
		return seed, nil
	case cfg.SeedPhrase != "":
		return turborand.DeriveSeed([]byte(cfg.SeedPhrase)), nil
	}
	log.Debugf("Seeding from entropy")
	return turborand.SeedFromReader(entropy.Reader())
}

// chachaSeed returns the ChaCha8 seed selected by the configuration.
func chachaSeed(cfg *config) (turborand.ChaChaSeed, error) {
	var seed turborand.ChaChaSeed
	switch {
	case cfg.Seed != "":
		b, err := hex.DecodeString(strings.TrimPrefix(cfg.Seed, "0x"))
		if err != nil || len(b) != len(seed) {
			return seed, fmt.Errorf("invalid chacha8 seed: want %d hex "+
				"encoded bytes", len(seed))
		}
		copy(seed[:], b)
		return seed, nil
	case cfg.SeedPhrase != "":
		return turborand.DeriveChaChaSeed([]byte(cfg.SeedPhrase)), nil
	}
	log.Debugf("Seeding from entropy")
	return turborand.ChaChaSeedFromReader(entropy.Reader())
}

// run builds the configured generator and writes the requested values to out.
// Canceling ctx stops generation early.  The state is still saved when
// requested so a later run resumes right after the last value written.
func run(ctx context.Context, cfg *config, out io.Writer) error {
	switch cfg.Algo {
	case algoWyRand:
		var seed uint64
		if cfg.LoadState == "" {
			var err error
			if seed, err = wyrandSeed(cfg); err != nil {
				return err
			}
		}
		if cfg.Shared {
			rng := turborand.NewAtomicRng(seed)
			return generate(ctx, cfg, out, rng, &rng.Rand)
		}
		rng := turborand.NewRng(seed)
		return generate(ctx, cfg, out, rng, &rng.Rand)

	case algoChaCha8:
		var seed turborand.ChaChaSeed
		if cfg.LoadState == "" {
			var err error
			if seed, err = chachaSeed(cfg); err != nil {
				return err
			}
		}
		if cfg.Shared {
			rng := turborand.NewAtomicChaChaRng(seed)
			return generate(ctx, cfg, out, rng, &rng.Rand)
		}
		rng := turborand.NewChaChaRng(seed)
		return generate(ctx, cfg, out, rng, &rng.Rand)
	}
	return fmt.Errorf("unknown algorithm %q", cfg.Algo)
}

// generate restores state when requested, writes the values and saves state
// when requested.  h and r are the same generator seen as its persistence
// surface and as its derived operations.
func generate[S turborand.Source](ctx context.Context, cfg *config, out io.Writer, h stateful, r *turborand.Rand[S]) error {
	if cfg.LoadState != "" {
		data, err := os.ReadFile(cfg.LoadState)
		if err != nil {
			return err
		}
		if err := h.UnmarshalBinary(data); err != nil {
			return fmt.Errorf("unable to load state from %s: %w",
				cfg.LoadState, err)
		}
		log.Debugf("Resumed %s generator from %s", cfg.Algo, cfg.LoadState)
	}

	w := bufio.NewWriter(out)
	progress := progresslog.New("Generated", log)
	genErr := writeValues(ctx, cfg, w, r, progress)
	progress.Flush()
	if genErr != nil && !errors.Is(genErr, context.Canceled) {
		return genErr
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if cfg.SaveState != "" {
		data, err := h.MarshalBinary()
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.SaveState, data, 0600); err != nil {
			return err
		}
		log.Debugf("Saved %s generator state to %s", cfg.Algo, cfg.SaveState)
	}
	return genErr
}

// parseWeighted splits name=weight items.
func parseWeighted(items []string) ([]string, []float64, error) {
	names := make([]string, len(items))
	weights := make([]float64, len(items))
	for i, item := range items {
		name, w, ok := strings.Cut(item, "=")
		if !ok {
			return nil, nil, fmt.Errorf("weighted item %q is not of the "+
				"form name=weight", item)
		}
		weight, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("weighted item %q: %w", item, err)
		}
		names[i], weights[i] = name, weight
	}
	return names, weights, nil
}

// writeValues writes cfg.Count values of the configured type to w and reports
// them to progress.  It returns the context error when ctx is canceled part way
// through a value stream.
func writeValues[S turborand.Source](ctx context.Context, cfg *config, w io.Writer, r *turborand.Rand[S], progress *progresslog.Logger) error {
	switch cfg.Type {
	case "bytes":
		b := make([]byte, cfg.Count)
		r.Fill(b)
		progress.LogProgress(uint64(len(b)), uint64(len(b)), false)
		if cfg.Raw {
			_, err := w.Write(b)
			return err
		}
		_, err := fmt.Fprintln(w, hex.EncodeToString(b))
		return err

	case "alnum":
		progress.LogProgress(uint64(cfg.Count), uint64(cfg.Count), false)
		_, err := fmt.Fprintln(w, r.AlphanumericString(cfg.Count))
		return err

	case "shuffle":
		items := append([]string(nil), cfg.Items...)
		turborand.Shuffle(r, items)
		return writeLines(w, items)

	case "sample":
		return writeLines(w, turborand.SampleMultiple(r, cfg.Items, cfg.Count))

	case "weighted":
		names, weights, err := parseWeighted(cfg.Items)
		if err != nil {
			return err
		}
		for i := 0; i < cfg.Count; i++ {
			if shutdownRequested(ctx) {
				return ctx.Err()
			}
			idx, ok := r.WeightedSampleIndex(len(names), func(i int) float64 {
				return weights[i]
			})
			if !ok {
				return errors.New("no item has a positive weight")
			}
			if _, err := fmt.Fprintln(w, names[idx]); err != nil {
				return err
			}
			progress.LogProgress(1, uint64(len(names[idx])+1), false)
		}
		return nil
	}

	for i := 0; i < cfg.Count; i++ {
		if shutdownRequested(ctx) {
			return ctx.Err()
		}
		var v string
		switch cfg.Type {
		case "u64":
			v = strconv.FormatUint(r.Uint64(), 10)
		case "u32":
			v = strconv.FormatUint(uint64(r.Uint32()), 10)
		case "f64":
			v = strconv.FormatFloat(r.Float64(), 'g', -1, 64)
		case "bool":
			v = strconv.FormatBool(r.Bool())
		case "range":
			v = strconv.FormatInt(r.Int64Range(cfg.Low, cfg.High), 10)
		default:
			return fmt.Errorf("unknown output type %q", cfg.Type)
		}
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
		progress.LogProgress(1, uint64(len(v)+1), false)
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// turborandMain is the real main function for turborand.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit() is
// called.
func turborandMain() error {
	cfg, err := loadConfig(os.Args[1:])
	switch {
	case errors.Is(err, errShowVersion):
		fmt.Printf("turborand version %s (Go version %s %s/%s)\n",
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	case errors.Is(err, errShowSample):
		fmt.Print(sampleconfig.Turborand())
		return nil
	case errors.Is(err, errListSubsystems):
		fmt.Println("Supported subsystems", supportedSubsystems())
		return nil
	case err != nil:
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Println(err)
			return nil
		}
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	if cfg.LogDir != "" {
		err := initLogRotator(filepath.Join(cfg.LogDir, logFilename),
			defaultLogSizeKiB, defaultMaxLogs)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return err
		}
		defer logRotator.Close()
	}

	if cfg.Raw && term.IsTerminal(int(os.Stdout.Fd())) {
		err := errors.New("refusing to write raw bytes to a terminal")
		log.Error(err)
		return err
	}

	// Write cpu profile if requested.
	if cfg.CPUProfile != "" {
		f, err := os.Create(cfg.CPUProfile)
		if err != nil {
			log.Errorf("Unable to create cpu profile: %v", err)
			return err
		}
		pprof.StartCPUProfile(f)
		defer f.Close()
		defer pprof.StopCPUProfile()
	}

	// Write mem profile if requested.
	if cfg.MemProfile != "" {
		f, err := os.Create(cfg.MemProfile)
		if err != nil {
			log.Errorf("Unable to create mem profile: %v", err)
			return err
		}
		defer f.Close()
		defer pprof.WriteHeapProfile(f)
	}

	log.Debugf("Generating %d %s values with %s (shared %v)", cfg.Count,
		cfg.Type, cfg.Algo, cfg.Shared)
	err = run(shutdownListener(), cfg, os.Stdout)
	switch {
	case errors.Is(err, context.Canceled):
		log.Infof("Generation interrupted")
	case err != nil:
		log.Errorf("%v", err)
	}
	return err
}

func main() {
	// Work around defer not working after os.Exit()
	if err := turborandMain(); err != nil {
		os.Exit(1)
	}
}

// Command ildinfo prints the sections and frames of an ILDA (.ild) file
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/mishiro-goudou-company/ilda"
	"github.com/mishiro-goudou-company/ilda/dac"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ildinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "optional TOML config file")
	strict := fs.Bool("strict", false, "fail on corrupt input instead of stopping quietly")
	headersOnly := fs.Bool("headers", false, "list section headers without decoding points")
	maxFrames := fs.Int("max-frames", -1, "stop after this many frames (0 = no limit)")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ildinfo [flags] <file.ild>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "ildinfo: %v\n", err)
		return 1
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			cfg.Strict = *strict
		case "headers":
			cfg.HeadersOnly = *headersOnly
		case "max-frames":
			cfg.MaxFrames = max(*maxFrames, 0)
		case "v":
			if *verbose {
				cfg.LogLevel = zerolog.DebugLevel
			}
		}
	})

	logger := newLogger(stderr, cfg.LogLevel)
	name := fs.Arg(0)
	result, err := ilda.ParseFile(name, cfg.parseOptions(&logger))
	if err != nil {
		logger.Error().Err(err).Str("file", name).Msg("parse failed")
		if result == nil {
			return 1
		}
	}
	if cfg.HeadersOnly {
		printHeaders(stdout, result.Headers)
	} else {
		printFrames(stdout, result.Frames)
	}
	printSummary(stdout, result)
	if !cfg.HeadersOnly {
		converted, cerr := dac.Convert(result.Frames, cfg.DAC)
		if cerr != nil {
			logger.Error().Err(cerr).Msg("dac conversion failed")
			return 1
		}
		total := 0
		for _, pts := range converted {
			total += len(pts)
		}
		fmt.Fprintf(stdout, "dac: %d frames, %d points (%d-bit, max %d points/frame)\n",
			len(converted), total, cfg.DAC.Bits, cfg.DAC.MaxPoints)
	}
	if err != nil {
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Str("app", "ildinfo").Logger()
}

func printHeaders(w io.Writer, headers []ilda.Header) {
	for i, h := range headers {
		fmt.Fprintf(w, "%4d  %-13s  %-8s  %-8s  records=%d  frame=%d/%d\n",
			i, h.Format, h.Name, h.Company, h.RecordCount, h.FrameNumber, h.TotalFrames)
	}
}

func printFrames(w io.Writer, frames []ilda.Frame) {
	for i, f := range frames {
		fmt.Fprintf(w, "%4d  %-13s  %-8s  %-8s  points=%d  blanked=%d  %016x\n",
			i, f.Format, f.Name, f.Company, len(f.Points), f.BlankedPoints(), f.Fingerprint())
	}
}

func printSummary(w io.Writer, result *ilda.Result) {
	s := ilda.Summarize(result.Frames)
	fmt.Fprintf(w, "sections: %d  frames: %d (%d distinct)  points: %d (%d blanked, max %d/frame)\n",
		len(result.Headers), s.Frames, s.UniqueFrames, s.Points, s.BlankedPoints, s.MaxPoints)
	formats := make([]ilda.FormatCode, 0, len(s.FramesByFormat))
	for f := range s.FramesByFormat {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	for _, f := range formats {
		fmt.Fprintf(w, "  %s: %d frames\n", f, s.FramesByFormat[f])
	}
	fmt.Fprintf(w, "stopped: %s at 0x%X after %d bytes\n", result.Reason, result.StopOffset, result.BytesRead)
}

// Command urlparser is the sample CLI driver for the urlparser
// package: interactive mode reads URLs from stdin against an optional
// base, -g/-t read a samples file (spec.md §6's COMMENT:/BASE:/URL:/
// SET: format) and emit a JSON or human-readable report.
//
// There is no CLI-flag library in the example pack for this domain,
// so flag parsing stays on the standard library's flag package; every
// other ambient concern (logging, config) follows the pack's stack.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	upaurl "github.com/upa-url/upa-sub001"
	"github.com/upa-url/upa-sub001/internal/harness"
	"github.com/upa-url/upa-sub001/internal/urlconfig"
)

func newLogger(jsonMode bool) zerolog.Logger {
	var w = os.Stderr
	if jsonMode {
		return zerolog.New(w).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).With().Timestamp().Logger()
}

func main() {
	genReport := flag.String("g", "", "read samples file, emit JSON report")
	textReport := flag.String("t", "", "read samples file, emit human-readable report")
	flag.Parse()

	switch {
	case *genReport != "":
		runReport(*genReport, true)
	case *textReport != "":
		runReport(*textReport, false)
	default:
		runInteractive(flag.Arg(0))
	}
}

func runReport(path string, jsonMode bool) {
	logger := newLogger(true)

	f, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("cannot open samples file")
		os.Exit(1)
	}
	defer f.Close()

	cases, err := harness.Parse(f)
	if err != nil {
		logger.Error().Err(err).Msg("cannot parse samples file")
		os.Exit(1)
	}

	results := harness.Run(cases, logger)

	failures := 0
	for _, r := range results {
		if r.Failed {
			failures++
		}
	}
	logger.Info().Int("total", len(results)).Int("failed", failures).Msg("harness run complete")

	if jsonMode {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(results)
		return
	}

	for _, r := range results {
		status := "PASS"
		if r.Failed {
			status = "FAIL"
		}
		fmt.Printf("%-4s line %d: %s\n", status, r.Case.Line, r.Case.URL)
		if r.Failed {
			fmt.Printf("     want %q got %q (%s)\n", r.Case.Want, r.Got, r.Message)
		}
	}
}

func runInteractive(baseArg string) {
	logger := newLogger(false)

	var base *upaurl.URL
	if baseArg != "" {
		b, err := upaurl.Parse(baseArg)
		if err != nil {
			logger.Warn().Err(err).Str("base", baseArg).Msg("invalid base, ignoring")
		} else {
			base = b
		}
	}

	opts := upaurl.ParseOptions{MaxInputLength: urlconfig.MaxInputLength()}
	if urlconfig.ReportValidationErrors() {
		opts.OnValidationError = func(msg string) {
			logger.Debug().Str("validation", msg).Msg("validation error")
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		u, err := upaurl.ParseWithOptions(line, base, opts)
		if err != nil {
			logger.Warn().Err(err).Str("input", line).Msg("parse failed")
			fmt.Println("failure:", err)
			continue
		}
		fmt.Println(u.Href())
	}
}

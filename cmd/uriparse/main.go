// Command uriparse parses the URIs given as arguments and prints their components.
//
// Usage:
//
//	uriparse [flags] URI...
//
// Defaults for the flags are taken from URIPARSE_* environment variables
// and from an optional .env file (URIPARSE_ENV_FILE overrides its path).
package main

//go:generate go tool errtrace -w .

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/log"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stdout, os.Stderr))
}

func run(args, environ []string, stdout, stderr io.Writer) int {
	cfg, uris, err := loadConfig(args, environ, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if len(uris) == 0 {
		fmt.Fprintln(stderr, "Usage: uriparse [flags] URI...")
		return exitUsage
	}

	logger, err := cfg.logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	parser, err := cfg.parser(logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	p := &printer{rfc: cfg.RFC, dns: cfg.DNS}
	var (
		errs    []error
		printed int
	)
	for _, in := range uris {
		u, err := parser.Parse([]byte(in))
		if err != nil {
			errs = append(errs, fmt.Errorf("%q: %w", in, err))
			continue
		}
		logger.Debug("parsed URI", "input", in, "uri", log.FmtValue(u, false))
		if printed > 0 {
			fmt.Fprintln(stdout)
		}
		if _, err := p.writeURI(stdout, in, u); err != nil {
			fmt.Fprintln(stderr, err)
			return exitFail
		}
		printed++
	}

	if err := errorutil.JoinPrefix("failed to parse", errs...); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFail
	}
	return exitOK
}

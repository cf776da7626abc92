package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"log/slog"

	"braces.dev/errtrace"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ghettovoice/rfc3986/internal/errorutil"
	"github.com/ghettovoice/rfc3986/internal/log"
	"github.com/ghettovoice/rfc3986/uri"
)

const (
	envPrefix  = "URIPARSE_"
	envFileVar = envPrefix + "ENV_FILE"
	envFileDef = ".env"
)

// config holds the command settings.
// Values come from the environment first, flags override them.
type config struct {
	Overflow     string `env:"OVERFLOW" envDefault:"stop"`
	LeadingZeros string `env:"LEADING_ZEROS" envDefault:"allow"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"console"`
	RFC          bool   `env:"RFC"`
	DNS          bool   `env:"DNS"`
}

// loadEnv builds the config defaults from environ and an optional env file.
// Variables already present in environ win over the file.
func loadEnv(environ []string) (*config, error) {
	vars := env.ToMap(environ)

	file := vars[envFileVar]
	if file == "" {
		file = envFileDef
	}
	fileVars, err := godotenv.Read(file)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errtrace.Wrap(err)
	}
	for k, v := range fileVars {
		if _, ok := vars[k]; !ok {
			vars[k] = v
		}
	}

	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      envPrefix,
		Environment: vars,
	}); err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &cfg, nil
}

// loadConfig loads env defaults and then applies command line flags.
// It returns the remaining positional arguments.
func loadConfig(args, environ []string, stderr io.Writer) (*config, []string, error) {
	cfg, err := loadEnv(environ)
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}

	flags := flag.NewFlagSet("uriparse", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		_, _ = io.WriteString(stderr, "Usage: uriparse [flags] URI...\n")
		flags.PrintDefaults()
	}
	flags.StringVar(&cfg.Overflow, "overflow", cfg.Overflow, "Numeric overflow policy: stop or reject.")
	flags.StringVar(&cfg.LeadingZeros, "leading-zeros", cfg.LeadingZeros, "IPv4 leading zero policy: allow or reject.")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error.")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console or dev.")
	flags.BoolVar(&cfg.RFC, "rfc", cfg.RFC, "Also report RFC 3986 grammar conformance.")
	flags.BoolVar(&cfg.DNS, "dns", cfg.DNS, "Report whether a registered name is a valid DNS name.")
	if err := flags.Parse(args); err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return cfg, flags.Args(), nil
}

func (c *config) overflow() (uri.OverflowPolicy, error) {
	switch c.Overflow {
	case "stop":
		return uri.OverflowStop, nil
	case "reject":
		return uri.OverflowReject, nil
	default:
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown overflow policy %q", c.Overflow))
	}
}

func (c *config) leadingZeros() (uri.LeadingZeroPolicy, error) {
	switch c.LeadingZeros {
	case "allow":
		return uri.LeadingZerosAllow, nil
	case "reject":
		return uri.LeadingZerosReject, nil
	default:
		return 0, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown leading zero policy %q", c.LeadingZeros))
	}
}

func (c *config) logFormat() (log.Format, error) {
	switch f := log.Format(c.LogFormat); f {
	case log.FormatConsole, log.FormatDev:
		return f, nil
	default:
		return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown log format %q", c.LogFormat))
	}
}

// logger builds the command logger writing to w.
func (c *config) logger(w io.Writer) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(errorutil.ErrInvalidArgument, err))
	}
	format, err := c.logFormat()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return log.New(w, format, lvl), nil
}

// parser builds the URI parser described by the config.
func (c *config) parser(logger *slog.Logger) (*uri.Parser, error) {
	ovf, err := c.overflow()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	lz, err := c.leadingZeros()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return uri.NewParser(&uri.ParseOptions{
		Overflow:     ovf,
		LeadingZeros: lz,
		Logger:       logger,
	}), nil
}

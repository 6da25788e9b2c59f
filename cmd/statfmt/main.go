// Command statfmt lists the stat structures in a 9P directory
// stream, the byte format a server returns when a directory is read.
// With no file arguments it reads the stream from standard input.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"aqwari.net/retry"
	"aqwari.net/wire/ninep"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

var (
	configPath = pflag.StringP("config", "c", "", "path to a TOML config file")
	longFormat = pflag.BoolP("long", "l", false, "print one ls -l style line per entry")
	follow     = pflag.BoolP("follow", "f", false, "keep reading as the stream grows")
	strict     = pflag.Bool("strict", false, "verify every entry; exit nonzero on a violation")
	timeFormat = pflag.String("time-format", "", "time layout for mtime in long listings")
	verbose    = pflag.BoolP("verbose", "v", false, "log a summary for every stream read")
)

func main() {
	pflag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Str("app", "statfmt").Logger()
	if !*verbose {
		logger = logger.Level(zerolog.WarnLevel)
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath); err != nil {
			logger.Fatal().Err(err).Msg("unusable config")
		}
	}

	// command-line flags win over the config file
	if pflag.CommandLine.Changed("long") {
		cfg.Long = *longFormat
	}
	if pflag.CommandLine.Changed("follow") {
		cfg.Follow = *follow
	}
	if pflag.CommandLine.Changed("strict") {
		cfg.Strict = *strict
	}
	if pflag.CommandLine.Changed("time-format") {
		cfg.TimeFormat = *timeFormat
	}

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	code := 0
	for _, name := range args {
		if err := printStream(os.Stdout, logger, cfg, name); err != nil {
			logger.Error().Err(err).Str("file", name).Msg("scan failed")
			code = 1
		}
	}
	os.Exit(code)
}

func printStream(w io.Writer, logger zerolog.Logger, cfg config, name string) error {
	var src io.Reader
	if name == "-" {
		src = os.Stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	if cfg.Follow {
		src = &followReader{
			r:    src,
			wait: retry.Exponential(cfg.PollInterval).Max(cfg.PollMax),
		}
	}

	entries, invalid := 0, 0
	scanner := ninep.NewScanner(src)
	for scanner.Next() {
		s := scanner.Stat()
		if cfg.Strict {
			if err := s.Verify(); err != nil {
				logger.Warn().Err(err).Int("entry", entries).Msg("invalid entry")
				invalid++
			}
		}
		printEntry(w, cfg, s)
		entries++
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	logger.Info().Str("file", name).Int("entries", entries).Msg("done")
	if invalid > 0 {
		return fmt.Errorf("%d invalid entries", invalid)
	}
	return nil
}

func printEntry(w io.Writer, cfg config, s ninep.Stat) {
	if !cfg.Long {
		fmt.Fprintf(w, "%s\n", s.Name())
		return
	}
	mtime := time.Unix(int64(s.Mtime()), 0).UTC().Format(cfg.TimeFormat)
	fmt.Fprintf(w, "%s %s %s %8d %s %s\n",
		ninep.ModeOS(s.Mode()), s.Uid(), s.Gid(), s.Length(), mtime, s.Name())
}

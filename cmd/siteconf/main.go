package main

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// version is set at build time via ldflags.
var version = "dev"

// envConfig holds defaults read from the environment; command flags override them.
type envConfig struct {
	Profile  string `env:"SITECONF_PROFILE" envDefault:"development"`
	Addr     string `env:"SITECONF_ADDR" envDefault:":3000"`
	Root     string `env:"SITECONF_ROOT" envDefault:"content"`
	LogLevel string `env:"SITECONF_LOG_LEVEL" envDefault:"info"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log := newLogger(stderr, cfg.LogLevel)

	var err error
	switch args[0] {
	case "show":
		err = runShow(args[1:], cfg, stdout)
	case "get":
		err = runGet(args[1:], cfg, stdout)
	case "export":
		err = runExport(args[1:], cfg, stdout, log)
	case "assets":
		err = runAssets(args[1:], cfg, stdout)
	case "serve":
		err = runServe(args[1:], cfg, log)
	case "version":
		fmt.Fprintf(stdout, "siteconf %s\n", version)
	case "help", "-h", "--help":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 1
	}
	if err != nil {
		log.Error().Err(err).Str("command", args[0]).Msg("command failed")
		return 1
	}
	return 0
}

func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `siteconf - settings for the notes.log site

Usage:
  siteconf <command> [flags] [arguments]

Commands:
  show                Print the settings record (-profile, -format json|yaml)
  get <key>           Print one setting (-profile)
  export              Write the record for the site generator
                      (-profile, -format json|yaml|py|sqlite, -o path, -all)
  assets              List the static files the generator will copy (-profile, -root)
  serve               Serve every profile over HTTP (-addr)
  version             Print the siteconf version
  help                Show this help message

Environment:
  SITECONF_PROFILE    default profile (development)
  SITECONF_ADDR       default listen address (:3000)
  SITECONF_ROOT       default content root for assets (content)
  SITECONF_LOG_LEVEL  log level (info)`)
}

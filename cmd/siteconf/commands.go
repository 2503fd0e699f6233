package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"

	"github.com/gkomninos/siteconf"
	"github.com/gkomninos/siteconf/pyconf"
)

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func loadProfile(name string) (siteconf.Profile, siteconf.SiteConfig, error) {
	p, err := siteconf.ParseProfile(name)
	if err != nil {
		return "", siteconf.SiteConfig{}, err
	}
	c, err := siteconf.Load(p)
	return p, c, err
}

func encode(w io.Writer, c siteconf.SiteConfig, p siteconf.Profile, format string) error {
	switch format {
	case "json":
		return c.EncodeJSON(w)
	case "yaml", "yml":
		return c.EncodeYAML(w)
	case "py", "python":
		return pyconf.Write(w, p, c)
	}
	return fmt.Errorf("unknown format %q", format)
}

func runShow(args []string, cfg envConfig, stdout io.Writer) error {
	fs := newFlagSet("show")
	profile := fs.String("profile", cfg.Profile, "settings profile")
	format := fs.String("format", "yaml", "output format: json, yaml or py")
	if err := fs.Parse(args); err != nil {
		return err
	}
	p, c, err := loadProfile(*profile)
	if err != nil {
		return err
	}
	return encode(stdout, c, p, *format)
}

func runGet(args []string, cfg envConfig, stdout io.Writer) error {
	fs := newFlagSet("get")
	profile := fs.String("profile", cfg.Profile, "settings profile")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: siteconf get [-profile name] <key>")
	}
	_, c, err := loadProfile(*profile)
	if err != nil {
		return err
	}
	v, err := c.Get(fs.Arg(0))
	if err != nil {
		return err
	}
	if s, ok := v.(string); ok {
		_, err = fmt.Fprintln(stdout, s)
		return err
	}
	enc := json.NewEncoder(stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func runExport(args []string, cfg envConfig, stdout io.Writer, log zerolog.Logger) error {
	fs := newFlagSet("export")
	profile := fs.String("profile", cfg.Profile, "settings profile")
	format := fs.String("format", "json", "output format: json, yaml, py or sqlite")
	out := fs.String("o", "", "output file (directory with -all); stdout when empty")
	all := fs.Bool("all", false, "export every profile")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *all {
		return exportAll(*format, *out, log)
	}

	p, c, err := loadProfile(*profile)
	if err != nil {
		return err
	}
	if *format == "sqlite" {
		if *out == "" {
			return errors.New("export -format sqlite needs -o")
		}
		if err := siteconf.ExportSQLite(*out, p, c); err != nil {
			return err
		}
		log.Info().Str("profile", string(p)).Str("path", *out).Msg("exported")
		return nil
	}
	if *out == "" {
		return encode(stdout, c, p, *format)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := encode(f, c, p, *format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info().Str("profile", string(p)).Str("path", *out).Msg("exported")
	return nil
}

func exportAll(format, out string, log zerolog.Logger) error {
	if out == "" {
		return errors.New("export -all needs -o")
	}
	switch format {
	case "py", "python":
		written, err := pyconf.WriteProfiles(out)
		for _, path := range written {
			log.Info().Str("path", path).Msg("exported")
		}
		return err
	case "sqlite":
		for _, p := range siteconf.Profiles() {
			c, err := siteconf.Load(p)
			if err != nil {
				return err
			}
			if err := siteconf.ExportSQLite(out, p, c); err != nil {
				return err
			}
			log.Info().Str("profile", string(p)).Str("path", out).Msg("exported")
		}
		return nil
	case "json", "yaml", "yml":
		if err := os.MkdirAll(out, 0o755); err != nil {
			return err
		}
		for _, p := range siteconf.Profiles() {
			c, err := siteconf.Load(p)
			if err != nil {
				return err
			}
			path := filepath.Join(out, string(p)+"."+format)
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := encode(f, c, p, format); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			log.Info().Str("profile", string(p)).Str("path", path).Msg("exported")
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

func runAssets(args []string, cfg envConfig, stdout io.Writer) error {
	fs := newFlagSet("assets")
	profile := fs.String("profile", cfg.Profile, "settings profile")
	root := fs.String("root", cfg.Root, "content root the static paths are relative to")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, c, err := loadProfile(*profile)
	if err != nil {
		return err
	}
	assets, err := siteconf.Inventory(*root, c)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tOUTPUT\tSIZE\tIMAGE")
	for _, a := range assets {
		size := fmt.Sprint(a.Size)
		img := ""
		if a.Missing {
			size = "missing"
		} else if a.Format != "" {
			img = fmt.Sprintf("%s %dx%d", a.Format, a.Width, a.Height)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", a.Source, a.Output, size, img)
	}
	return tw.Flush()
}

func runServe(args []string, cfg envConfig, log zerolog.Logger) error {
	fs := newFlagSet("serve")
	addr := fs.String("addr", cfg.Addr, "listen address")
	if err := fs.Parse(args); err != nil {
		return err
	}
	app, err := siteconf.New(siteconf.WithLogger(log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start(*addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}

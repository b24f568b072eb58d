// Command harmiana serves or exports the Harmiana studio website.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/admin-harmiana/Website/internal/config"
	"github.com/admin-harmiana/Website/internal/i18n"
	"github.com/admin-harmiana/Website/internal/logging"
	"github.com/admin-harmiana/Website/internal/site"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app is what every subcommand runs with once flags and env are merged.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	closeLog func() error
	site     *site.Site
}

type rootFlags struct {
	baseURL      string
	logLevel     string
	dev          bool
	templatesDir string
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		a     app
	)
	root := &cobra.Command{
		Use:           "harmiana",
		Short:         "Harmiana studio website",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.closeLog != nil {
				return a.closeLog()
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "public origin used in canonical links (overrides HARMIANA_BASE_URL)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (overrides HARMIANA_LOG_LEVEL)")
	root.PersistentFlags().BoolVar(&flags.dev, "dev", false, "reparse templates from disk on every request")
	root.PersistentFlags().StringVar(&flags.templatesDir, "templates", "", "templates directory used with --dev (overrides HARMIANA_TEMPLATES_DIR)")

	root.AddCommand(newServeCmd(&a), newExportCmd(&a), newRoutesCmd())
	return root
}

func (a *app) init(cmd *cobra.Command, flags rootFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flags.baseURL != "" {
		cfg.BaseURL = flags.baseURL
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
	if cmd.Flags().Changed("dev") {
		cfg.Dev = flags.dev
	}
	if flags.templatesDir != "" {
		cfg.TemplatesDir = flags.templatesDir
	}
	if cfg.Dev && cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "templates"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	bundle, err := i18n.Default()
	if err != nil {
		_ = closeLog()
		return fmt.Errorf("load translations: %w", err)
	}
	templatesDir := ""
	if cfg.Dev {
		templatesDir = cfg.TemplatesDir
	}
	s, err := site.New(site.Options{
		Bundle:       bundle,
		BaseURL:      cfg.BaseURL,
		ContactEmail: cfg.ContactEmail,
		TemplatesDir: templatesDir,
	})
	if err != nil {
		_ = closeLog()
		return err
	}

	*a = app{cfg: cfg, logger: logger, closeLog: closeLog, site: s}
	return nil
}

package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"NeonSkills/internal/catalog"
	"NeonSkills/internal/config"
	"NeonSkills/internal/export"
	"NeonSkills/internal/logger"
	"NeonSkills/internal/server"
	"NeonSkills/internal/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "neonskills",
		Short:        "NeonSkills landing page server",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.AddCommand(newServeCmd(), newExportCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func newExportCmd() *cobra.Command {
	var (
		out   string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the landing page and its assets to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := setup()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watch {
				if cfg.CatalogPath == "" {
					return errors.New("--watch needs CATALOG_PATH to point at a catalog file")
				}
				return export.Watch(ctx, cfg.CatalogPath, out, l)
			}

			cat, err := catalog.Open(cfg.CatalogPath)
			if err != nil {
				return err
			}
			if err := export.Write(ctx, out, cat); err != nil {
				return err
			}
			l.Info().Str("out", out).Msg("export complete")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-export whenever the catalog file changes")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}

	svc, err := services.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, svc, l).Run(ctx)
}

// setup loads configuration and installs the service logger, also as the
// output of the standard library log package.
func setup() (config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, zerolog.Nop(), err
	}

	l := logger.New(logger.Options{
		Instance: cfg.InstanceName,
		Level:    cfg.LogLevel,
		Console:  !cfg.Environment.IsProduction(),
	})
	log.SetFlags(0)
	log.SetOutput(&logger.JSONLogger{Logger: l})
	return cfg, l, nil
}

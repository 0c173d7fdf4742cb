package cmd

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bnema/pyme-segmenter/internal/adapters/notify/terminal"
	"github.com/bnema/pyme-segmenter/internal/adapters/ofs"
	"github.com/bnema/pyme-segmenter/internal/adapters/render/segments"
	"github.com/bnema/pyme-segmenter/internal/adapters/secrets"
	sessiontoml "github.com/bnema/pyme-segmenter/internal/adapters/session/toml"
	"github.com/bnema/pyme-segmenter/internal/application"
	"github.com/bnema/pyme-segmenter/internal/config"
	"github.com/bnema/pyme-segmenter/internal/logging"
	"github.com/bnema/pyme-segmenter/internal/ports"
)

type app struct {
	cfg      config.Config
	log      *logrus.Entry
	sessions *sessiontoml.Provider
	notifier *terminal.Notifier
	engine   *application.Engine
	render   func([]segments.Section, segments.RenderOptions) (string, error)
}

func (a *app) wire(cmd *cobra.Command, opts rootOptions) error {
	if _, err := config.LoadEnv(config.DefaultEnvFiles); err != nil {
		return err
	}

	v := viper.New()
	if flag := cmd.Flags().Lookup("log-level"); flag != nil && flag.Changed {
		v.Set(config.KeyLogLevel, opts.logLevel)
	}
	if flag := cmd.Flags().Lookup("log-format"); flag != nil && flag.Changed {
		v.Set(config.KeyLogFormat, opts.logFormat)
	}

	cfg, err := config.Load(v, opts.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	log := logrus.NewEntry(logger).WithField("command", cmd.Name())

	resolver := secrets.NewResolver(filepath.Join(filepath.Dir(cfg.SessionPath), "secrets"))
	sessions, err := sessiontoml.NewProvider(cfg.SessionPath, resolver)
	if err != nil {
		return fmt.Errorf("wire session provider: %w", err)
	}

	client := ofs.NewClient(&http.Client{Timeout: cfg.HTTPTimeout}, cfg.HTTPTimeout, log)
	notifier := terminal.New(cmd.InOrStdin(), cmd.OutOrStdout(), false)

	a.cfg = cfg
	a.log = log
	a.sessions = sessions
	a.notifier = notifier
	a.engine = application.NewEngine(client, notifier, ports.SystemClock{}, application.EngineOptions{
		Location:    cfg.Location,
		Concurrency: cfg.ReconcileConcurrency,
		Log:         log,
	})
	a.render = segments.Render
	return nil
}

// start authorizes the host session and runs the engine's first load.
func (a *app) start(cmd *cobra.Command) error {
	ctx := logging.WithLogger(cmd.Context(), a.log)
	return runWithSpinner(ctx, cmd.ErrOrStderr(), "Cargando recursos...", func(ctx context.Context) error {
		if err := a.engine.Start(ctx, a.sessions); err != nil {
			return fmt.Errorf("start session from %s: %w", a.sessions.Path(), err)
		}
		return nil
	})
}

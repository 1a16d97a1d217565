package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xtding233/arona/internal/banner"
	"github.com/xtding233/arona/internal/bot"
	"github.com/xtding233/arona/internal/config"
	"github.com/xtding233/arona/internal/discord"
	"github.com/xtding233/arona/internal/health"
	"github.com/xtding233/arona/internal/telemetry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Connect to Discord and answer commands",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := telemetry.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.SetupTracing(ctx, "arona", cfg.OTelEndpoint)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	defer shutdown(context.Background())

	token, dev, err := cfg.BotToken()
	if err != nil {
		return err
	}
	if dev {
		log.Info("DISCORD_DEV_BOT_TOKEN is present, running as アロナDev")
	}

	a, err := newApp(cfg, "", nil, log)
	if err != nil {
		return err
	}
	log.Info("banner loaded", zap.String("banner", a.registry.Current().ID), zap.String("name", a.registry.Current().Name))

	router := bot.NewRouter(cfg.Prefix, log)
	bot.RegisterGeneral(router)
	a.flow.Register(router)

	d, err := discord.New(token, router, log)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	if cfg.HealthAddr != "" {
		hs := health.New(log)
		d.OnStatus(hs.SetServing)
		g.Go(func() error { return hs.ListenAndServe(cfg.HealthAddr) })
		g.Go(func() error {
			<-ctx.Done()
			hs.Stop()
			return nil
		})
	}
	if cfg.BannerDir != "" {
		w := banner.NewFileWatcher(cfg.BannerDir, cfg.BannerWatchInterval, func(string) {
			_ = a.registry.Reload() // failure is logged, previous banner stays
		}, log)
		g.Go(func() error {
			w.Run(ctx)
			return nil
		})
	}
	g.Go(func() error { return d.Run(ctx) })

	err = g.Wait()
	log.Info("shut down", zap.Int("cached_images", a.cache.Len()))
	return err
}

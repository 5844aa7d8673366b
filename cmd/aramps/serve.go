package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aramps/internal/bot"
	"github.com/aramps/internal/config"
	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/services/ai"
	"github.com/aramps/internal/storage"
	"github.com/aramps/internal/web"
	"github.com/aramps/pkg/healthcheck"
)

// app holds everything the long-running commands share.
type app struct {
	cfg    *config.Config
	svc    *dashboard.Service
	redis  *storage.RedisClient
	health *healthcheck.Handler
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	d, err := loadDataset(cfg)
	if err != nil {
		return nil, err
	}

	aiClient := ai.NewClient(ai.Config{
		URL:           cfg.AIAPIURL,
		APIKey:        cfg.AIAPIKey,
		Model:         cfg.AIModel,
		GatewayHeader: cfg.AIGatewayHeader,
		GatewayKey:    cfg.AIGatewayKey,
		Timeout:       cfg.AITimeout,
	})
	if !aiClient.Enabled() {
		log.Info().Msg("AI endpoint not configured, team commentary disabled")
	}

	redisClient := storage.NewRedisClient(ctx, cfg.RedisURL)
	commentary := storage.NewCommentaryStore(redisClient, cfg.RedisKeyPrefix, cfg.RedisTTL)

	health := healthcheck.NewHandler()
	health.SetDetail("champions", len(d.Champions))
	health.SetDetail("rows", len(d.Rows))
	health.SetDetail("ai", aiClient.Enabled())
	if redisClient.Enabled() {
		health.AddCheck("redis", redisClient.Ping)
	}

	return &app{
		cfg:    cfg,
		svc:    dashboard.NewService(d, aiClient, commentary),
		redis:  redisClient,
		health: health,
	}, nil
}

func (a *app) close() {
	if err := a.redis.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close Redis")
	}
}

// startBot connects the Discord bot when a token is configured.
func (a *app) startBot() (*bot.Bot, error) {
	if !a.cfg.DiscordEnabled() {
		return nil, nil
	}
	b, err := bot.New(a.cfg.DiscordToken, a.cfg.DiscordGuildID, a.svc, a.cfg.AITimeout)
	if err != nil {
		return nil, fmt.Errorf("bot error: %w", err)
	}
	if err := b.Start(); err != nil {
		return nil, fmt.Errorf("start error: %w", err)
	}
	a.health.AddCheck("discord", func(context.Context) error {
		if !b.Connected() {
			return errors.New("gateway not ready")
		}
		return nil
	})
	return b, nil
}

func runServeCmd(_ *cobra.Command, _ []string) error {
	cfg, release, err := setup()
	if err != nil {
		return err
	}
	defer release()

	a, err := newApp(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer a.close()

	srv := web.New(cfg.ListenAddr, a.svc, a.health)
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	discordBot, err := a.startBot()
	if err != nil {
		return err
	}

	log.Info().Bool("bot", discordBot != nil).Msg("dashboard running")
	waitErr := wait(errCh)

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		log.Warn().Err(err).Msg("web server shutdown")
	}
	if discordBot != nil {
		if err := discordBot.Stop(); err != nil {
			log.Warn().Err(err).Msg("bot shutdown")
		}
	}
	log.Info().Msg("stopped")
	return waitErr
}

func runBotCmd(_ *cobra.Command, _ []string) error {
	cfg, release, err := setup()
	if err != nil {
		return err
	}
	defer release()
	if !cfg.DiscordEnabled() {
		return errors.New("DISCORD_TOKEN is missing")
	}

	a, err := newApp(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer a.close()

	healthServer := healthcheck.New(cfg.ListenAddr, a.health)
	errCh := make(chan error, 1)
	go func() {
		if err := healthServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	discordBot, err := a.startBot()
	if err != nil {
		return err
	}

	log.Info().Msg("bot running")
	waitErr := wait(errCh)

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := healthServer.Stop(ctx); err != nil {
		log.Warn().Err(err).Msg("health server shutdown")
	}
	if err := discordBot.Stop(); err != nil {
		log.Warn().Err(err).Msg("bot shutdown")
	}
	log.Info().Msg("stopped")
	return waitErr
}

// wait blocks until an interrupt signal or a server error.
func wait(errCh <-chan error) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		return nil
	case err := <-errCh:
		log.Error().Err(err).Msg("server error")
		return err
	}
}

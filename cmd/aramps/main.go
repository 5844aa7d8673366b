// Package main provides the CLI entrypoint for the ARAM stats dashboard.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/aramps/internal/config"
	"github.com/aramps/internal/dashboard"
	"github.com/aramps/internal/export"
	"github.com/aramps/internal/report"
	"github.com/aramps/internal/table"
	"github.com/aramps/pkg/healthcheck"
	"github.com/aramps/pkg/logger"
)

var (
	configPath string
	logLevel   string

	reportColor bool
	reportRaw   bool

	rankingBy       string
	rankingMinGames int
	rankingLimit    int

	exportSQLite   string
	exportPostgres string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "aramps",
		Short:         "ARAM champion stats dashboard",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runServeCmd,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (default: $CONFIG_FILE or aramps.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newBotCmd())
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newRankingCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web dashboard (and the Discord bot when DISCORD_TOKEN is set)",
		Args:  cobra.NoArgs,
		RunE:  runServeCmd,
	}
}

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run only the Discord bot with a health endpoint",
		Args:  cobra.NoArgs,
		RunE:  runBotCmd,
	}
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [champion]",
		Short: "Print a champion's stats, or every champion's summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReportCmd,
	}
	cmd.Flags().BoolVar(&reportColor, "color", false, "styled output")
	cmd.Flags().BoolVar(&reportRaw, "raw", false, "also print the champion's raw rows")
	return cmd
}

func newRankingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Print champions ranked by games or win rate",
		Args:  cobra.NoArgs,
		RunE:  runRankingCmd,
	}
	cmd.Flags().StringVar(&rankingBy, "by", string(dashboard.RankByGames), "order: games or winrate")
	cmd.Flags().IntVar(&rankingMinGames, "min-games", 1, "minimum games per champion")
	cmd.Flags().IntVar(&rankingLimit, "limit", 20, "number of champions (0 for all)")
	return cmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write aggregated tables to SQLite and/or Postgres",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportSQLite, "sqlite", "", "SQLite file (default: EXPORT_SQLITE)")
	cmd.Flags().StringVar(&exportPostgres, "postgres", "", "Postgres URL (default: DATABASE_URL)")
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the local health endpoint (for container health checks)",
		Args:  cobra.NoArgs,
		RunE:  runHealthCmd,
	}
}

// setup loads the configuration and installs the logger. The returned
// function releases the log file.
func setup() (*config.Config, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("config error: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	closer, err := logger.Setup(
		logger.WithConsole(os.Stderr),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFile(cfg.LogFile),
	)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		release()
		return nil, nil, err
	}
	return cfg, release, nil
}

func loadDataset(cfg *config.Config) (*dashboard.Dataset, error) {
	d, err := dashboard.Load(table.NewCache(), dashboard.Paths{
		Players:       cfg.PlayersCSV,
		ItemSummary:   cfg.ItemSummaryCSV,
		ChampionIcons: cfg.ChampionIconsCSV,
		RuneIcons:     cfg.RuneIconsCSV,
		SpellIcons:    cfg.SpellIconsCSV,
	}, cfg.DDragonVersion)
	if err != nil {
		if errors.Is(err, table.ErrNotFound) {
			return nil, fmt.Errorf("players file not found: %s", cfg.PlayersCSV)
		}
		return nil, err
	}
	for _, n := range d.Notices {
		log.Warn().Msg(n)
	}
	log.Info().
		Int("rows", len(d.Rows)).
		Int("champions", len(d.Champions)).
		Interface("icons", d.Icons.Counts()).
		Msg("dataset loaded")
	return d, nil
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, release, err := setup()
	if err != nil {
		return err
	}
	defer release()

	d, err := loadDataset(cfg)
	if err != nil {
		return err
	}
	opt := report.Options{Styled: reportColor}
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return report.Champions(out, d, opt)
	}

	svc := dashboard.NewService(d, nil, nil)
	name, ok := svc.Resolve(args[0])
	if !ok {
		if hints := svc.Suggest(args[0], 5); len(hints) > 0 {
			return fmt.Errorf("unknown champion %q (did you mean: %s)", args[0], strings.Join(hints, ", "))
		}
		return fmt.Errorf("unknown champion %q", args[0])
	}
	v, err := svc.View(name, reportRaw)
	if err != nil {
		return err
	}
	if err := report.Champion(out, v, opt); err != nil {
		return err
	}
	if reportRaw {
		return report.Raw(out, d.Columns(), v.Raw, opt)
	}
	return nil
}

func runRankingCmd(cmd *cobra.Command, _ []string) error {
	by := dashboard.RankBy(rankingBy)
	if by != dashboard.RankByGames && by != dashboard.RankByWinRate {
		return fmt.Errorf("invalid --by %q (games or winrate)", rankingBy)
	}
	cfg, release, err := setup()
	if err != nil {
		return err
	}
	defer release()

	d, err := loadDataset(cfg)
	if err != nil {
		return err
	}
	return report.Ranking(cmd.OutOrStdout(), d.Ranking(by, rankingMinGames, rankingLimit), report.Options{})
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	cfg, release, err := setup()
	if err != nil {
		return err
	}
	defer release()

	// Explicit flags replace the configured targets.
	sqlitePath, pgURL := exportSQLite, exportPostgres
	if sqlitePath == "" && pgURL == "" {
		sqlitePath, pgURL = cfg.ExportSQLite, cfg.DatabaseURL
	}
	if sqlitePath == "" && pgURL == "" {
		return errors.New("no export target: set --sqlite or --postgres")
	}

	d, err := loadDataset(cfg)
	if err != nil {
		return err
	}
	snap, err := export.Build(d, time.Now())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	if sqlitePath != "" {
		if err := export.WriteSQLite(ctx, sqlitePath, snap); err != nil {
			return fmt.Errorf("sqlite export failed: %w", err)
		}
		log.Info().Str("path", sqlitePath).Interface("rows", snap.Counts()).Msg("exported to SQLite")
	}
	if pgURL != "" {
		if err := export.WritePostgres(ctx, pgURL, snap); err != nil {
			return fmt.Errorf("postgres export failed: %w", err)
		}
		log.Info().Interface("rows", snap.Counts()).Msg("exported to Postgres")
	}
	return nil
}

func runHealthCmd(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return healthcheck.Probe(healthURL(cfg.ListenAddr))
}

// healthURL turns a listen address such as ":8080" into a local URL.
func healthURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://localhost:8080/health"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/health"
}

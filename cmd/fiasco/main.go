// Package main provides the CLI entrypoint for fiasco.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/fiasco/internal/config"
	"github.com/verte-zerg/fiasco/internal/generator"
	"github.com/verte-zerg/fiasco/internal/kv"
	"github.com/verte-zerg/fiasco/internal/model"
	"github.com/verte-zerg/fiasco/internal/session"
	"github.com/verte-zerg/fiasco/internal/stats"
	"github.com/verte-zerg/fiasco/internal/tui"
	"github.com/verte-zerg/fiasco/internal/wordlist"
)

const (
	defaultDifficulty = string(model.Easy)
	defaultBackend    = string(kv.TypeSQLite)
	defaultLogLevel   = "info"
	defaultWordsCount = session.DefaultWordCount
)

// options holds resolved flag and config values.
type options struct {
	duration   int
	difficulty string
	wordList   string
	backend    string
	dbPath     string
	redisAddr  string
	logLevel   string
}

var (
	opts options

	wordsCount int
	wordsSeed  int64
)

func main() {
	_ = godotenv.Load()
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fiasco",
		Short:         "Terminal typing speed game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.backend, "store", defaultBackend, "best score store: sqlite, memory or redis")
	flags.StringVar(&opts.dbPath, "db", "", "sqlite database path")
	flags.StringVar(&opts.redisAddr, "redis-addr", "", "redis address (host:port)")
	flags.StringVar(&opts.logLevel, "log-level", defaultLogLevel, "log level (trace, debug, info, warn, error)")

	rootCmd.Flags().IntVar(&opts.duration, "duration", model.DefaultDurationSeconds, "session length in seconds")
	rootCmd.Flags().StringVar(&opts.difficulty, "difficulty", defaultDifficulty, "word difficulty: easy, medium or hard")
	rootCmd.Flags().StringVar(&opts.wordList, "wordlist", "", "custom base word list file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newBestCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	if err := resolveOptions(cmd); err != nil {
		return err
	}
	if err := validateOptions(opts); err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("fiasco needs an interactive terminal")
	}

	logger, closeLog, err := openLogger(config.DefaultLogPath(), opts.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	gen := generator.New()
	if opts.wordList != "" {
		tiers, err := wordlist.LoadTiers(opts.wordList, "en")
		if err != nil {
			return fmt.Errorf("failed to load word list: %w", err)
		}
		gen.WithTiers(tiers)
	}

	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Error().Err(cerr).Msg("failed to close store")
		}
	}()

	engine := session.New(gen,
		session.WithBestScore(session.NewBestScore(st)),
		session.WithLogger(logger),
	)
	cfg := model.Config{DurationSeconds: opts.duration, Difficulty: model.ParseDifficulty(opts.difficulty)}
	m := tui.NewModel(engine, cfg, logger)

	logger.Info().Str("store", opts.backend).Msg("fiasco starting")
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if engine.Status() == model.StatusFinished {
		return stats.RenderSummary(cmd.OutOrStdout(), engine.Result())
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newBestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best",
		Short: "Show the best WPM",
		Args:  cobra.NoArgs,
		RunE:  runBestCmd,
	}
}

func runBestCmd(cmd *cobra.Command, _ []string) error {
	if err := resolveOptions(cmd); err != nil {
		return err
	}
	st, err := openStore(opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = st.Close()
	}()
	best, err := session.NewBestScore(st).Load(context.Background())
	if err != nil {
		return err
	}
	return stats.RenderBest(cmd.OutOrStdout(), best)
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Print a generated word list",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", defaultDifficulty, "word difficulty: easy, medium or hard")
	cmd.Flags().IntVar(&wordsCount, "count", defaultWordsCount, "number of words")
	cmd.Flags().Int64Var(&wordsSeed, "seed", 0, "random seed (0 uses the clock)")
	cmd.Flags().StringVar(&opts.wordList, "wordlist", "", "custom base word list file")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	if err := resolveOptions(cmd); err != nil {
		return err
	}
	if wordsCount < 0 {
		return fmt.Errorf("--count must be >= 0")
	}
	gen := generator.New()
	if wordsSeed != 0 {
		gen = generator.NewWithSeed(wordsSeed)
	}
	if opts.wordList != "" {
		tiers, err := wordlist.LoadTiers(opts.wordList, "en")
		if err != nil {
			return fmt.Errorf("failed to load word list: %w", err)
		}
		gen.WithTiers(tiers)
	}
	words := gen.GenerateWordList(model.ParseDifficulty(opts.difficulty), wordsCount)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(words, " ")); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// resolveOptions applies config file values to flags the user did not set.
func resolveOptions(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "duration", &opts.duration, fileCfg.Practice.Duration)
	applyStringConfig(cmd, "difficulty", &opts.difficulty, fileCfg.Practice.Difficulty)
	applyStringConfig(cmd, "wordlist", &opts.wordList, fileCfg.Practice.WordList)
	applyStringConfig(cmd, "store", &opts.backend, fileCfg.Store.Backend)
	applyStringConfig(cmd, "db", &opts.dbPath, fileCfg.Store.Path)
	applyStringConfig(cmd, "redis-addr", &opts.redisAddr, fileCfg.Store.RedisAddr)
	applyStringConfig(cmd, "log-level", &opts.logLevel, fileCfg.Log.Level)
	if !cmd.Flags().Changed("log-level") {
		if v := os.Getenv("LOG_LEVEL"); v != "" {
			opts.logLevel = v
		}
	}
	if opts.dbPath == "" {
		opts.dbPath = config.DefaultDBPath()
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateOptions(o options) error {
	if o.duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	switch kv.Type(o.backend) {
	case kv.TypeSQLite, kv.TypeMemory:
	case kv.TypeRedis:
		if o.redisAddr == "" {
			return fmt.Errorf("--redis-addr is required for the redis store")
		}
	default:
		return fmt.Errorf("--store must be one of sqlite, memory, redis")
	}
	if _, err := zerolog.ParseLevel(o.logLevel); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	return nil
}

func openStore(o options) (kv.Store, error) {
	var storeOpts []kv.Option
	switch kv.Type(o.backend) {
	case kv.TypeSQLite:
		storeOpts = append(storeOpts, kv.WithPath(o.dbPath))
	case kv.TypeRedis:
		storeOpts = append(storeOpts, kv.WithRedisClient(redis.NewClient(&redis.Options{Addr: o.redisAddr})))
	}
	st, err := kv.Open(kv.Type(o.backend), storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", o.backend, err)
	}
	return st, nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# fiasco configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# duration = %d           # Session length in seconds
# difficulty = %q     # easy, medium or hard
# wordlist = ""           # Custom base word list, one word per line

[store]
# backend = %q        # sqlite, memory or redis
# path = ""               # SQLite path (default %s)
# redis-addr = ""         # host:port for the redis backend

[log]
# level = %q            # trace, debug, info, warn, error
`,
		model.DefaultDurationSeconds,
		defaultDifficulty,
		defaultBackend,
		config.DefaultDBPath(),
		defaultLogLevel,
	)
}

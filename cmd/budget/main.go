package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Veraticus/monthly-budget/internal/common"
	"github.com/Veraticus/monthly-budget/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// annotationLogToFile marks commands that own the terminal, so logs must not
// be written to stderr while they run.
const annotationLogToFile = "logToFile"

// rootOptions carries state shared by every command of one invocation.
type rootOptions struct {
	v       *viper.Viper
	cfg     *config.Config
	logFile io.Closer
	cfgFile string
	lang    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "💰 Monthly budget manager",
		Long: `budget: track your net salary, fixed expenses and additional income,
and see how much of your income is already spoken for.

Run without a subcommand to open the interactive editor.`,
		SilenceUsage: true,
		Annotations:  map[string]string{annotationLogToFile: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initConfig(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logFile != nil {
				_ = opts.logFile.Close()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: $HOME/.config/budget/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("db", "", "database path (default: ~/.local/share/budget/budget.db)")
	flags.StringVar(&opts.lang, "lang", "", "display language (en, it)")

	_ = opts.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = opts.v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = opts.v.BindPFlag(config.KeyDatabasePath, flags.Lookup("db"))

	cmd.AddCommand(salaryCmd(opts))
	cmd.AddCommand(itemsCmd(opts, itemsExpenses))
	cmd.AddCommand(itemsCmd(opts, itemsIncomes))
	cmd.AddCommand(summaryCmd(opts))
	cmd.AddCommand(authCmd(opts))
	cmd.AddCommand(languageCmd(opts))
	cmd.AddCommand(migrateCmd(opts))
	cmd.AddCommand(tuiCmd(opts))
	cmd.AddCommand(versionCmd())

	return cmd
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, common.UserMessage(err))
		os.Exit(1)
	}
}

func (o *rootOptions) initConfig(cmd *cobra.Command) error {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := o.v
	if o.cfgFile != "" {
		v.SetConfigFile(o.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		v.AddConfigPath(filepath.Join(home, ".config", "budget"))
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("BUDGET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	config.SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	o.cfg = cfg

	if err := o.setupLogging(cmd); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	return nil
}

// setupLogging logs to stderr, or to the configured file for commands that
// take over the terminal.
func (o *rootOptions) setupLogging(cmd *cobra.Command) error {
	level, err := common.ParseLevel(o.cfg.LogLevel)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.ErrOrStderr()
	if cmd.Annotations[annotationLogToFile] == "true" && o.cfg.LogFile != "" {
		if mkErr := os.MkdirAll(filepath.Dir(o.cfg.LogFile), 0750); mkErr != nil {
			return mkErr
		}
		f, openErr := os.OpenFile(o.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if openErr != nil {
			return openErr
		}
		o.logFile = f
		w = f
	}

	return common.SetupLogger(level, o.cfg.LogFormat, w)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "budget version %s\n", version)
		},
	}
}

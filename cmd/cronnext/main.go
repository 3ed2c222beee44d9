package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/netresearch/go-cronnext"
	"github.com/netresearch/go-cronnext/internal/config"
	"github.com/netresearch/go-cronnext/internal/logging"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// app carries the state shared by all subcommands once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg *config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:          "cronnext",
		Short:        "Compute next execution times of cron expressions",
		Long:         "cronnext computes when five-field cron expressions fire next, validates them and serves a preview API.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath, "path to cronnext config file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newNextCmd(a))
	cmd.AddCommand(newValidateCmd(a))
	cmd.AddCommand(newServeCmd(a))
	return cmd
}

// load reads the config file and sets up logging. A missing file is only an
// error when --config was given explicitly.
func (a *app) load(cmd *cobra.Command) error {
	var err error
	if cmd.Flags().Changed("config") {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.LoadOrDefault(a.configPath)
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	a.log = logging.New(a.cfg.Log.Level, a.cfg.Log.Format, cmd.ErrOrStderr())
	return nil
}

// calculator builds a Calculator from the loaded config. loc overrides the
// configured location when non-nil.
func (a *app) calculator(loc *time.Location) *cronnext.Calculator {
	if loc == nil {
		loc = a.cfg.TimeLocation()
	}
	return cronnext.New(
		cronnext.WithLocation(loc),
		cronnext.WithSearchLimit(a.cfg.SearchLimit),
		cronnext.WithLogger(logging.NewAdapter(a.log)),
	)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cronnext %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}

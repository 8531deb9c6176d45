// Command splash computes and checks SPLASH spectral hash identifiers.
//
// Usage:
//
//	splash compute [flags] [file ...]
//	splash verify [flags] [file ...]
//	splash parse id ...
//	splash version
//
// Input files hold one spectrum per line as "mz:intensity" peak lists,
// optionally prefixed by an identifier and followed by an expected splash,
// separated by tabs or commas. Without files, or with "-", stdin is read.
//
// Examples:
//
//	echo "100:1 101:2 102:3" | splash compute
//	splash compute -format json -workers 8 library.tsv
//	splash verify reference.csv
//	splash parse splash10-0z00000000-f5bf6f6a4a1520a35d4f
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cwbudde/algo-splash/internal/config"
	"github.com/cwbudde/algo-splash/internal/logging"
	"github.com/cwbudde/algo-splash/splash"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// errFailed signals an unsuccessful run whose details were already printed.
var errFailed = errors.New("run failed")

type app struct {
	cfg     config.Config
	colored bool
	start   time.Time
}

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errFailed) {
			errColor := color.New(color.FgRed)
			errColor.Fprintln(os.Stderr, "splash:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "splash",
		Short:         "Compute SPLASH spectral hash identifiers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = logging.FromContext(cmd.Context()).Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "path to a TOML config file")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.String("log-level", "warn", "log level (debug|info|warn|error)")

	root.AddCommand(newComputeCmd(a), newVerifyCmd(a), newParseCmd(), newVersionCmd())
	return root
}

// setup loads configuration, applies explicitly set flags on top and
// installs the run logger.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if f := flags.Lookup("workers"); f != nil && f.Changed {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.Format, _ = flags.GetString("format")
	}
	if f := flags.Lookup("explain"); f != nil && f.Changed {
		cfg.Explain, _ = flags.GetBool("explain")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogLevel, false)
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.New().String(), "cmd", cmd.Name())
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))

	a.cfg = cfg
	a.colored = useColor(cfg.Color, cmd.OutOrStdout())
	a.start = time.Now()
	logger.Debugw("configured", "workers", cfg.Workers, "format", cfg.Format, "config", path)
	return nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tool and identifier versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "splash %s (identifier %s)\n", version, splash.PrefixBlock())
			return err
		},
	}
}

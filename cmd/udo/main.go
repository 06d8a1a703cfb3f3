package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/udostore/internal/cliconfig"
	"github.com/bft-labs/udostore/internal/watch"
	"github.com/bft-labs/udostore/pkg/log"
	"github.com/bft-labs/udostore/pkg/persist"
	"github.com/bft-labs/udostore/pkg/udo"
)

var exampleUsage = strings.TrimSpace(`
  udo show --output yaml
  udo set visitor_id=abc123 consent=granted
  udo --path /tmp/udo.json watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app is the state shared by every subcommand once configuration is resolved.
type app struct {
	cfg    cliconfig.Config
	logger log.Logger
	store  *persist.Coordinator
	out    io.Writer
}

func (a *app) print(u udo.Udo) error {
	text, err := cliconfig.Render(u, a.cfg.Output)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.out, text)
	return err
}

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "udo: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath, envFile string
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "udo",
		Short:         "Inspect and edit the persisted universal data object",
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// File config, then .env, then UDO_* environment, then flags.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if envFile != "" {
				if err := cliconfig.LoadEnvFile(envFile); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cliconfig.NewLogger(cfg)
			if err != nil {
				return err
			}
			logger.Debug("configuration", log.Any("config", cfg))

			a.cfg = cfg
			a.logger = logger
			a.store = persist.Open(cfg.Path, persist.WithLogger(logger))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.udo/config.toml)")
	pf.StringVar(&envFile, "env-file", "", "dotenv file with UDO_* variables")
	pf.StringVar(&cfg.Path, "path", cfg.Path, "UDO file location")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error, disabled)")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console, json)")
	pf.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output format (json, yaml, percent)")
	pf.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay before reloading after a change (watch)")

	root.AddCommand(
		newShowCommand(a),
		newGetCommand(a),
		newSetCommand(a),
		newUnsetCommand(a),
		newExistsCommand(a),
		newPathCommand(a),
		newWatchCommand(a),
	)
	return root
}

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored UDO, creating an empty one if none is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.store.Load(udo.Udo{})
			if err != nil {
				return err
			}
			return a.print(u)
		},
	}
}

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print one value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.store.Load(udo.Udo{})
			if err != nil {
				return err
			}
			v, ok := u[args[0]]
			if !ok {
				return fmt.Errorf("key %q not set", args[0])
			}
			_, err = fmt.Fprintln(a.out, v)
			return err
		},
	}
}

func newSetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY=VALUE...",
		Short: "Set one or more values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := parsePairs(args)
			if err != nil {
				return err
			}
			u, err := a.store.Update(udo.Udo{}, func(u udo.Udo) {
				for k, v := range pairs {
					u[k] = v
				}
			})
			if err != nil {
				return err
			}
			return a.print(u)
		},
	}
}

func newUnsetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY...",
		Short: "Remove one or more keys",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := a.store.Update(udo.Udo{}, func(u udo.Udo) {
				for _, k := range args {
					delete(u, k)
				}
			})
			if err != nil {
				return err
			}
			return a.print(u)
		},
	}
}

func newExistsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists",
		Short: "Report whether a UDO is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.out, a.store.Exists())
			return err
		},
	}
}

func newPathCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved UDO file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(a.out, a.cfg.Path)
			return err
		},
	}
}

func newWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the UDO every time its file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := watch.NewWatcher(a.store, a.cfg.Path, a.cfg.Debounce, a.logger, func(u udo.Udo) {
				if err := a.print(u); err != nil {
					a.logger.Error("print failed", log.Err(err))
				}
			})
			a.logger.Info("watching udo", log.String("path", a.cfg.Path))
			return w.Run(ctx)
		},
	}
}

// parsePairs splits KEY=VALUE arguments. Keys must be non-empty.
func parsePairs(args []string) (map[string]string, error) {
	pairs := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected KEY=VALUE, got %q", arg)
		}
		pairs[k] = v
	}
	return pairs, nil
}

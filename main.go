package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/CrestNiraj12/terminalsentiment/infra/backend"
	"github.com/CrestNiraj12/terminalsentiment/infra/config"
	"github.com/CrestNiraj12/terminalsentiment/infra/imagefetch"
	"github.com/CrestNiraj12/terminalsentiment/infra/logging"
	"github.com/CrestNiraj12/terminalsentiment/infra/metrics"
	"github.com/CrestNiraj12/terminalsentiment/tui"
	"github.com/CrestNiraj12/terminalsentiment/tui/theme"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// options are the command-line overrides. Empty values keep the environment config.
type options struct {
	backendURL  string
	route       string
	metricsAddr string
	logFile     string
	debug       bool
}

func newRootCmd(run func(options) error) *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "terminalsentiment",
		Short:         "Browse posts and analyze their sentiment in the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	root.Flags().StringVar(&opts.backendURL, "backend-url", "", "backend origin (default "+config.DefaultBackendURL+")")
	root.Flags().StringVar(&opts.route, "route", "/", `start route: "/", "/explore", "/trending" or "/posts/{community}/{postId}"`)
	root.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	root.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	root.Flags().BoolVar(&opts.debug, "debug", false, "log at debug level")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
			fmt.Fprintf(cmd.OutOrStdout(), "TerminalSentiment %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		},
	})
	return root
}

// applyOptions layers flags over the environment config.
func applyOptions(cfg config.Config, opts options) (config.Config, error) {
	if opts.backendURL != "" {
		u, err := config.NormalizeBackendURL(opts.backendURL)
		if err != nil {
			return cfg, err
		}
		cfg.BackendBaseURL = u
	}
	if opts.metricsAddr != "" {
		cfg.MetricsAddr = opts.metricsAddr
	}
	if opts.logFile != "" {
		cfg.LogPath = opts.logFile
	}
	if opts.debug {
		cfg.LogLevel = logrus.DebugLevel
	}
	return cfg, nil
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func run(opts options) error {
	// 1. Load config from environment (.env is auto-loaded), then flags.
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "config")
	}
	if cfg, err = applyOptions(cfg, opts); err != nil {
		return errors.Wrap(err, "flags")
	}
	route, err := tui.ParseRoute(opts.route)
	if err != nil {
		return err
	}

	// 2. Logging goes to a file; the terminal belongs to the UI.
	logger, closer, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "logging")
	}
	defer closer.Close()
	log := logger.WithField("backend", cfg.BackendBaseURL)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Build infrastructure.
	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(reg)
	if cfg.MetricsAddr != "" {
		go metrics.Serve(ctx, cfg.MetricsAddr, reg, log)
	}

	client := backend.NewClient(cfg.BackendBaseURL,
		backend.WithLogger(log),
		backend.WithObserver(recorder),
	)

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Posts:     backend.NewPostService(client),
		Users:     backend.NewUserService(client),
		Sentiment: backend.NewSentimentService(client),
		Images:    imagefetch.New(nil),
		Theme:     theme.NewProvider(config.FileThemeStore{Path: cfg.UIStatePath}, log),
		Log:       log,
		Route:     route,
	})

	// 5. Run.
	log.WithField("route", route.Path()).Info("starting")
	p := tea.NewProgram(rootModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "terminalsentiment")
	}
	return nil
}

func execute(args []string, stdout, stderr io.Writer, runFn func(options) error) int {
	if args == nil {
		args = []string{} // nil makes cobra read os.Args
	}
	cmd := newRootCmd(runFn)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "terminalsentiment: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, run))
}

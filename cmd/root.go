package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ramanasai/tlog/internal/config"
	"github.com/ramanasai/tlog/internal/notify"
	"github.com/ramanasai/tlog/internal/selector"
	"github.com/ramanasai/tlog/internal/session"
	"github.com/ramanasai/tlog/internal/store"
	"github.com/ramanasai/tlog/internal/ui"
	"github.com/ramanasai/tlog/internal/version"
)

var (
	cfgFile string
	rootDir string
)

// newPrompter is swapped out in tests.
var newPrompter = func(cfg config.Config) session.Prompter {
	return ui.Prompter{Theme: ui.ThemeByName(cfg.Theme), MaxListed: cfg.MaxListed}
}

var rootCmd = &cobra.Command{
	Use:   "tlog",
	Short: "Narrate your day into plain-text time logs",
	Long: `tlog starts or finishes one time-log entry per run.

With nothing running it asks for a project and a task: type to rank the
known ones, pick with \0..\9, or press enter to create a new one. With an
entry running it asks for a closing note instead.

Logs live in <root>/Weeks/<year> W<week>/<dd-mm-yyyy>.txt and projects in
<root>/Projects/<name>.txt.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func Execute() error {
	rootCmd.Version = version.GetVersion()
	rootCmd.SetVersionTemplate(version.GetVersionInfo() + "\n")
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&rootDir, "root", "r", config.DefaultRoot, "storage directory")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/tlog/config.yaml)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := session.Options{
		Selector: selector.Options{QuitSequence: cfg.QuitSequence},
		Logger:   logger,
	}
	if cfg.Notify.Enabled {
		opts.Notifier = notify.Desktop{}
	}

	tracker := session.NewTracker(store.New(cfg.Root))
	res, err := session.Run(ctx, tracker, newPrompter(cfg), opts)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), describe(res, ui.ThemeByName(cfg.Theme)))
	return nil
}

// describe is the one line printed after the prompt closes.
func describe(res session.Result, th ui.Theme) string {
	if res.WriteErr != nil {
		return th.Error.Render("not saved: " + res.WriteErr.Error())
	}
	switch res.Outcome.Kind {
	case selector.StartTimer:
		return th.Success.Render("started") + " " + th.Value.Render(strings.TrimSpace(res.Record))
	case selector.CloseEntry:
		return th.Success.Render("closed") + " " + th.Value.Render(strings.TrimSpace(res.Record))
	default:
		return th.Hint.Render("nothing recorded")
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/meditimer/internal/app"
	"github.com/akyairhashvil/meditimer/internal/audio"
	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/database"
	"github.com/akyairhashvil/meditimer/internal/tui"
	"github.com/akyairhashvil/meditimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type globalOptions struct {
	configPath string
}

// readPassphrase is swapped out in tests.
var readPassphrase = promptForKey

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &globalOptions{}
	cmd := &cobra.Command{
		Use:           config.AppName,
		Short:         "A terminal meditation timer",
		Long:          "Pick a duration on the dial, loop an ambient sound and keep your practice streak.",
		Version:       tui.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $MEDITIMER_CONFIG or the user config dir)")
	cmd.AddCommand(
		runCmd(opts),
		statsCmd(opts),
		reportCmd(opts),
		exportCmd(opts),
		importCmd(opts),
		reminderCmd(opts),
	)
	return cmd
}

// env is the state every command opens: config and the store.
type env struct {
	cfg config.Config
	db  *database.Database
}

func openEnv(ctx context.Context, opts *globalOptions) (*env, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	path := opts.configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	db, err := database.Open(ctx, filepath.Join(cfg.Data.Dir, config.DBFileName))
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, db: db}, nil
}

func (e *env) Close() {
	util.LogError("close database", e.db.Close())
}

// newApp builds the application context with external players for the
// ambient loop and the breathing cues.
func (e *env) newApp(ctx context.Context, p app.Presenter) (*app.App, error) {
	a := app.New(e.cfg, e.db, audio.NewExecPlayer(e.cfg.Audio), audio.NewExecPlayer(e.cfg.Audio), p)
	if err := a.Init(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func runTUI(ctx context.Context, opts *globalOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	e, err := openEnv(ctx, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	if err := os.MkdirAll(filepath.Dir(e.cfg.Data.LogFile), 0o755); err != nil {
		return err
	}
	logFile, err := tea.LogToFile(e.cfg.Data.LogFile, config.AppName)
	if err != nil {
		return err
	}
	defer logFile.Close()

	queue := tui.NewNoticeQueue()
	a, err := e.newApp(ctx, queue)
	if err != nil {
		return err
	}
	tui.SetTheme(e.cfg.Theme.Name)
	model := tui.NewModel(ctx, a, queue, e.cfg.Session.Presets)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()
	util.LogError("teardown", a.Teardown(ctx))
	return runErr
}

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}

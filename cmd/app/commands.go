package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/akyairhashvil/meditimer/internal/app"
	"github.com/akyairhashvil/meditimer/internal/config"
	"github.com/akyairhashvil/meditimer/internal/database"
	"github.com/akyairhashvil/meditimer/internal/models"
	"github.com/akyairhashvil/meditimer/internal/reminder"
	"github.com/akyairhashvil/meditimer/internal/report"
	"github.com/akyairhashvil/meditimer/internal/session"
	"github.com/akyairhashvil/meditimer/internal/stats"
	"github.com/akyairhashvil/meditimer/internal/tui"
	"github.com/akyairhashvil/meditimer/internal/util"
	"github.com/spf13/cobra"
)

func printNotice(w io.Writer) app.Presenter {
	return app.PresenterFunc(func(n models.Notice) {
		fmt.Fprintf(w, "\n%s: %s\n", n.Title, n.Message)
	})
}

func runCmd(opts *globalOptions) *cobra.Command {
	var (
		minutes   int
		sound     string
		technique string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a session without the interface",
		Long: `Count down a session in the terminal, then record it.

Examples:
  meditimer run                       # default length from config
  meditimer run -m 10 -s rain         # ten minutes with rain
  meditimer run -m 15 -b 4-7-8        # with guided breathing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			e, err := openEnv(ctx, opts)
			if err != nil {
				return err
			}
			defer e.Close()

			out := cmd.OutOrStdout()
			a, err := e.newApp(ctx, printNotice(out))
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("minutes") {
				minutes = e.cfg.Session.DefaultMinutes
			}
			a.SelectDuration(minutes)
			if sound != "" {
				if err := a.SelectSound(ctx, sound); err != nil {
					return err
				}
			}
			if technique != "" {
				if err := a.StartBreathing(ctx, technique); err != nil {
					return err
				}
			}
			return runHeadless(ctx, a, session.NewScheduler(config.TickInterval), out)
		},
	}
	cmd.Flags().IntVarP(&minutes, "minutes", "m", config.DefaultMinutes, "session length in minutes (1-60)")
	cmd.Flags().StringVarP(&sound, "sound", "s", "", "ambient sound: silence, rain, forest, ocean")
	cmd.Flags().StringVarP(&technique, "breathing", "b", "", "breathing technique: 4-4-4-4, 4-7-8, box")
	return cmd
}

// runHeadless drives a on sched until the session completes or ctx ends.
func runHeadless(ctx context.Context, a *app.App, sched *session.Scheduler, out io.Writer) error {
	if !a.Start(ctx) {
		return errors.New("a session is already running")
	}
	st := a.Status()
	fmt.Fprintf(out, "Meditating for %d min. Ctrl+C to stop.\n", st.Session.Minutes)

	sched.Start(ctx, func(t time.Time) bool {
		res := a.Tick(ctx, t)
		line := tui.FormatTimeRemaining(time.Duration(res.Remaining) * time.Second)
		if p := a.Status().Prompt; p != "" {
			line += "  " + p
		}
		fmt.Fprintf(out, "\r%-30s", line)
		return !res.Completed
	})
	<-sched.Done()
	sched.Stop()

	if ctx.Err() != nil && a.Stop() {
		fmt.Fprintln(out, "\nSession stopped.")
	}
	return a.Teardown(context.Background())
}

func statsCmd(opts *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show practice statistics and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := openEnv(ctx, opts)
			if err != nil {
				return err
			}
			defer e.Close()
			a, err := e.newApp(ctx, nil)
			if err != nil {
				return err
			}
			st := a.Status()
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Stats        models.Stats        `json:"stats"`
					Achievements models.Achievements `json:"achievements"`
				}{st.Stats, st.Achievements})
			}
			writeStats(out, st.Stats, st.Achievements)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func writeStats(w io.Writer, s models.Stats, unlocked models.Achievements) {
	fmt.Fprintf(w, "Total:     %s\n", tui.FormatDuration(time.Duration(s.TotalMinutes)*time.Minute))
	fmt.Fprintf(w, "Sessions:  %d\n", s.CompletedSessions)
	fmt.Fprintf(w, "Streak:    %d days\n", s.Streak)
	fmt.Fprintf(w, "Stars:     %d\n", s.Stars)
	if s.LastMeditation != nil {
		fmt.Fprintf(w, "Last:      %s\n", *s.LastMeditation)
	}
	fmt.Fprintln(w, "\nAchievements:")
	for _, a := range stats.Catalogue {
		mark := "[ ]"
		if unlocked.Unlocked(a.ID) {
			mark = "[x]"
		}
		fmt.Fprintf(w, "  %s %s %s - %s\n", mark, a.Icon, a.Title, a.Description)
	}
	if recent := report.RecentDays(s, 7); len(recent) > 0 {
		fmt.Fprintln(w, "\nRecent days:")
		for _, d := range recent {
			fmt.Fprintf(w, "  %s\n", d)
		}
	}
}

func reportCmd(opts *globalOptions) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write a PDF statistics report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := openEnv(ctx, opts)
			if err != nil {
				return err
			}
			defer e.Close()
			a, err := e.newApp(ctx, nil)
			if err != nil {
				return err
			}
			now := time.Now()
			if output == "" {
				dir := util.ReportsDir(config.AppName)
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
				output = filepath.Join(dir, report.FileName(now))
			}
			st := a.Status()
			path, err := report.WriteStatsPDF(output, st.Stats, st.Achievements, now)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF Report generated: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}

func exportCmd(opts *globalOptions) *cobra.Command {
	var (
		output  string
		encrypt bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stats, achievements and reminder to a backup file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := openEnv(ctx, opts)
			if err != nil {
				return err
			}
			defer e.Close()

			pass := ""
			if encrypt {
				pass, err = readPassphrase("Backup passphrase: ")
				if err != nil {
					return err
				}
				if err := util.ValidatePassphrase(pass); err != nil {
					return fmt.Errorf("passphrase too weak: %w", err)
				}
			}
			data, err := e.db.ExportBackup(ctx, pass)
			if err != nil {
				return err
			}
			if output == "" {
				output = fmt.Sprintf("meditimer-backup-%s.json", time.Now().Format("20060102-150405"))
			}
			if err := os.WriteFile(output, data, 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Backup written: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&encrypt, "encrypt", false, "protect the backup with a passphrase")
	return cmd
}

func importCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace stored data with a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			e, err := openEnv(ctx, opts)
			if err != nil {
				return err
			}
			defer e.Close()

			pass := ""
			if database.IsEncryptedBackup(data) {
				if pass, err = readPassphrase("Backup passphrase: "); err != nil {
					return err
				}
			}
			if err := e.db.ImportBackup(ctx, data, pass); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Backup imported.")
			return nil
		},
	}
}

func reminderCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reminder [HH:MM|off]",
		Short: "Show or set the daily reminder",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := openEnv(ctx, opts)
			if err != nil {
				return err
			}
			defer e.Close()
			a, err := e.newApp(ctx, nil)
			if err != nil {
				return err
			}
			r := a.Status().Reminder
			if len(args) == 1 {
				if r, err = reminder.Parse(args[0], r); err != nil {
					return err
				}
				if err := a.SetReminder(ctx, r); err != nil {
					return err
				}
			}
			out := cmd.OutOrStdout()
			if !r.Enabled {
				fmt.Fprintln(out, "Reminder: off")
				return nil
			}
			loc, err := e.cfg.Location()
			if err != nil {
				loc = time.Local
			}
			next := reminder.Next(r, time.Now(), loc)
			fmt.Fprintf(out, "Reminder: %s (next %s)\n", reminder.Format(r), next.Format("Mon 02 Jan 15:04 MST"))
			return nil
		},
	}
}

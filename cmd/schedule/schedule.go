package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/ryanreadbooks/cmdrun/cmd/cli"
	"github.com/ryanreadbooks/cmdrun/config"
	"github.com/ryanreadbooks/cmdrun/pkg/process"
	"github.com/ryanreadbooks/cmdrun/pkg/safe"
	"github.com/ryanreadbooks/cmdrun/runner"
	"github.com/spf13/cobra"
)

var (
	cronSpec       string
	varFlags       []string
	workingDir     string
	timeoutSeconds int
)

var ScheduleCmd = &cobra.Command{
	Use:   "schedule [command line]",
	Short: "Run a command line repeatedly on a cron schedule.",
	Long:  "Run a command line repeatedly on a cron schedule until interrupted.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchedule(cmd.Context(), cli.Line(args))
	},
}

func init() {
	ScheduleCmd.Flags().StringVar(&cronSpec, "cron", "", "Cron spec, e.g. \"*/5 * * * *\".")
	ScheduleCmd.Flags().StringArrayVar(&varFlags, "var", nil, "Additional variable as NAME=VALUE, may repeat.")
	ScheduleCmd.Flags().StringVar(&workingDir, "working-dir", "", "The working directory to execute the command in.")
	ScheduleCmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "Per-run timeout in seconds.")
	ScheduleCmd.MarkFlagRequired("cron")
}

func runSchedule(ctx context.Context, line string) error {
	vars, err := cli.ParseVars(varFlags)
	if err != nil {
		return err
	}

	conf, err := config.GetConfig().Overlay(vars)
	if err != nil {
		return fmt.Errorf("failed to overlay config: %w", err)
	}

	timeout := time.Duration(conf.Run.TimeoutSeconds) * time.Second
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}

	r := runner.New(conf.Lookup(), conf.PreserveQuotes, timeout)

	c := cron.New()
	_, err = c.AddFunc(cronSpec, func() {
		// run off the scheduler goroutine so a slow command does not
		// delay the next tick
		safe.Go(func() {
			if wg := process.GetRootWaitGroup(ctx); wg != nil {
				wg.Add(1)
				defer wg.Done()
			}

			runId := uuid.New().String()
			slog.Info("scheduled run", "run_id", runId, "command", line)

			output, err := r.Run(ctx, line, workingDir)
			if err != nil {
				slog.Error("scheduled run failed", "run_id", runId, "error", err)
				return
			}
			fmt.Print(output)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to parse cron spec %q: %w", cronSpec, err)
	}

	slog.Info("schedule started", "cron", cronSpec, "command", line)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()

	return nil
}

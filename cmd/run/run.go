package run

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ryanreadbooks/cmdrun/cmd/cli"
	"github.com/ryanreadbooks/cmdrun/config"
	"github.com/ryanreadbooks/cmdrun/pkg/os"
	"github.com/ryanreadbooks/cmdrun/runner"
	"github.com/spf13/cobra"
)

var (
	varFlags       []string
	workingDir     string
	timeoutSeconds int
)

var RunCmd = &cobra.Command{
	Use:   "run [command line]",
	Short: "Tokenize a command line and run it as a child process.",
	Long:  "Tokenize a command line and run it as a child process, printing its combined output.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd.Context(), cli.Line(args))
	},
}

func init() {
	RunCmd.Flags().StringArrayVar(&varFlags, "var", nil, "Additional variable as NAME=VALUE, may repeat.")
	RunCmd.Flags().StringVar(&workingDir, "working-dir", "", "The working directory to execute the command in.")
	RunCmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "Timeout in seconds, config value is used if not provided.")
}

func runCommand(ctx context.Context, line string) error {
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

	runId := uuid.New().String()
	slog.Info("running command", "run_id", runId, "system", os.GetSystemDistro(), "command", line)

	r := runner.New(conf.Lookup(), conf.PreserveQuotes, timeout)
	output, err := r.Run(ctx, line, workingDir)
	if err != nil {
		return fmt.Errorf("failed to run command: %w", err)
	}

	fmt.Print(output)

	return nil
}

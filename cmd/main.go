package main

import (
	"github.com/ryanreadbooks/cmdrun/cmd/batch"
	"github.com/ryanreadbooks/cmdrun/cmd/run"
	"github.com/ryanreadbooks/cmdrun/cmd/schedule"
	"github.com/ryanreadbooks/cmdrun/cmd/tokenize"
	"github.com/ryanreadbooks/cmdrun/config"
	"github.com/ryanreadbooks/cmdrun/pkg/process"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use: "cmdrun",
}

func init() {
	config.MustInit()

	rootCmd.AddCommand(tokenize.TokenizeCmd)
	rootCmd.AddCommand(run.RunCmd)
	rootCmd.AddCommand(batch.BatchCmd)
	rootCmd.AddCommand(schedule.ScheduleCmd)
}

func main() {
	ctx, cancel, wait := process.GetRootContext()
	rootCmd.ExecuteContext(ctx)
	cancel()

	wait()
}

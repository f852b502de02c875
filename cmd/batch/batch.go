package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/ryanreadbooks/cmdrun/cmd/cli"
	"github.com/ryanreadbooks/cmdrun/config"
	"github.com/ryanreadbooks/cmdrun/pkg/xmap"
	"github.com/ryanreadbooks/cmdrun/runner"
	"github.com/spf13/cobra"
)

var (
	varFlags       []string
	workingDir     string
	workers        int
	timeoutSeconds int
)

var BatchCmd = &cobra.Command{
	Use:   "batch [glob...]",
	Short: "Run every command line found in the matching script files.",
	Long:  "Expand the glob patterns to script files, read one command line per line (blank lines and # comments skipped) and run them concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(cmd.Context(), args)
	},
}

func init() {
	BatchCmd.Flags().StringArrayVar(&varFlags, "var", nil, "Additional variable as NAME=VALUE, may repeat.")
	BatchCmd.Flags().StringVar(&workingDir, "working-dir", "", "The working directory to execute the commands in.")
	BatchCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent workers, config value is used if not provided.")
	BatchCmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "Per-command timeout in seconds.")
}

// one command line taken from a script file
type entry struct {
	file    string
	lineNo  int
	command string
}

func (e entry) String() string {
	return fmt.Sprintf("%s:%d", e.file, e.lineNo)
}

func runBatch(ctx context.Context, patterns []string) error {
	vars, err := cli.ParseVars(varFlags)
	if err != nil {
		return err
	}

	conf, err := config.GetConfig().Overlay(vars)
	if err != nil {
		return fmt.Errorf("failed to overlay config: %w", err)
	}

	entries, err := collectEntries(patterns)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("no commands matched %v", patterns)
	}

	poolSize := conf.Batch.Workers
	if workers > 0 {
		poolSize = workers
	}

	timeout := time.Duration(conf.Run.TimeoutSeconds) * time.Second
	if timeoutSeconds > 0 {
		timeout = time.Duration(timeoutSeconds) * time.Second
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	jobId := uuid.New().String()
	slog.Info("batch started", "job_id", jobId, "commands", len(entries), "workers", poolSize)

	r := runner.New(conf.Lookup(), conf.PreserveQuotes, timeout)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures = make(map[string]error)
	)
	for _, e := range entries {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()

			output, err := r.Run(ctx, e.command, workingDir)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[e.String()] = err
				return
			}
			fmt.Printf("# %s\n%s", e, output)
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			failures[e.String()] = fmt.Errorf("failed to submit command: %w", err)
			mu.Unlock()
		}
	}
	wg.Wait()

	if len(failures) > 0 {
		slog.Error("batch finished with failures", append([]any{"job_id", jobId}, xmap.KVs(failures)...)...)
		failed := xmap.Keys(failures)
		slices.Sort(failed)
		return fmt.Errorf("%d of %d commands failed: %s", len(failures), len(entries), strings.Join(failed, ", "))
	}

	slog.Info("batch finished", "job_id", jobId, "commands", len(entries))

	return nil
}

// collectEntries expands the glob patterns and reads command lines from
// every matched file.
func collectEntries(patterns []string) ([]entry, error) {
	var entries []entry
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to expand pattern %q: %w", pattern, err)
		}
		for _, file := range matches {
			content, err := os.ReadFile(file)
			if err != nil {
				return nil, fmt.Errorf("failed to read script %q: %w", file, err)
			}
			for i, line := range strings.Split(string(content), "\n") {
				line = strings.TrimSpace(line)
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				entries = append(entries, entry{file: file, lineNo: i + 1, command: line})
			}
		}
	}
	return entries, nil
}

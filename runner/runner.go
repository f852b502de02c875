// Package runner turns a raw command line into a child process: it
// safety-checks the line, tokenizes it with pkg/cmdline, spawns the
// process and captures its combined output.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/ryanreadbooks/cmdrun/pkg/cmdline"
)

const (
	maxCapturedOutputLen = 15000

	DefaultTimeout = 60 * time.Second
)

type resultTag string

const (
	blockedTag resultTag = "<command_blocked>"
	runErrTag  resultTag = "<command_run_error>"
)

var (
	errDangerousCommand = errors.New("dangerous command blocked")
	errEmptyCommand     = errors.New("empty command")
)

func wrapRunError(err error, tag resultTag) error {
	return fmt.Errorf("%s%w%s", tag, err, tag)
}

// Runner executes command lines with a fixed variable lookup and timeout.
type Runner struct {
	grammar *cmdline.Grammar
	timeout time.Duration
}

func New(lookup cmdline.Lookup, preserveQuotes bool, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{
		grammar: cmdline.New(lookup, preserveQuotes),
		timeout: timeout,
	}
}

// Tokens exposes the tokenization the runner would execute, without
// running anything.
func (r *Runner) Tokens(command string) ([]string, error) {
	return r.grammar.Parse(command)
}

// Run executes one command line under the optional working directory and
// returns its combined output, truncated past a cap.
func (r *Runner) Run(ctx context.Context, command, workdir string) (string, error) {
	if err := safeCheckCommand(command); err != nil {
		return "", wrapRunError(err, blockedTag)
	}

	tokens, err := r.grammar.Parse(command)
	if err != nil {
		return "", wrapRunError(err, runErrTag)
	}
	if len(tokens) == 0 {
		return "", wrapRunError(errEmptyCommand, blockedTag)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, tokens[0], tokens[1:]...)
	if workdir != "" {
		cmd.Dir = workdir
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", wrapRunError(fmt.Errorf("%w: %s", err, output), runErrTag)
	}

	outputStr := string(output)

	// truncate output
	if len(outputStr) > maxCapturedOutputLen {
		more := len(outputStr) - maxCapturedOutputLen
		outputStr = outputStr[:maxCapturedOutputLen] + fmt.Sprintf("\n... (truncated, %d more chars)", more)
	}

	return outputStr, nil
}

// check if the command line is safe to execute
func safeCheckCommand(command string) error {
	for _, p := range dangerousPatterns {
		if p.MatchString(command) {
			return errDangerousCommand
		}
	}
	return nil
}

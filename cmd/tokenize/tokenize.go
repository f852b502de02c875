package tokenize

import (
	"encoding/json"
	"fmt"

	"github.com/ryanreadbooks/cmdrun/cmd/cli"
	"github.com/ryanreadbooks/cmdrun/config"
	"github.com/ryanreadbooks/cmdrun/pkg/cmdline"
	"github.com/spf13/cobra"
)

var (
	varFlags       []string
	preserveQuotes bool
	asJSON         bool
)

var TokenizeCmd = &cobra.Command{
	Use:   "tokenize [command line]",
	Short: "Print the argument tokens of a command line.",
	Long:  "Print the argument tokens of a command line after quoting, escaping and %NAME% substitution.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTokenize(cli.Line(args))
	},
}

func init() {
	TokenizeCmd.Flags().StringArrayVar(&varFlags, "var", nil, "Additional variable as NAME=VALUE, may repeat.")
	TokenizeCmd.Flags().BoolVar(&preserveQuotes, "preserve-quotes", false, "Keep literal double quotes around quoted tokens.")
	TokenizeCmd.Flags().BoolVar(&asJSON, "json", false, "Print the tokens as a JSON array.")
}

func runTokenize(line string) error {
	vars, err := cli.ParseVars(varFlags)
	if err != nil {
		return err
	}

	conf, err := config.GetConfig().Overlay(vars)
	if err != nil {
		return fmt.Errorf("failed to overlay config: %w", err)
	}

	tokens, err := cmdline.Tokenize(line, conf.Lookup(), preserveQuotes || conf.PreserveQuotes)
	if err != nil {
		return err
	}

	if asJSON {
		encoded, err := json.Marshal(tokens)
		if err != nil {
			return fmt.Errorf("failed to encode tokens: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	for _, token := range tokens {
		fmt.Println(token)
	}

	return nil
}

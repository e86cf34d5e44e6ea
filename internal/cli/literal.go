package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/irlit/internal/literal"
)

// LiteralResult is the JSON payload of the literal command.
type LiteralResult struct {
	Kind    string   `json:"kind"`
	Args    []string `json:"args"`
	Literal string   `json:"literal"`
}

// NewLiteralCommand creates the literal command.
func NewLiteralCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "literal <kind> [token...]",
		Short: "Translate IR tokens into one C++ literal",
		Long: `Translate IR tokens into one C++ literal.

Scalar kinds (bool, autopad, precision, rounding) take exactly one token.
List kinds (ints, precisions) take zero or more. Put negative integers
after "--" so they are not read as flags.

Examples:
  irlit literal autopad same_upper
  irlit literal precisions FP16 FP32
  irlit literal ints -- -1 0 1`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLiteral(rootOpts, args[0], args[1:], cmd)
		},
	}

	return cmd
}

func runLiteral(opts *RootOptions, kindName string, tokens []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	kind, err := literal.ParseKind(kindName)
	if err != nil {
		return outputTranslateError(formatter, err)
	}

	formatter.VerboseLog("Translating %d token(s) as %s", len(tokens), kind)

	out, err := literal.Render(kind, tokens)
	if err != nil {
		return outputTranslateError(formatter, err)
	}

	if formatter.Format == "json" {
		if tokens == nil {
			tokens = []string{}
		}
		return formatter.Success(LiteralResult{Kind: string(kind), Args: tokens, Literal: out})
	}
	return formatter.Success(out)
}

func outputTranslateError(formatter *OutputFormatter, err error) error {
	code := MapTranslateErrorCode(err)
	var details interface{}
	if te := asTranslateError(err); te != nil && te.Token != "" {
		details = map[string]string{"token": te.Token}
	}
	_ = formatter.Error(code, err.Error(), details)
	return WrapExitError(translateExitCode(err), code, err)
}

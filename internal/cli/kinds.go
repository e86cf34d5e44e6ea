package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/irlit/internal/literal"
)

// KindInfo describes one translator for the kinds command.
type KindInfo struct {
	Kind       string   `json:"kind"`
	List       bool     `json:"list"`
	Vocabulary []string `json:"vocabulary"`
}

// NewKindsCommand creates the kinds command.
func NewKindsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds [kind]",
		Short: "List translators and the tokens each accepts",
		Long: `List translators and the tokens each accepts.

Every listed token is guaranteed to translate. Any other token is rejected
with E201.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runKinds(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	kinds := literal.Kinds
	if len(args) == 1 {
		k, err := literal.ParseKind(args[0])
		if err != nil {
			return outputTranslateError(formatter, err)
		}
		kinds = []literal.Kind{k}
	}

	infos := make([]KindInfo, len(kinds))
	for i, k := range kinds {
		vocab := literal.Vocabulary(k)
		if vocab == nil {
			vocab = []string{}
		}
		infos[i] = KindInfo{Kind: string(k), List: k.IsList(), Vocabulary: vocab}
	}

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	var b strings.Builder
	for _, info := range infos {
		values := strings.Join(info.Vocabulary, ", ")
		if len(info.Vocabulary) == 0 {
			values = "<integer>"
		}
		arity := "one of"
		if info.List {
			arity = "list of"
		}
		fmt.Fprintf(&b, "%-10s %s: %s\n", info.Kind, arity, values)
	}
	return formatter.Success(strings.TrimSuffix(b.String(), "\n"))
}

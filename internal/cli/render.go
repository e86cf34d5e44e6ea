package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/irlit/internal/render"
	"github.com/roach88/irlit/internal/request"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output   string // canonical JSON output path
	FailFast bool
	RunID    string // fixed run ID; generated when empty
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <batch-file>",
		Short: "Render every literal in a batch file",
		Long: `Render every literal in a YAML or CUE batch file.

Text output lists one "name = literal;" line per entry. JSON output wraps
the result in the standard response envelope with the run ID as trace_id.
All failing literals are reported unless --fail-fast is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write canonical JSON result to this path")
	cmd.Flags().BoolVar(&opts.FailFast, "fail-fast", false, "stop at the first failing literal")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "use this run ID instead of a generated UUIDv7")

	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	batch, err := request.Load(path)
	if err != nil {
		code, message := parseLoadError(err)
		_ = formatter.Error(code, message, nil)
		return WrapExitError(ExitCommandError, "loading batch", err)
	}

	formatter.VerboseLog("Loaded batch %q with %d literal(s) from %s", batch.Name, len(batch.Literals), path)

	if verrs := request.Validate(batch); len(verrs) > 0 {
		return outputValidationErrors(formatter, verrs)
	}

	renderOpts := render.Options{Mode: render.ModeCollectAll}
	if opts.FailFast {
		renderOpts.Mode = render.ModeFailFast
	}
	if opts.RunID != "" {
		renderOpts.IDs = render.NewFixedGenerator(opts.RunID)
	}

	result, errs := render.Render(batch, renderOpts)
	formatter.VerboseLog("Run %s rendered %d of %d literal(s)", result.RunID, len(result.Entries), len(batch.Literals))
	if len(errs) > 0 {
		return outputRenderErrors(formatter, errs)
	}

	if opts.Output != "" {
		if err := writeResultToFile(result, opts.Output); err != nil {
			_ = formatter.Error(ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err), nil)
			return WrapExitError(ExitCommandError, "writing output", err)
		}
		formatter.VerboseLog("Wrote canonical result to %s", opts.Output)
	}

	if formatter.Format == "json" {
		return formatter.SuccessWithTrace(result, result.RunID)
	}

	fmt.Fprint(formatter.Writer, result.CppInitializers())
	fmt.Fprintf(formatter.Writer, "\n✓ Rendered %d literal(s) from %s\n", len(result.Entries), batch.Name)
	if opts.Output != "" {
		fmt.Fprintf(formatter.Writer, "Wrote result to %s\n", opts.Output)
	}
	return nil
}

// outputValidationErrors reports batch schema problems (exit code 2).
func outputValidationErrors(formatter *OutputFormatter, verrs []request.ValidationError) error {
	if formatter.Format == "json" {
		cliErrors := make([]CLIError, len(verrs))
		for i, v := range verrs {
			cliErrors[i] = CLIError{Code: v.Code, Message: v.Message, Details: v.Field}
		}
		if err := writeErrorList(formatter, cliErrors); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(formatter.Writer, "✗ Invalid batch")
		fmt.Fprintln(formatter.Writer)
		for _, v := range verrs {
			fmt.Fprintf(formatter.Writer, "  %s\n", v.Error())
		}
	}

	return NewExitError(ExitCommandError, fmt.Sprintf("batch validation failed with %d error(s)", len(verrs)))
}

// outputRenderErrors reports literals whose tokens did not translate (exit code 1).
func outputRenderErrors(formatter *OutputFormatter, errs []error) error {
	if formatter.Format == "json" {
		cliErrors := make([]CLIError, len(errs))
		for i, err := range errs {
			cliErrors[i] = CLIError{Code: MapTranslateErrorCode(err), Message: err.Error()}
		}
		if err := writeErrorList(formatter, cliErrors); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(formatter.Writer, "✗ Rendering failed")
		fmt.Fprintln(formatter.Writer)
		for _, err := range errs {
			fmt.Fprintf(formatter.Writer, "  %s: %s\n", MapTranslateErrorCode(err), err.Error())
		}
	}

	return NewExitError(ExitFailure, fmt.Sprintf("rendering failed with %d error(s)", len(errs)))
}

// writeErrorList emits the first error in the envelope and all of them as data.
func writeErrorList(formatter *OutputFormatter, cliErrors []CLIError) error {
	encoder := json.NewEncoder(formatter.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(CLIResponse{
		Status: "error",
		Error:  &cliErrors[0],
		Data:   cliErrors,
	})
}

// writeResultToFile writes the render result as canonical JSON.
func writeResultToFile(result *render.Result, filename string) error {
	data, err := result.Canonical()
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}

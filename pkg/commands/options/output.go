package options

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	OutputPretty = "pretty"
	OutputJSON   = "json"
	OutputYAML   = "yaml"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	// Out receives JSON errors. Defaults to color.Error.
	Out io.Writer
}

// ReportedError is an error HandleError has already written out. The caller
// should exit non-zero without printing it again.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output errors as JSON.")
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, merr := json.Marshal(out)
		if merr != nil {
			return merr
		}
		w := o.Out
		if w == nil {
			w = color.Error
		}
		_, _ = fmt.Fprintln(w, string(b))
		return &ReportedError{Err: err}
	}
	return err
}

// FormatOptions selects how a listing is rendered.
type FormatOptions struct {
	Output    string
	ShowIndex bool
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", OutputPretty,
		"Output format. One of 'pretty', 'json' or 'yaml'.")
	cmd.Flags().BoolVarP(&o.ShowIndex, "show-index", "k", true,
		"Show the index used to address each entry.")
}

func (o *FormatOptions) Validate() error {
	switch strings.ToLower(o.Output) {
	case OutputPretty, OutputJSON, OutputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q", o.Output)
}

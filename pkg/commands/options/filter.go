package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/todos/pkg/filter"
)

// FilterOptions
type FilterOptions struct {
	Filter filter.Filter
}

var _ pflag.Value = (*filterValue)(nil)

type filterValue struct {
	f *filter.Filter
}

func (v *filterValue) String() string {
	if v.f == nil {
		return filter.All().String()
	}
	return v.f.String()
}

func (v *filterValue) Set(s string) error {
	f, err := filter.Parse(s)
	if err != nil {
		return err
	}
	*v.f = f
	return nil
}

func (v *filterValue) Type() string {
	return "filter"
}

func AddFilterArg(cmd *cobra.Command, o *FilterOptions) {
	o.Filter = filter.All()
	cmd.Flags().VarP(&filterValue{f: &o.Filter}, "filter", "f",
		`Filter the entries: all, active, completed, or search:<text>. Indices address the filtered view.`)
}

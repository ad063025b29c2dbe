package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dball/riveter/internal/params"
	. "github.com/dball/riveter/internal/types"
	"github.com/dball/riveter/pkg/attributes"
)

// apply [params]: construct an instance, assign the params through the full pipeline, and
// print the resulting attributes.
func applyCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "apply [params]",
		Short: "Assign a params document to a new instance of a schema's class",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := loadClass()
			if err != nil {
				return err
			}
			m, err := readParams(cmd, args)
			if err != nil {
				return err
			}
			inst, err := class.New()
			if err != nil {
				return err
			}
			m = inst.CleanParams(m)
			if strict {
				if unknown := inst.UnknownParams(m); len(unknown) > 0 {
					return NewError(UnknownAttribute, "names", unknown, "class", class.Name())
				}
			} else {
				m = inst.FilterParams(m)
			}
			if err = inst.ApplyParams(m); err != nil {
				return err
			}
			attrs := inst.Attributes()
			if dump {
				dumper().Fdump(cmd.OutOrStdout(), attrs)
				return nil
			}
			return params.Encode(cmd.OutOrStdout(), params.FromMap(display(attrs).(map[string]any)))
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unknown params, naming all of them, instead of dropping them")
	return cmd
}

// display converts typed values into values that encode legibly.
func display(value any) any {
	switch v := value.(type) {
	case nil, bool, string, int64, time.Time:
		return v
	case attributes.Date:
		return v.String()
	case attributes.DateRange:
		return v.String()
	case []any:
		values := make([]any, len(v))
		for i, e := range v {
			values[i] = display(e)
		}
		return values
	case map[string]any:
		values := make(map[string]any, len(v))
		for k, e := range v {
			values[k] = display(e)
		}
		return values
	case fmt.Stringer:
		return v.String()
	}
	return value
}

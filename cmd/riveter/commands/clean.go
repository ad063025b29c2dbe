package commands

import (
	"github.com/spf13/cobra"

	"github.com/dball/riveter/internal/params"
)

// clean [params]: print params with blank values removed at every depth. With a schema,
// unknown keys are filtered out too.
func cleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [params]",
		Short: "Remove blank values from a params document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readParams(cmd, args)
			if err != nil {
				return err
			}
			m = params.CleanMapping(m)
			if schemaPath != "" {
				class, err := loadClass()
				if err != nil {
					return err
				}
				inst, err := class.New()
				if err != nil {
					return err
				}
				m = inst.FilterParams(m)
			}
			if dump {
				dumper().Fdump(cmd.OutOrStdout(), m.Map())
				return nil
			}
			return params.Encode(cmd.OutOrStdout(), m)
		},
	}
	return cmd
}

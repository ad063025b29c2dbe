package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// describe: list the declared attributes and the validations they imply.
func describeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "List a schema's attributes and validation hints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := loadClass()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if dump {
				dumper().Fdump(out, class.Attributes(), class.Hints())
				return nil
			}
			fmt.Fprintf(out, "class %s\n", class.Name())
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, def := range class.Attributes() {
				var notes []string
				if def.Of() != 0 {
					notes = append(notes, "of="+def.Of().String())
				}
				if def.Default() != nil {
					notes = append(notes, fmt.Sprintf("default=%v", def.Default()))
				}
				if def.Required() {
					notes = append(notes, "required")
				}
				if bounds, ok := def.Bounds(); ok {
					notes = append(notes, "between="+bounds.String())
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\n", def.Name(), def.Type(), strings.Join(notes, " "))
			}
			if err = w.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out, "hints")
			w = tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, hint := range class.Hints() {
				var notes []string
				if hint.Members != nil {
					members := make([]string, len(hint.Members))
					for i, m := range hint.Members {
						members[i] = fmt.Sprint(m)
					}
					notes = append(notes, "in=["+strings.Join(members, ", ")+"]")
				}
				if hint.Bounds != nil {
					notes = append(notes, "between="+hint.Bounds.String())
				}
				fmt.Fprintf(w, "  %s\t%s\t%s\n", hint.Attribute, hint.Kind, strings.Join(notes, " "))
			}
			return w.Flush()
		},
	}
	return cmd
}

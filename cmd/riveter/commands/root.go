package commands

import (
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/dball/riveter/internal/schema"
	. "github.com/dball/riveter/internal/types"
	"github.com/dball/riveter/pkg/attributes"
)

var (
	schemaPath string
	location   string
	dump       bool
)

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "riveter",
		Short:         "Declare typed attributes and coerce params into them",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&schemaPath, "schema", "", "schema document declaring the class")
	root.PersistentFlags().StringVar(&location, "location", "", "location in which times are parsed (e.g. America/New_York)")
	root.PersistentFlags().BoolVar(&dump, "dump", false, "dump values with spew instead of printing YAML")

	root.AddCommand(describeCmd(), cleanCmd(), applyCmd())
	return root
}

// loadClass declares the class of the --schema document.
func loadClass() (class *attributes.Class, err error) {
	if schemaPath == "" {
		err = NewError("cli.missingSchema")
		return
	}
	var opts []attributes.ClassOption
	if location != "" {
		loc, locErr := time.LoadLocation(location)
		if locErr != nil {
			err = NewError("cli.invalidLocation", "location", location, "error", locErr)
			return
		}
		opts = append(opts, attributes.WithLocation(loc))
	}
	f, err := os.Open(schemaPath)
	if err != nil {
		return
	}
	defer f.Close()
	class, err = schema.Load(f, opts...)
	return
}

// readParams decodes the params document named by the args, or stdin.
func readParams(cmd *cobra.Command, args []string) (m *attributes.Params, err error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		f, openErr := os.Open(args[0])
		if openErr != nil {
			err = openErr
			return
		}
		defer f.Close()
		r = f
	}
	m, err = attributes.DecodeParams(r)
	return
}

func dumper() *spew.ConfigState {
	return &spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true, DisableCapacities: true}
}

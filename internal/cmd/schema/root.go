package schema

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "schema",
		Short: "Utilities to inspect the CSV column schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("lsetcsv schema utilities!")
			return nil
		},
	}

	cmd.AddCommand(newShowCommand())

	return cmd
}

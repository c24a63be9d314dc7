package schema

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fkleon/lsetwatch-csv/internal/config"
	"github.com/fkleon/lsetwatch-csv/internal/lsetwatch"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Prints the built-in Lsetwatch column schema as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cols := config.SchemaToColumns(lsetwatch.Schema())

			bs, err := yaml.Marshal(cols)
			if err != nil {
				return err
			}

			fmt.Println(string(bs))
			return nil
		},
	}
}

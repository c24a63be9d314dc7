package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fkleon/lsetwatch-csv/internal/cmd/csv"
	"github.com/fkleon/lsetwatch-csv/internal/cmd/schema"
)

func NewRootCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "lsetcsv",
		Short: "Round-trips Lsetwatch collection CSV files",
		Long:  ``,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Welcome to lsetcsv!")
		},
	}

	cmd.AddCommand(csv.NewCommand())
	cmd.AddCommand(schema.NewCommand())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

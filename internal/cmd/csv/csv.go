package csv

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fkleon/lsetwatch-csv/internal/config"
	"github.com/fkleon/lsetwatch-csv/internal/lsetwatch"
	"github.com/fkleon/lsetwatch-csv/pkg/lsetcsv"
	"go.uber.org/zap"
)

func NewCommand() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "csv",
		Short: "Reads and writes Lsetwatch CSV files",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("welcome to lsetcsv!")
			return nil
		},
	}
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newConvertCommand())
	return cmd
}

// newCodec builds a file codec from an optional profile. Without a
// profile the built-in Lsetwatch schema, default locale, and the given
// charset apply.
func newCodec(profile *config.Profile, charsetName string, logger *zap.Logger) (*lsetcsv.Codec, error) {
	schema := lsetwatch.Schema()
	loc, err := config.ToLocale(config.Locale{})
	if err != nil {
		return nil, err
	}

	if profile != nil {
		loc, err = config.ToLocale(profile.File.Locale)
		if err != nil {
			return nil, err
		}

		if len(profile.File.Schema) > 0 {
			schema, err = config.ToSchema(profile.File.Schema)
			if err != nil {
				return nil, err
			}
		}

		if profile.File.Charset != "" {
			charsetName = profile.File.Charset
		}
	}

	return lsetcsv.New(
		lsetcsv.WithSchema(schema),
		lsetcsv.WithLocale(loc),
		lsetcsv.WithCharset(charsetName),
		lsetcsv.WithLogger(logger),
	)
}

func loadProfile(configPath string) (*config.Profile, error) {
	if configPath == "" {
		return nil, nil
	}
	return config.NewProfileFromFile(configPath)
}

package csv

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Decodes a CSV file and writes the records as JSON lines to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _ := zap.NewDevelopment()
			defer logger.Sync()
			l := logger.Named("csv.convert")

			l.Info("converting file",
				zap.String("file", viper.GetString("file")),
				zap.String("charset", viper.GetString("charset")),
			)

			profile, err := loadProfile(viper.GetString("config"))
			if err != nil {
				return err
			}

			codec, err := newCodec(profile, viper.GetString("charset"), l)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(viper.GetString("file"))
			if err != nil {
				return err
			}

			records, err := codec.DecodeFile(data)
			if err != nil {
				return err
			}

			for _, rec := range records {
				bs, err := json.Marshal(rec.Map())
				if err != nil {
					return err
				}
				fmt.Println(string(bs))
			}

			return nil
		},
	}

	cmd.PersistentFlags().StringP("config", "c", "", "Path to profile config file")
	cmd.PersistentFlags().StringP("file", "f", "", "Path to the CSV file")
	cmd.PersistentFlags().StringP("charset", "", "utf-8", "File character encoding")
	viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("file", cmd.PersistentFlags().Lookup("file"))
	viper.BindPFlag("charset", cmd.PersistentFlags().Lookup("charset"))
	viper.AutomaticEnv()
	viper.SetEnvPrefix("LSETCSV")

	return cmd
}

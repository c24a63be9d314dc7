package csv

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCommand() *cobra.Command {
	var (
		configPath  string
		filePath    string
		charsetName string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Decodes a CSV file and reports every malformed row",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, _ := zap.NewDevelopment()
			defer logger.Sync()
			l := logger.Named("csv.check")

			rid := uuid.Must(uuid.NewUUID())
			l.Info("checking file",
				zap.String("run", rid.String()),
				zap.String("file", filePath),
			)

			profile, err := loadProfile(configPath)
			if err != nil {
				return err
			}

			codec, err := newCodec(profile, charsetName, l)
			if err != nil {
				return err
			}

			f, err := os.Open(filePath)
			if err != nil {
				return err
			}
			defer f.Close()

			var ok, bad int
			reader := codec.NewReader(f)
			for {
				_, err := reader.Next()
				if errors.Is(err, io.EOF) {
					break
				}

				if err != nil {
					bad++
					l.Warn("malformed row", zap.Int("row", reader.Row()), zap.Error(err))
					continue
				}
				ok++
			}

			l.Info("check complete",
				zap.Int("rows", ok+bad),
				zap.Int("malformed", bad),
			)

			if bad > 0 {
				return fmt.Errorf("%d of %d rows malformed", bad, ok+bad)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to profile config file")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Path to the CSV file")
	cmd.Flags().StringVarP(&charsetName, "charset", "", "utf-8", "File character encoding")
	cmd.MarkFlagRequired("file")

	return cmd
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parsec/csv"
)

var csvLog = commonlog.GetLogger("parsec.csv")

func newCsvCmd() *cobra.Command {
	var delimiter string

	cmd := &cobra.Command{
		Use:           "csv <file>",
		Short:         "Parse a CSV file and print its records",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]

			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			records, err := csv.Parse(string(data))
			if err != nil {
				return fmt.Errorf("parse %s: %w", filename, err)
			}

			csvLog.Infof("parsed %d records from %s", len(records), filename)
			for _, record := range records {
				fmt.Println(strings.Join(record, delimiter))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&delimiter, "join", "\t", "output field delimiter")

	return cmd
}

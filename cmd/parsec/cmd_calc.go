package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parsec/calc"
)

var calcLog = commonlog.GetLogger("parsec.calc")

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "calc <expression>...",
		Short:         "Evaluate an arithmetic expression",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := strings.Join(args, " ")
			calcLog.Debugf("evaluating %q", expression)

			result, err := calc.Eval(expression)
			if err != nil {
				return fmt.Errorf("evaluate %q: %w", expression, err)
			}

			calcLog.Infof("%q = %d", expression, result)
			fmt.Println(result)
			return nil
		},
	}
}

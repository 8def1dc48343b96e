package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelar/wordsight/internal/engine"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show learning insights derived from the local event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeEngine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeEngine()

		fmt.Print(renderInsights(eng.GetInsights(engine.Progress{})))
		return nil
	},
}

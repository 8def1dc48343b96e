package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var adaptiveCmd = &cobra.Command{
	Use:   "adaptive",
	Short: "Show adaptive difficulty settings derived from recent practice",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeEngine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeEngine()

		s := eng.GetAdaptiveSettings()
		fmt.Println(headingStyle.Render("Adaptive settings"))
		fmt.Printf("  difficulty:      %s\n", s.RecommendedDifficulty)
		fmt.Printf("  challenge level: %d/10\n", s.ChallengeLevel)
		fmt.Printf("  hint frequency:  %s\n", s.HintFrequency)
		fmt.Printf("  repeat interval: %d day(s)\n", s.RepeatIntervalDays)
		if len(s.FocusAreas) > 0 {
			fmt.Printf("  focus areas:     %v\n", s.FocusAreas)
		}
		return nil
	},
}

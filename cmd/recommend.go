package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelar/wordsight/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Show up to five items to practice next",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeEngine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeEngine()

		mastered, _ := cmd.Flags().GetStringSlice("mastered")
		items := eng.GetRecommendedItems(recommend.DemoCatalog(), mastered)
		if len(items) == 0 {
			fmt.Println(dimStyle.Render("Nothing left to practice — the catalog is mastered."))
			return nil
		}
		fmt.Print(renderItems(items))
		return nil
	},
}

func init() {
	recommendCmd.Flags().StringSlice("mastered", nil, "Item ids already mastered (comma-separated)")
}

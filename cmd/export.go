package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/avelar/wordsight/internal/engine"
	"github.com/avelar/wordsight/internal/insights"
	"github.com/avelar/wordsight/internal/recommend"
)

// exportDoc is the host-side export format: the user's own data, readable
// outside the app. Assembled here, not in the engine.
type exportDoc struct {
	Progress           engine.Progress    `json:"progress"`
	Insights           []insights.Insight `json:"insights"`
	RecommendedItemIDs []string           `json:"recommendedItemIds"`
	ExportDate         time.Time          `json:"exportDate"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export insights and recommendations as a JSON document",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeEngine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeEngine()

		mastered, _ := cmd.Flags().GetStringSlice("mastered")
		progress := engine.Progress{MasteredItemIDs: mastered}

		var ids []string
		for _, it := range eng.GetRecommendedItems(recommend.DemoCatalog(), mastered) {
			ids = append(ids, it.ID)
		}

		doc := exportDoc{
			Progress:           progress,
			Insights:           eng.GetInsights(progress),
			RecommendedItemIDs: ids,
			ExportDate:         time.Now().UTC(),
		}

		raw, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal export: %w", err)
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			fmt.Println(string(raw))
			return nil
		}
		if err := os.WriteFile(out, raw, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		fmt.Println(okStyle.Render("Exported to " + out))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Write the document to a file instead of stdout")
	exportCmd.Flags().StringSlice("mastered", nil, "Item ids already mastered (comma-separated)")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelar/wordsight/internal/events"
	"github.com/avelar/wordsight/internal/recorder"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record one practice attempt",
	Long: "Records a single exercise result. Without consent this is a silent\n" +
		"no-op — safe for hosts to call unconditionally.",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeEngine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeEngine()

		item, _ := cmd.Flags().GetString("item")
		if item == "" {
			return fmt.Errorf("--item is required")
		}
		correct, _ := cmd.Flags().GetBool("correct")
		duration, _ := cmd.Flags().GetInt("duration")
		hints, _ := cmd.Flags().GetInt("hints")
		lang, _ := cmd.Flags().GetString("lang")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		mistake, _ := cmd.Flags().GetString("mistake")
		attempts, _ := cmd.Flags().GetInt("attempts")
		letters, _ := cmd.Flags().GetInt("letters")

		eng.RecordAttempt(recorder.Attempt{
			ItemID:         item,
			IsCorrect:      correct,
			DurationMs:     duration,
			HintsUsed:      hints,
			LanguageID:     lang,
			Difficulty:     events.Difficulty(difficulty),
			MistakePattern: mistake,
			AttemptCount:   attempts,
			LettersCorrect: letters,
		})

		if !eng.HasConsent() {
			fmt.Println(dimStyle.Render("No consent given — nothing was recorded."))
			return nil
		}
		fmt.Println(okStyle.Render("Recorded."))
		return nil
	},
}

func init() {
	recordCmd.Flags().String("item", "", "Item (word) identifier")
	recordCmd.Flags().Bool("correct", false, "Whether the attempt was correct")
	recordCmd.Flags().Int("duration", 0, "Attempt duration in milliseconds")
	recordCmd.Flags().Int("hints", 0, "Hints used")
	recordCmd.Flags().String("lang", "es", "Language identifier")
	recordCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium or hard")
	recordCmd.Flags().String("mistake", "", "Mistake pattern tag (pronunciation, spelling, structure, grammar)")
	recordCmd.Flags().Int("attempts", 1, "Attempt count for this item in this exercise")
	recordCmd.Flags().Int("letters", 0, "Letters correct in the final answer")
}

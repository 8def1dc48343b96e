package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Erase all recorded analytics data",
	Long: "Deletes the encrypted event log and its expiry marker. Device secrets\n" +
		"and preferences are kept, so consent and anonymized identity survive.",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeEngine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeEngine()

		if eng.PurgeAllData() {
			fmt.Println(okStyle.Render("All analytics data erased."))
			return nil
		}
		return fmt.Errorf("purge did not fully complete; see warnings above")
	},
}

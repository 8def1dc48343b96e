package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelar/wordsight/internal/cipher"
	"github.com/avelar/wordsight/internal/privacy"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or update privacy preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeEngine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeEngine()

		patch := privacy.PreferencesPatch{}
		changed := false

		if cmd.Flags().Changed("share-demographics") {
			v, _ := cmd.Flags().GetBool("share-demographics")
			patch.ShareDemographics = &v
			changed = true
		}
		if cmd.Flags().Changed("personalization") {
			v, _ := cmd.Flags().GetBool("personalization")
			patch.AllowPersonalization = &v
			changed = true
		}
		if cmd.Flags().Changed("encryption") {
			v, _ := cmd.Flags().GetString("encryption")
			if v != string(cipher.LevelStandard) && v != string(cipher.LevelEnhanced) {
				return fmt.Errorf("encryption must be %q or %q", cipher.LevelStandard, cipher.LevelEnhanced)
			}
			level := cipher.Level(v)
			patch.EncryptionLevel = &level
			changed = true
		}
		if cmd.Flags().Changed("region") {
			v, _ := cmd.Flags().GetString("region")
			patch.Region = &v
			changed = true
		}
		if cmd.Flags().Changed("age-group") {
			v, _ := cmd.Flags().GetString("age-group")
			patch.AgeGroup = &v
			changed = true
		}

		if changed {
			if err := eng.SetPreferences(patch); err != nil {
				return err
			}
		}

		p := eng.GetPreferences()
		fmt.Println(headingStyle.Render("Privacy preferences"))
		fmt.Printf("  share demographics: %t\n", p.ShareDemographics)
		fmt.Printf("  personalization:    %t\n", p.AllowPersonalization)
		fmt.Printf("  encryption level:   %s\n", p.EncryptionLevel)
		if p.Region != "" {
			fmt.Printf("  region:             %s\n", p.Region)
		}
		if p.AgeGroup != "" {
			fmt.Printf("  age group:          %s\n", p.AgeGroup)
		}
		return nil
	},
}

func init() {
	prefsCmd.Flags().Bool("share-demographics", false, "Attach region/age group to new events")
	prefsCmd.Flags().Bool("personalization", false, "Allow personalized insights and ranking")
	prefsCmd.Flags().String("encryption", "standard", "Encryption level: standard or enhanced")
	prefsCmd.Flags().String("region", "", "Coarse region label (only stored if sharing demographics)")
	prefsCmd.Flags().String("age-group", "", "Age group label (only stored if sharing demographics)")
}

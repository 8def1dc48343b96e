package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var consentCmd = &cobra.Command{
	Use:   "consent [on|off|status]",
	Short: "Grant, withdraw or inspect analytics consent",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeEngine, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closeEngine()

		action := "status"
		if len(args) == 1 {
			action = args[0]
		}

		switch action {
		case "on":
			if err := eng.SetConsent(true); err != nil {
				return err
			}
			fmt.Println(okStyle.Render("Consent granted — attempts will be recorded."))
		case "off":
			if err := eng.SetConsent(false); err != nil {
				return err
			}
			fmt.Println(dimStyle.Render("Consent withdrawn — recording stops. Existing data stays until purged."))
		case "status":
			if eng.HasConsent() {
				fmt.Println("consent: granted")
			} else {
				fmt.Println("consent: not granted")
			}
		default:
			return fmt.Errorf("unknown consent action %q", action)
		}
		return nil
	},
}

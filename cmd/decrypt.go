package cmd

import (
	"github.com/secnix/secnix/internal/utils"
	"github.com/secnix/secnix/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var decryptCmd = &cobra.Command{
	Use:   "decrypt [paths...]",
	Short: "Decrypt secret files in place",
	Long: `Decrypts each named file in place, without consulting the configuration:
any file the resident private keys can open is rewritten as plaintext.
Take care not to commit the result.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		s, cleanup := startSpinner("Decrypting secret files...", verbose)
		defer cleanup()

		engine, err := newEngine()
		if err != nil {
			s.FinalMSG = color.RedString("✗") + " Failed to load settings"
			return err
		}

		result, err := workflows.Decrypt(cmd.Context(), workflows.DecryptOptions{
			Paths:  args,
			Engine: engine,
			Logger: Logger,
		})
		if err != nil {
			s.FinalMSG = color.RedString("✗") + " Failed to decrypt secret files"
			return err
		}

		Logger.Infof("Decrypt command completed successfully. Decrypted %d files", len(result.DecryptedFiles))
		s.FinalMSG = color.GreenString("✓") + " Secret files decrypted successfully!\n" +
			"The following files are now plaintext: " + utils.FormatPaths(result.DecryptedFiles) +
			color.YellowString("!") + " Do not commit them in this state"
		return nil
	},
}

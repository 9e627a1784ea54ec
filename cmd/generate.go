package cmd

import (
	"github.com/secnix/secnix/internal/ui"
	"github.com/secnix/secnix/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var generateKeyFile string

var generateCmd = &cobra.Command{
	Use:   "generate <name>",
	Short: "Generate a keypair for a new secret holder",
	Long: `Creates a passphrase-less GPG keypair named after the holder, with an
email synthesized from the configuration's domain. The private key is
exported to a file and removed from the local keyring, so the exported
file is the only copy. The public half stays resident for encryption.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting generate command")
		s, cleanup := startSpinner("Generating keypair...", verbose)
		defer cleanup()

		engine, err := newEngine()
		if err != nil {
			s.FinalMSG = color.RedString("✗") + " Failed to load settings"
			return err
		}

		result, err := workflows.Generate(cmd.Context(), workflows.GenerateOptions{
			ConfigPath: configPath,
			Name:       args[0],
			KeyFile:    generateKeyFile,
			Engine:     engine,
			Logger:     Logger,
		})
		if err != nil {
			s.FinalMSG = color.RedString("✗") + " Failed to generate keypair"
			return err
		}

		Logger.Infof("Generate command completed successfully. New key %s", result.Fingerprint)
		s.FinalMSG = color.GreenString("✓") + " Keypair generated successfully!\n" +
			"    Fingerprint: " + ui.Code.Sprint(string(result.Fingerprint)) + "\n" +
			"    Private key: " + ui.Path.Sprint(result.KeyFile) + "\n" +
			color.YellowString("!") + " That file is the only copy of the private key. Store it somewhere safe\n" +
			color.CyanString("→") + " Add the fingerprint to the keys table of your configuration"
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateKeyFile, "key-file", "o", "", "file to export the private key to (default: <name>.asc)")
}

package cmd

import (
	"github.com/secnix/secnix/internal/utils"
	"github.com/secnix/secnix/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var encryptRecursive bool

var encryptCmd = &cobra.Command{
	Use:   "encrypt [paths...]",
	Short: "Encrypt secret files to their configured key sets",
	Long: `Reconciles each named file against the configuration: the file ends up
encrypted to exactly the keys its secret tree entry resolves to, master
keys included. Files already encrypted to the right set are left alone;
files encrypted to a stale set are decrypted and re-encrypted.

Directories are only walked with --recursive, skipping .nix files and
.git contents.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		s, cleanup := startSpinner("Encrypting secret files...", verbose)
		defer cleanup()

		engine, err := newEngine()
		if err != nil {
			s.FinalMSG = color.RedString("✗") + " Failed to load settings"
			return err
		}

		result, err := workflows.Encrypt(cmd.Context(), workflows.EncryptOptions{
			ConfigPath: configPath,
			Paths:      args,
			Recursive:  encryptRecursive,
			Engine:     engine,
			Logger:     Logger,
		})
		if err != nil {
			s.FinalMSG = color.RedString("✗") + " Failed to encrypt secret files"
			return err
		}

		Logger.Infof("Encrypt command completed successfully. Reconciled %d files", len(result.ReconciledFiles))
		s.FinalMSG = color.GreenString("✓") + " Secret files encrypted successfully!\n" +
			"The following files were reconciled: " + utils.FormatPaths(result.ReconciledFiles) +
			color.CyanString("→") + " You can now safely commit them to version control"
		return nil
	},
}

func init() {
	encryptCmd.Flags().BoolVarP(&encryptRecursive, "recursive", "r", false, "walk directories and encrypt every non-excluded file")
}

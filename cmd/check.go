package cmd

import (
	"fmt"

	secerrors "github.com/secnix/secnix/internal/errors"
	"github.com/secnix/secnix/internal/utils"
	"github.com/secnix/secnix/internal/workflows"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Verify that no plaintext secret file is lying around",
	Long: `Scans every non-excluded file under the directory (default: the current
directory) and reports the ones that are not encrypted. Unconfigured
files are scanned too, so a secret dropped in the tree but forgotten in
the configuration still gets flagged.

Exits with status 2 when unencrypted files are found, which makes the
command usable as a pre-commit hook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting check command")
		s, cleanup := startSpinner("Checking for plaintext secrets...", verbose)
		defer cleanup()

		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}

		result, err := workflows.Check(cmd.Context(), workflows.CheckOptions{
			ConfigPath: configPath,
			Dir:        dir,
			Logger:     Logger,
		})
		if err != nil {
			s.FinalMSG = color.RedString("✗") + " Failed to scan for plaintext secrets"
			return err
		}

		if len(result.Unencrypted) == 0 {
			Logger.Infof("Check command completed successfully. Scanned %d files", result.Scanned)
			s.FinalMSG = color.GreenString("✓") + fmt.Sprintf(" All %d scanned files are encrypted", result.Scanned)
			return nil
		}

		s.FinalMSG = color.RedString("✗") + fmt.Sprintf(" %d of %d scanned files are not encrypted: ", len(result.Unencrypted), result.Scanned) +
			utils.FormatPaths(result.Unencrypted) +
			color.CyanString("→") + " Run " + color.YellowString("secnix encrypt") + " on them before committing"
		return fmt.Errorf("%d unencrypted files: %w", len(result.Unencrypted), secerrors.ErrUnencryptedSecrets)
	},
}

package cmd

import (
	"github.com/secnix/secnix/internal/configs"
	"github.com/secnix/secnix/internal/gpg"
	logger "github.com/secnix/secnix/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	debug      bool
	configPath string
	Logger     logger.Logger

	RootCmd = &cobra.Command{
		Use:   "secnix",
		Short: "Keep declaratively configured secret files encrypted to the right keys",
		Long: `Secnix reconciles secret files against a Nix-evaluated configuration:
every file named in the secret tree is kept encrypted to exactly the set
of GPG keys its aliases resolve to, the master keys always included.

Run 'secnix help <command>' for more details on a specific command.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing secnix with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "secrets configuration file or directory (default: current directory)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(generateCmd)
}

// newEngine builds the gpg engine from the operator settings file.
func newEngine() (gpg.Engine, error) {
	settings, err := configs.LoadSettings()
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Using gpg binary %q (homedir %q)", settings.GPG.Binary, settings.GPG.Home)
	return gpg.NewCLI(settings.GPG.Binary, settings.GPG.Home), nil
}

package multisend

import (
	"github.com/spf13/cobra"
)

// BuildMultiSendCmd builds the root command of the multisend CLI.
func BuildMultiSendCmd() *cobra.Command {
	var envPath string

	cmd := cobra.Command{
		Use:          "multisend",
		Short:        "Build and inspect MultiSend batches",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&envPath, "env", ".env", "Path to a .env file with MULTISEND_ADDRESS_<selector> overrides")

	cmd.AddCommand(buildEncodeCmd())
	cmd.AddCommand(buildDecodeCmd())
	cmd.AddCommand(buildTxCmd(&envPath))

	return &cmd
}

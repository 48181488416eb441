package multisend

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/multisend"
	"github.com/smartcontractkit/multisend/sdk/evm"
)

func buildDecodeCmd() *cobra.Command {
	var data string

	cmd := cobra.Command{
		Use:   "decode",
		Short: "Decode a packed MultiSend blob or multiSend calldata into its calls",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHexArg(data)
			if err != nil {
				return fmt.Errorf("invalid --data: %w", err)
			}

			b := multisend.NewBatch()
			if evm.IsMultiSendCalldata(raw) {
				err = b.AddFromCalldata(raw)
			} else {
				err = b.AddEncoded(raw)
			}
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), b.Calls())
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "Hex encoded blob or calldata")
	_ = cmd.MarkFlagRequired("data")

	return &cmd
}

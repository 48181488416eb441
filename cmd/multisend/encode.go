package multisend

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/multisend/sdk/evm"
)

func buildEncodeCmd() *cobra.Command {
	var (
		batchPath string
		calldata  bool
	)

	cmd := cobra.Command{
		Use:   "encode",
		Short: "Encode the calls of a batch file into a packed MultiSend blob",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadBatchFile(batchPath)
			if err != nil {
				return err
			}

			out, err := file.Batch().Encode()
			if err != nil {
				return err
			}

			if calldata {
				out, err = evm.PackMultiSend(out)
				if err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hexutil.Encode(out))

			return err
		},
	}

	cmd.Flags().StringVar(&batchPath, "batch", "", "Path to the batch file")
	cmd.Flags().BoolVar(&calldata, "calldata", false, "Print the full multiSend(bytes) calldata instead of the packed blob")
	_ = cmd.MarkFlagRequired("batch")

	return &cmd
}

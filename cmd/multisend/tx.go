package multisend

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/multisend"
	"github.com/smartcontractkit/multisend/internal/utils/safecast"
	"github.com/smartcontractkit/multisend/sdk/evm"
	"github.com/smartcontractkit/multisend/types"
)

func buildTxCmd(envPath *string) *cobra.Command {
	var (
		batchPath   string
		value       string
		operation   int
		impersonate bool
		collapse    bool
	)

	cmd := cobra.Command{
		Use:   "tx",
		Short: "Build the unsigned MultiSend transaction for a batch file",
		Long: `Validates the value against the batch, resolves the MultiSend instance for the batch's chain
and prints the unsigned transaction. Nothing is signed or sent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadBatchFile(batchPath)
			if err != nil {
				return err
			}

			env, err := loadEnv(*envPath)
			if err != nil {
				return err
			}

			overrides, err := evm.LoadAddressOverrides(env)
			if err != nil {
				return err
			}

			addr, err := evm.NewAddressResolver(overrides).Resolve(file.ChainSelector)
			if err != nil {
				return err
			}

			opts := multisend.SubmitOpts{
				Impersonate:        impersonate,
				CollapseSingleCall: collapse,
			}

			if cmd.Flags().Changed("value") {
				opts.Value, err = multisend.NormalizeValue(value)
				if err != nil {
					return err
				}
			}

			if operation >= 0 {
				op, err := safecast.IntToUint8(operation)
				if err != nil {
					return fmt.Errorf("invalid --operation: %w", err)
				}
				tag := types.Operation(op)
				opts.Operation = &tag
			}

			tx, err := file.Batch().Transaction(addr, opts)
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), tx)
		},
	}

	cmd.Flags().StringVar(&batchPath, "batch", "", "Path to the batch file")
	cmd.Flags().StringVar(&value, "value", "", "Value to send with the transaction, decimal or 0x-prefixed hex")
	cmd.Flags().IntVar(&operation, "operation", -1, "Batch level operation (0 call, 1 delegatecall), defaults to delegatecall")
	cmd.Flags().BoolVar(&impersonate, "impersonate", false, "Default the batch level operation to call")
	cmd.Flags().BoolVar(&collapse, "collapse-single", false, "Send a single call batch straight to its target")
	_ = cmd.MarkFlagRequired("batch")

	return &cmd
}

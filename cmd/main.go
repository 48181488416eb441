package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/multisend/cmd/multisend"
)

func main() {
	rootCmd := multisend.BuildMultiSendCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/ledgerlab/ledger"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a small chain, tamper with it, and watch validation catch it",
	RunE: func(cmd *cobra.Command, args []string) error {
		payloads := make([]ledger.Payload, 6)
		for i := range payloads {
			payloads[i] = ledger.JSON(map[string]any{"record": i, "note": fmt.Sprintf("entry %d", i)})
		}

		builder := ledger.NewBuilder()
		chain, err := builder.BuildChain(cmd.Context(), payloads, searchVariant(), searchParams())
		if err != nil {
			return err
		}
		validator := ledger.NewValidator()

		pterm.DefaultSection.Println("Freshly built chain")
		renderChain(chain.Blocks())
		renderValidation(validator.Validate(chain))

		// Tampering happens on a snapshot: the chain itself is append-only
		// and hands out copies.
		tampered := chain.Blocks()
		tampered[2].Payload = ledger.JSON("forged record")
		slog.Warn("tampering with a payload", "block", tampered[2].Index)

		pterm.DefaultSection.Println("After rewriting block 3's payload")
		renderValidation(validator.ValidateBlocks(tampered))

		tampered = chain.Blocks()
		tampered[4].PrevHash = "deadbeef"
		slog.Warn("tampering with a link", "block", tampered[4].Index)

		pterm.DefaultSection.Println("After rewriting block 5's previous hash")
		renderValidation(validator.ValidateBlocks(tampered))
		return nil
	},
}

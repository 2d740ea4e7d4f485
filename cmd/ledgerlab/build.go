package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/luca-patrignani/ledgerlab/ledger"
)

var (
	buildData   []string
	buildBlocks int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a chain from payload strings and validate it",
	Long: "build seeds a chain with the first --data payload and appends one\n" +
		"block per remaining payload, each gated by the selected proof search.\n" +
		"--blocks requests an explicit count of appended blocks; asking for\n" +
		"more blocks than payloads is an error.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(buildData) == 0 {
			return fmt.Errorf("at least one --data payload is required")
		}

		payloads := make([]ledger.Payload, len(buildData))
		for i, d := range buildData {
			payloads[i] = ledger.JSON(d)
		}

		builder := ledger.NewBuilder()
		start := time.Now()

		genesis, err := builder.Genesis(payloads[0])
		if err != nil {
			return err
		}
		chain := ledger.NewChain(genesis)

		count := buildBlocks
		if count == 0 {
			count = len(payloads) - 1
		}
		if err := builder.AppendMany(cmd.Context(), chain, count, payloads[1:], searchVariant(), searchParams()); err != nil {
			return err
		}

		slog.Info("chain built",
			"blocks", chain.Len(),
			"variant", flagVariant,
			"elapsed", time.Since(start).String())

		renderChain(chain.Blocks())
		renderValidation(ledger.NewValidator().Validate(chain))
		return nil
	},
}

func init() {
	buildCmd.Flags().StringArrayVar(&buildData, "data", nil, "payload string, repeatable; the first one seeds the genesis block")
	buildCmd.Flags().IntVar(&buildBlocks, "blocks", 0, "number of blocks to append after genesis, 0 for one per payload")
}

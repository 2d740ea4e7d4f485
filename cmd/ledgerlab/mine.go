package main

import (
	"log/slog"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/ledgerlab/ledger"
	"github.com/luca-patrignani/ledgerlab/pow"
)

var (
	mineLastProof int64
	mineData      string
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Run a single proof-of-work search and report the result",
	Long: "mine runs one search of the selected variant. The divisibility\n" +
		"variant gates against --last-proof; the hash-prefix variant mines a\n" +
		"fresh candidate block carrying the --data payload.",
	RunE: func(cmd *cobra.Command, args []string) error {
		hasher := ledger.Hasher{}
		payload := ledger.JSON(mineData)
		timestamp := time.Now().Unix()

		req := pow.Request{
			LastProof: mineLastProof,
			Digest: func(proof int64) (string, error) {
				return hasher.Digest(1, timestamp, payload, ledger.SentinelPrevHash, proof)
			},
		}

		start := time.Now()
		proof, err := pow.Search(cmd.Context(), searchVariant(), searchParams(), req)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		slog.Info("proof found", "variant", flagVariant, "elapsed", elapsed.String())
		pterm.Success.Printfln("proof: %d", proof)

		if searchVariant() == pow.HashPrefix {
			digest, err := req.Digest(proof)
			if err != nil {
				return err
			}
			pterm.Info.Printfln("digest: %s", digest)
		}
		return nil
	},
}

func init() {
	mineCmd.Flags().Int64Var(&mineLastProof, "last-proof", 1, "predecessor proof for the divisibility search")
	mineCmd.Flags().StringVar(&mineData, "data", "hello ledger", "payload for the hash-prefix candidate block")
}

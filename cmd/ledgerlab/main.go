package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/ledgerlab/pow"
)

var (
	flagVariant       string
	flagModulus       int64
	flagDifficulty    int
	flagMaxIterations uint64
	flagWorkers       int
)

var rootCmd = &cobra.Command{
	Use:   "ledgerlab",
	Short: "Local hash-linked ledger with pluggable proof-of-work",
	Long: "ledgerlab builds, mines and validates local hash-linked ledgers.\n" +
		"Every block is sealed by a SHA-256 digest and bound to its predecessor;\n" +
		"extending the chain is gated by a divisibility or hash-prefix proof search.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagVariant, "variant", string(pow.Divisibility),
		"proof-of-work variant: divisibility or hashprefix")
	rootCmd.PersistentFlags().Int64Var(&flagModulus, "modulus", 99,
		"fixed divisor of the divisibility search")
	rootCmd.PersistentFlags().IntVar(&flagDifficulty, "difficulty", 1,
		"leading zero hex characters the hash-prefix search demands")
	rootCmd.PersistentFlags().Uint64Var(&flagMaxIterations, "max-iterations", 0,
		"iteration cap for a proof search, 0 for unbounded")
	rootCmd.PersistentFlags().IntVar(&flagWorkers, "workers", 1,
		"shard the hash-prefix search across this many workers")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(mineCmd)
	rootCmd.AddCommand(demoCmd)
}

// searchVariant maps the --variant flag onto the closed variant set, letting
// the pow package reject anything it does not recognize.
func searchVariant() pow.Variant {
	return pow.Variant(flagVariant)
}

func searchParams() pow.Params {
	return pow.Params{
		Modulus:       flagModulus,
		Difficulty:    flagDifficulty,
		MaxIterations: flagMaxIterations,
		Workers:       flagWorkers,
	}
}

func main() {
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	slog.SetDefault(slog.New(handler))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/ledgerlab/ledger"
)

// renderChain prints the block sequence as a table, abbreviating digests so
// a chain fits a terminal line.
func renderChain(blocks []ledger.Block) {
	rows := pterm.TableData{
		{"Index", "Timestamp", "Proof", "Prev hash", "Hash", "Payload"},
	}
	for _, b := range blocks {
		rows = append(rows, []string{
			strconv.FormatUint(b.Index, 10),
			time.Unix(b.Timestamp, 0).UTC().Format(time.RFC3339),
			strconv.FormatInt(b.Proof, 10),
			abbreviate(b.PrevHash),
			abbreviate(b.Hash),
			payloadPreview(b.Payload),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
		pterm.Error.Printfln("failed to render chain: %v", err)
	}
}

// renderValidation prints the validation verdict: a success box for an
// intact chain, or one line per violation in index order.
func renderValidation(result ledger.ValidationResult) {
	if result.Valid() {
		pterm.Success.Println("chain is valid")
		return
	}

	pterm.Error.Printfln("chain is invalid, %d violation(s):", len(result.Failures))
	for _, f := range result.Failures {
		pterm.Error.Printfln("  %s", f)
	}
}

func abbreviate(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12] + "…"
}

func payloadPreview(p ledger.Payload) string {
	b, err := p.CanonicalBytes()
	if err != nil {
		return "<unencodable>"
	}
	s := string(b)
	if len(s) > 32 {
		return s[:32] + "…"
	}
	return s
}

// bcsbench compares BCS-encoded size against minified JSON for a small
// built-in corpus of representative values (there is no external
// testdata corpus for this codec, unlike a text format where hand-edited
// sample documents make sense — these values are generated in code).
//
// Output: CSV to bench_results.csv, summary to stdout.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bcscodec/bcs/bcs"
)

type caseResult struct {
	Name      string
	JSONBytes int
	BCSBytes  int
	Saved     int
	SavedPct  float64
}

type coin struct {
	Value    uint64 `json:"value"`
	Owner    string `json:"owner"`
	IsLocked bool   `json:"is_locked"`
}

func main() {
	results := []caseResult{
		bench("u64", uint64(412412400000), bcs.U64()),
		bench("vector<u8> (1000)", make([]uint8, 1000), bcs.Vector(bcs.U8())),
		bench("string (utf8)", "çå∞≠¢õß∂ƒ∫", bcs.String()),
		benchCoin(),
	}

	var totalJSON, totalBCS int
	for _, r := range results {
		totalJSON += r.JSONBytes
		totalBCS += r.BCSBytes
	}

	csvFile, err := os.Create("bench_results.csv")
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcsbench: create CSV: %v\n", err)
	} else {
		writeCSV(csvFile, results)
		csvFile.Close()
		fmt.Fprintln(os.Stderr, "CSV written to: bench_results.csv")
	}

	fmt.Printf("\n=== SUMMARY ===\n")
	fmt.Printf("Cases:     %d\n", len(results))
	fmt.Printf("JSON total: %d bytes\n", totalJSON)
	fmt.Printf("BCS total:  %d bytes\n", totalBCS)
	if totalJSON > 0 {
		fmt.Printf("Saved:      %d bytes (%.1f%%)\n", totalJSON-totalBCS, float64(totalJSON-totalBCS)/float64(totalJSON)*100)
	}
}

func bench[T any](name string, v T, schema bcs.Schema[T]) caseResult {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcsbench: marshal JSON for %s: %v\n", name, err)
	}
	env, err := schema.Serialize(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcsbench: serialize %s: %v\n", name, err)
		return caseResult{Name: name}
	}
	return result(name, len(jsonBytes), len(env.Bytes()))
}

func benchCoin() caseResult {
	c := coin{Value: 412412400000, Owner: "Big Wallet Guy", IsLocked: false}
	jsonBytes, _ := json.Marshal(c)

	schema := bcs.StructOf("Coin",
		bcs.FieldOf("value", bcs.U64()),
		bcs.FieldOf("owner", bcs.String()),
		bcs.FieldOf("is_locked", bcs.Bool()),
	)
	sv := bcs.NewStructValue("Coin",
		bcs.Field("value", c.Value),
		bcs.Field("owner", c.Owner),
		bcs.Field("is_locked", c.IsLocked),
	)
	env, err := schema.Serialize(sv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcsbench: serialize Coin: %v\n", err)
		return caseResult{Name: "Coin struct"}
	}
	return result("Coin struct", len(jsonBytes), len(env.Bytes()))
}

func result(name string, jsonBytes, bcsBytes int) caseResult {
	saved := jsonBytes - bcsBytes
	pct := 0.0
	if jsonBytes > 0 {
		pct = float64(saved) / float64(jsonBytes) * 100.0
	}
	return caseResult{Name: name, JSONBytes: jsonBytes, BCSBytes: bcsBytes, Saved: saved, SavedPct: pct}
}

func writeCSV(w *os.File, results []caseResult) {
	fmt.Fprintln(w, "name,json_bytes,bcs_bytes,saved,saved_pct")
	for _, r := range results {
		fmt.Fprintf(w, "%s,%d,%d,%d,%.1f\n", r.Name, r.JSONBytes, r.BCSBytes, r.Saved, r.SavedPct)
	}
}

// bcs - a small command-line front end for the bcs codec.
//
// Usage:
//
//	bcs decode --type <expr> --hex <hex>       Decode hex bytes as <expr> and dump the result
//	bcs decode --type <expr> --base64 <b64>    Same, from base64 input
//	bcs reencode --hex <hex>                   Print hex/base64/base58 forms of raw bytes
//	bcs reencode --base64 <b64>                Same, from base64 input
//	bcs version                                Print version info
//
// <expr> is a type expression understood by bcs.Registry (e.g. "u64",
// "vector<u8>", "option<string>", "map<string, u32>"). If neither --hex
// nor --base64 is given, bytes are read from stdin as hex text.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bcscodec/bcs/bcs"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "decode":
		cmdDecode(os.Args[2:])
	case "reencode":
		cmdReencode(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("bcs %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `bcs - BCS codec CLI tool

Usage:
  bcs decode --type <expr> [--hex <hex> | --base64 <b64>]   Decode and dump a value
  bcs reencode [--hex <hex> | --base64 <b64>]                Print hex/base64/base58 forms
  bcs version                                                 Print version info

<expr> examples: u64, vector<u8>, option<string>, map<string, u32>,
fixed_array<u8, 32>, bytes<32>.

If neither --hex nor --base64 is given to a subcommand that needs input
bytes, they are read from stdin as hex text.
`)
}

func cmdDecode(args []string) {
	fs := pflag.NewFlagSet("decode", pflag.ExitOnError)
	typeExpr := fs.String("type", "", "type expression to decode as (required)")
	hexIn := fs.String("hex", "", "input bytes, hex-encoded")
	b64In := fs.String("base64", "", "input bytes, base64-encoded")
	if err := fs.Parse(args); err != nil {
		fatal("%v", err)
	}
	if *typeExpr == "" {
		fatal("decode: --type is required")
	}

	raw, err := readInputBytes(*hexIn, *b64In)
	if err != nil {
		fatal("read input: %v", err)
	}

	r := bcs.NewRegistry()
	v, err := r.Decode(*typeExpr, raw)
	if err != nil {
		fatal("decode: %v", err)
	}
	fmt.Printf("%#v\n", v)
}

func cmdReencode(args []string) {
	fs := pflag.NewFlagSet("reencode", pflag.ExitOnError)
	hexIn := fs.String("hex", "", "input bytes, hex-encoded")
	b64In := fs.String("base64", "", "input bytes, base64-encoded")
	if err := fs.Parse(args); err != nil {
		fatal("%v", err)
	}

	raw, err := readInputBytes(*hexIn, *b64In)
	if err != nil {
		fatal("read input: %v", err)
	}

	env := bcs.NewEnvelope(bcs.Bytes(len(raw)), raw)
	fmt.Printf("hex:    %s\n", env.ToHex())
	fmt.Printf("base64: %s\n", env.ToBase64())
	fmt.Printf("base58: %s\n", env.ToBase58())
}

func readInputBytes(hexIn, b64In string) ([]byte, error) {
	switch {
	case hexIn != "":
		return hex.DecodeString(strings.TrimSpace(hexIn))
	case b64In != "":
		return base64.StdEncoding.DecodeString(strings.TrimSpace(b64In))
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return hex.DecodeString(strings.TrimSpace(string(data)))
	}
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "bcs: "+format+"\n", args...)
	os.Exit(1)
}

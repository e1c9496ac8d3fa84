// Command tsuquo is the CLI collaborator around the compilation pipeline
// (spec §1, §6): read a regex from a file, compile it to a minimized DFA,
// and write a Graphviz DOT rendering to dots/<basename>.dot. None of the
// logic here is part of the core — it is a thin wrapper, same as the
// original implementation's main.c.
package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"

	"github.com/andi-spajk/tsuquo/dfa"
	"github.com/andi-spajk/tsuquo/dot"
	"github.com/andi-spajk/tsuquo/minimize"
	"github.com/andi-spajk/tsuquo/nfa"
	"github.com/andi-spajk/tsuquo/parser"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) != 2 {
		gologger.Error().Msg("invalid cmdline args")
		return 1
	}

	outPath := outputPath(args[1])

	buf, err := os.ReadFile(args[1])
	if err != nil {
		gologger.Error().Msgf("couldn't open input file: %v", err)
		return 1
	}

	var diag bytes.Buffer
	n, err := parser.Parse(buf, &diag)
	if err != nil {
		gologger.Error().Msg("compilation failed")
		if diag.Len() > 0 {
			os.Stdout.Write(diag.Bytes())
		}
		return 1
	}

	nfa.IndexStates(n)

	d, err := dfa.ConvertNFAToDFA(n)
	if err != nil {
		gologger.Error().Msgf("DFA construction failed: %v", err)
		return 1
	}

	m, err := minimize.Minimize(d)
	if err != nil {
		gologger.Error().Msgf("DFA minimization failed: %v", err)
		return 1
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		gologger.Error().Msgf("couldn't create output directory: %v", err)
		return 1
	}
	f, err := os.Create(outPath)
	if err != nil {
		gologger.Error().Msgf("couldn't open output file: %v", err)
		return 1
	}
	defer f.Close()

	if err := dot.Write(f, m, dot.Options{}); err != nil {
		gologger.Error().Msgf("couldn't write output file: %v", err)
		return 1
	}

	gologger.Info().Msgf("success: produced file '%s'", outPath)
	return 0
}

// outputPath derives dots/<basename>.dot from the input path (spec §6),
// reproducing main.c's pointer-walking derivation byte for byte: scan
// backward from the end for the last '.', then further backward from there
// for the last '/' or '\\'. Unlike the C version, which underruns the buffer
// if no '.' appears at all, a dot-less name simply keeps its full length
// rather than crashing.
func outputPath(inputPath string) string {
	end := len(inputPath)

	dot := end
	for dot > 0 && inputPath[dot-1] != '.' {
		dot--
	}
	extEnd := end
	if dot > 0 {
		extEnd = dot - 1
	}

	start := extEnd
	for start > 0 {
		start--
		if inputPath[start] == '/' || inputPath[start] == '\\' {
			start++
			break
		}
	}

	base := inputPath[start:extEnd]
	return filepath.Join("dots", base+".dot")
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"strings"

	"github.com/ezrec/macropp/internal"
	"github.com/ezrec/macropp/library"
	"github.com/ezrec/macropp/macro"
	"github.com/ezrec/macropp/translate"
)

// listTable writes the macro table back out as MACRO ... MEND blocks.
func listTable(w io.Writer, table *macro.Table) {
	for _, m := range table.All() {
		fmt.Fprintln(w, macro.KeywordMacro)
		fmt.Fprintln(w, m.Header())
		for _, line := range m.Lines {
			fmt.Fprintln(w, "    "+line)
		}
		fmt.Fprintln(w, macro.KeywordMend)
	}
}

func main() {
	var output string
	var libs string
	var lang string
	var strict bool
	var list bool
	var depth int
	var verbose bool
	mode := macro.ModeToken

	flag.StringVar(&output, "o", "-", "Expanded output")
	flag.StringVar(&libs, "l", "", "Comma separated .star macro libraries")
	flag.BoolVar(&strict, "strict", false, "Report malformed macros as errors")
	flag.Var(&mode, "mode", "Parameter substitution, 'token' or 'literal'")
	flag.IntVar(&depth, "depth", macro.DefaultMaxDepth, "Maximum macro nesting")
	flag.BoolVar(&list, "list", false, "List the macro table, do not expand")
	flag.StringVar(&lang, "lang", "", "Message language, i.e. 'en-US'")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(lang) != 0 {
		err := translate.SetLanguage(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	lib := &library.Library{
		Strict:  strict,
		Verbose: verbose,
		Table:   macro.NewTable(),
	}
	if len(libs) != 0 {
		for _, name := range strings.Split(libs, ",") {
			err := lib.Load(name, nil)
			if err != nil {
				log.Fatal(err)
			}
		}
	}

	// Inputs are concatenated, so line numbers count across files.
	inputs := flag.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	var seqs []iter.Seq2[string, error]
	for _, input := range inputs {
		if input == "-" {
			seqs = append(seqs, internal.ScanLines(os.Stdin))
			continue
		}
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		seqs = append(seqs, internal.ScanLines(inf))
	}

	proc := &macro.Processor{
		Verbose:  verbose,
		Strict:   strict,
		Mode:     mode,
		MaxDepth: depth,
		Library:  lib.Table,
	}

	lines, err := proc.ProcessLines(internal.IterSeq2Concat(seqs...))
	if err != nil {
		log.Fatalf("%v: %v", strings.Join(inputs, " "), err)
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer file.Close()
		ouf = file
	}

	w := bufio.NewWriter(ouf)
	if list {
		listTable(w, proc.Table)
	} else {
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}

	err = w.Flush()
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}

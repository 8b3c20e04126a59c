package main

import (
	"fmt"
	"os"

	"github.com/MasWag/hyppau-fixtures/pkg/automaton"
)

// writeDocument encodes the document to the given file, or to stdout
// when no file is named.
func writeDocument(doc *automaton.Document, outFile string) error {
	if outFile == "" {
		return automaton.Encode(os.Stdout, doc)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("create %s: %w", outFile, err)
	}
	defer f.Close()

	if err := automaton.Encode(f, doc); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	fmt.Printf("Wrote %s\n", outFile)
	return nil
}

// writeAndClose encodes the document to f and closes it, reporting the
// first error encountered.
func writeAndClose(f *os.File, doc *automaton.Document) error {
	err := automaton.Encode(f, doc)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// writeText writes rendered text to the given file, or to stdout when
// no file is named.
func writeText(text, outFile string) error {
	if outFile == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	fmt.Printf("Wrote %s\n", outFile)
	return nil
}

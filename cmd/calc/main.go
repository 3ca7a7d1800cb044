package main

import (
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/calclab/calc-mcp/pkg/calculator"
)

// run prints the demo calculations to w.
func run(w io.Writer) error {
	sum := calculator.Plus(big.NewRat(2, 1), big.NewRat(2, 1))
	if _, err := fmt.Fprintf(w, "2 + 2 is %s\n", calculator.FormatRat(sum)); err != nil {
		return err
	}

	quotient, err := calculator.Divide(big.NewRat(4, 1), big.NewRat(2, 1))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "4 / 2 is %s\n", calculator.FormatRat(quotient))
	return err
}

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

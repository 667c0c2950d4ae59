// Command textpress generates a synthetic corpus, compresses each text
// with Huffman and LZW, and prints the ratio table against the RLE,
// entropy and fixed-length baselines.  Extra file arguments are added
// to the suite.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kwonghua/textpress/compare"
	"github.com/kwonghua/textpress/corpus"
)

func main() {
	var size = flag.Int("size", 10000, "Characters per generated corpus text")
	var seed = flag.Uint64("seed", 42, "Seed for the random corpus text")
	flag.Parse()

	inputs := []compare.Input{
		{Name: "equal_dist.txt", Text: corpus.EqualDist(*size)},
		{Name: "random.txt", Text: corpus.RandomText(*size, *seed)},
		{Name: "single_char.txt", Text: corpus.SingleChar(500)},
	}
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		inputs = append(inputs, compare.Input{Name: path, Text: string(data)})
	}

	results, err := compare.Run(inputs)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	compare.PrintTable(os.Stdout, results)
}

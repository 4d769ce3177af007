// Command shuffle writes CSPRNG-shuffled deck lines to standard output,
// one 104-character deck per line, for feeding into the solve command or
// test fixtures.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/cardspan/kspider/shuffle"
)

func main() {
	count := flag.Int("n", 1, "number of decks to generate")
	flag.Parse()

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for deck := range shuffle.Stream(*count) {
		fmt.Fprintln(w, deck.String())
	}
}

// Command plankton is the engine's UCI entry point: it reads commands
// from standard input and writes protocol responses to standard
// output until "quit" is received or input is exhausted.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/benthic/plankton/internal/uci"
)

func main() {
	fmt.Println("plankton")

	engine := uci.NewEngine(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		if err := engine.Execute(scanner.Text()); err == uci.ErrQuit {
			break
		}
	}
}

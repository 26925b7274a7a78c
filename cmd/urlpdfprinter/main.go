// Command urlpdfprinter prints a web page to a PDF file with headless Chrome.
package main

import (
	"fmt"
	"os"

	"github.com/porticus-lab/go-url-pdf/cmd/urlpdfprinter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

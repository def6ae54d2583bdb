package theme

import (
	"fmt"
)

// Banner returns the CLI banner.
func Banner() string {
	const cyan = "\033[36m"
	const magenta = "\033[35m"
	const reset = "\033[0m"

	return "" +
		cyan + "  ┌─@──────@──────@─┐\n" + reset +
		"  │" + magenta + "   T W I T N E T " + reset + "│\n" +
		cyan + "  └─@──────@──────@─┘\n" + reset +
		"   who mentions whom, and who matters\n"
}

// PrintBanner prints the banner to stdout.
func PrintBanner() {
	fmt.Print(Banner())
}

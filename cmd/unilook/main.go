// Command unilook looks up Unicode characters: it resolves characters or
// code points into property records assembled from the Unicode data files,
// and searches canonical names with glob patterns.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

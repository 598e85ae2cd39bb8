// Resyntax parses regular-expression patterns and reports what a matcher
// can learn from them.
//
// Usage:
//
//	# Print the syntax tree
//	resyntax parse '(foo|bar)+baz'
//
//	# Print the tree as JSON
//	resyntax parse --format json 'a|b'
//
//	# Show extracted literals and the chosen prefilter
//	resyntax literals 'colou?r'
//
//	# List lines that contain a candidate match
//	resyntax scan 'err(or)?' app.log
//
//	# Use limits from a configuration file
//	resyntax literals --config resyntax.yaml '(a|b)(c|d)'
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "resyntax:", err)
		}
		os.Exit(1)
	}
}

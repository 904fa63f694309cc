// densecalc drives the dense-matrix engine from the command line through the
// same boundary surface a foreign host uses.
//
// Usage:
//
//	# Add two inline matrices (rows split by ';', cells by ',')
//	densecalc add -a "1,2;3,4" -b "5,6;7,8"
//
//	# Multiply matrices stored as YAML or JSON documents
//	densecalc mul -a @left.yaml -b @right.json --output yaml
//
//	# Invert a 2×2 matrix with four fraction digits
//	densecalc inv -m "4,7;2,6" --precision 4
//
// Settings default from DENSECALC_LOG_LEVEL, DENSECALC_LOG_FORMAT,
// DENSECALC_OUTPUT and DENSECALC_PRECISION; flags override them.
package main

func main() {
	Execute()
}

// Package gridio reads and writes grid documents in YAML.
//
// A document carries a grid in one of two forms plus an optional start cell:
//
//	name: scenario-a
//	start: [0, 0]
//	rows:
//	  - "10111"    # '1' or '.' passable, '0' or '#' blocked
//	  - "11001"
//
// or
//
//	cells:
//	  - [1, 0, 1, 1, 1]
//	  - [1, 1, 0, 0, 1]
//
// Errors: ErrNoCells, ErrBothForms, ErrBadSymbol, ErrBadStart, plus wrapped
// yaml and gridgraph errors.
package gridio

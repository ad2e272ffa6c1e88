// Package config loads a dungeon description from YAML and turns it into a
// dungeon.Config.
//
// A file looks like:
//
//	seed: 7
//	strategy: goal
//	start_room: 0
//	grid:
//	  width: 5
//	  height: 4
//	  connectivity: 4
//	variables:
//	  - kind: numeric-cyclic
//	    cardinality: 3
//	  - kind: binary-reversible
//	    cardinality: 2
//	goals:
//	  - [2, 1]
//
// Validation reports every problem at once; each one wraps ErrConfiguration.
package config

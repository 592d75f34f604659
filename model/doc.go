// Package model is documented in database.go (Database, the aggregate
// read-only view the core consumes) and parser.go/parse_nets.go (the
// block/net text format parsers that build one).
package model

package model

import "github.com/outlineopt/fpcore/geom"

// Terminal is a fixed-position I/O pin. It never moves once parsed.
type Terminal struct {
	Name   string
	Coords geom.Point
}

package floorplan

import "github.com/outlineopt/fpcore/model"

// Database is the read-only contract the core needs from an instance: the
// macros to place, the nets connecting them, and the die outline. model.Database
// satisfies this trivially; floorplan depends only on the interface so that
// tests can supply minimal fakes without building a real parsed instance.
type Database interface {
	NumMacros() int
	Macro(id int) model.Macro
	NumNets() int
	Net(id int) model.Net
	OutlineWidth() float64
	OutlineHeight() float64
}

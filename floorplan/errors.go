package floorplan

import "errors"

// ErrNoRotatableMacro indicates the rotate perturbation was selected but no
// macro in the instance is rotatable, making the operator a structural
// no-op. The spec's "reject and redraw" policy assumes at least one
// rotatable macro exists; this sentinel lets callers detect the degenerate
// case instead of spinning forever.
var ErrNoRotatableMacro = errors.New("floorplan: no macro is rotatable")

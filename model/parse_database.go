package model

import "io"

// ParseDatabase reads a block-input stream and a net-input stream and
// builds a Database. It returns ErrMalformedInput if NumBlocks is zero — a
// floorplanning instance with nothing to place is not a valid input, not an
// empty-but-legal one — and ErrInfeasibleInstance if no macro fits the
// outline in either orientation (ParseBlocks swaps a macro's width/height
// when its given orientation overflows the outline, so detection here is:
// width > outlineWidth || height > outlineHeight after that swap, for every
// macro).
func ParseDatabase(blockInput, netInput io.Reader) (*Database, error) {
	outlineW, outlineH, macros, terminals, err := ParseBlocks(blockInput)
	if err != nil {
		return nil, err
	}
	if len(macros) == 0 {
		return nil, ErrMalformedInput
	}

	macroIDByName := make(map[string]int, len(macros))
	for i, m := range macros {
		macroIDByName[m.Name] = i
	}
	terminalIDByName := make(map[string]int, len(terminals))
	for i, t := range terminals {
		terminalIDByName[t.Name] = i
	}

	feasible := false
	for _, m := range macros {
		if m.Width <= outlineW && m.Height <= outlineH {
			feasible = true

			break
		}
	}
	if !feasible {
		return nil, ErrInfeasibleInstance
	}

	nets, err := ParseNets(netInput, macroIDByName, terminals, terminalIDByName)
	if err != nil {
		return nil, err
	}

	return &Database{
		outlineWidth:     outlineW,
		outlineHeight:    outlineH,
		macros:           macros,
		terminals:        terminals,
		nets:             nets,
		macroIDByName:    macroIDByName,
		terminalIDByName: terminalIDByName,
	}, nil
}

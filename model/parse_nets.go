package model

import (
	"io"
	"strconv"
)

// ParseNets reads the net input described in the external-interface section
// of the spec:
//
//	NumNets: <nN>
//	NetDegree: <k>
//	<pin_name>        × k     (each is a macro name or terminal name)
//	...                     × nN
//
// Each pin name is resolved first against terminalIDByName (terminals carry
// their fixed coordinate onto the net directly) and otherwise against
// macroIDByName; a name found in neither is ErrUnknownPin.
func ParseNets(r io.Reader, macroIDByName map[string]int, terminals []Terminal, terminalIDByName map[string]int) ([]Net, error) {
	sc := newLineScanner(r)

	var (
		numNets int
		nets    []Net
	)

	for {
		tokens := sc.next()
		if tokens == nil {
			break
		}

		switch tokens[0] {
		case "NumNets":
			if len(tokens) < 2 {
				return nil, ErrMalformedInput
			}
			n, err := strconv.Atoi(tokens[1])
			if err != nil {
				return nil, ErrMalformedInput
			}
			numNets = n

		case "NetDegree":
			if len(tokens) < 2 {
				return nil, ErrMalformedInput
			}
			degree, err := strconv.Atoi(tokens[1])
			if err != nil {
				return nil, ErrMalformedInput
			}

			var net Net
			for i := 0; i < degree; i++ {
				pin := sc.next()
				if len(pin) == 0 {
					return nil, ErrMalformedInput
				}
				name := pin[0]

				if tid, ok := terminalIDByName[name]; ok {
					net.TerminalCoords = append(net.TerminalCoords, terminals[tid].Coords)
					continue
				}
				mid, ok := macroIDByName[name]
				if !ok {
					return nil, ErrUnknownPin
				}
				net.MacroIDs = append(net.MacroIDs, mid)
			}
			nets = append(nets, net)

		default:
			// Unexpected token outside a recognized header/record; ignore.
		}
	}

	if len(nets) != numNets {
		return nil, ErrMalformedInput
	}

	return nets, nil
}

package model

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/outlineopt/fpcore/geom"
)

// tokenizeLine splits a line on whitespace and strips a trailing colon from
// the first token, so both "Outline: 100 100" and "Outline 100 100" parse
// identically. Header keywords in the block/net format are always the first
// token on their line.
func tokenizeLine(line string) []string {
	fields := strings.Fields(line)
	if len(fields) > 0 {
		fields[0] = strings.TrimSuffix(fields[0], ":")
	}

	return fields
}

// lineScanner yields non-empty tokenized lines from r, skipping blank lines.
type lineScanner struct {
	sc *bufio.Scanner
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{sc: bufio.NewScanner(r)}
}

// next returns the next non-empty line's tokens, or nil at EOF.
func (s *lineScanner) next() []string {
	for s.sc.Scan() {
		tokens := tokenizeLine(s.sc.Text())
		if len(tokens) > 0 {
			return tokens
		}
	}

	return nil
}

// ParseBlocks reads the block input (outline, macro dimensions, terminal
// coordinates) described in the external-interface section of the spec:
//
//	Outline: <W> <H>
//	NumBlocks: <nM>
//	NumTerminals: <nT>
//	<macro_name> <w> <h>                 × nM
//	<terminal_name> terminal <tx> <ty>    × nT
//
// A macro's Rotatable flag is false if it does not fit the outline in its
// given orientation but does fit rotated (width/height are silently
// swapped in that case), false if it fits only in its given orientation,
// false if it fits in neither orientation (degenerate), and true if it fits
// in both.
func ParseBlocks(r io.Reader) (outlineW, outlineH float64, macros []Macro, terminals []Terminal, err error) {
	sc := newLineScanner(r)

	var (
		numMacros    int
		numTerminals int
		haveOutline  bool
	)

	for {
		tokens := sc.next()
		if tokens == nil {
			break
		}

		switch tokens[0] {
		case "Outline":
			if len(tokens) < 3 {
				return 0, 0, nil, nil, ErrMalformedInput
			}
			outlineW, err = strconv.ParseFloat(tokens[1], 64)
			if err != nil {
				return 0, 0, nil, nil, ErrMalformedInput
			}
			outlineH, err = strconv.ParseFloat(tokens[2], 64)
			if err != nil {
				return 0, 0, nil, nil, ErrMalformedInput
			}
			haveOutline = true

		case "NumBlocks":
			if len(tokens) < 2 {
				return 0, 0, nil, nil, ErrMalformedInput
			}
			numMacros, err = strconv.Atoi(tokens[1])
			if err != nil {
				return 0, 0, nil, nil, ErrMalformedInput
			}

		case "NumTerminals":
			if len(tokens) < 2 {
				return 0, 0, nil, nil, ErrMalformedInput
			}
			numTerminals, err = strconv.Atoi(tokens[1])
			if err != nil {
				return 0, 0, nil, nil, ErrMalformedInput
			}

		default:
			if !haveOutline {
				return 0, 0, nil, nil, ErrMalformedInput
			}
			if len(macros) < numMacros {
				m, perr := parseMacroRecord(tokens, outlineW, outlineH)
				if perr != nil {
					return 0, 0, nil, nil, perr
				}
				macros = append(macros, m)
			} else if len(terminals) < numTerminals {
				t, perr := parseTerminalRecord(tokens)
				if perr != nil {
					return 0, 0, nil, nil, perr
				}
				terminals = append(terminals, t)
			}
			// Extra records beyond the declared counts are ignored, matching
			// the original parser's "stop consuming" behavior.
		}
	}

	if len(macros) != numMacros || len(terminals) != numTerminals {
		return 0, 0, nil, nil, ErrMalformedInput
	}

	return outlineW, outlineH, macros, terminals, nil
}

func parseMacroRecord(tokens []string, outlineW, outlineH float64) (Macro, error) {
	if len(tokens) < 3 {
		return Macro{}, ErrMalformedInput
	}
	w, err := strconv.ParseFloat(tokens[1], 64)
	if err != nil {
		return Macro{}, ErrMalformedInput
	}
	h, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return Macro{}, ErrMalformedInput
	}

	rotatable := true
	if w > outlineW || h > outlineH {
		w, h = h, w
		rotatable = false
	} else if w > outlineH || h > outlineW {
		rotatable = false
	}

	return Macro{Name: tokens[0], Width: w, Height: h, Rotatable: rotatable}, nil
}

func parseTerminalRecord(tokens []string) (Terminal, error) {
	// <name> terminal <x> <y>
	if len(tokens) < 4 {
		return Terminal{}, ErrMalformedInput
	}
	x, err := strconv.ParseFloat(tokens[2], 64)
	if err != nil {
		return Terminal{}, ErrMalformedInput
	}
	y, err := strconv.ParseFloat(tokens[3], 64)
	if err != nil {
		return Terminal{}, ErrMalformedInput
	}

	return Terminal{Name: tokens[0], Coords: geom.Point{X: x, Y: y}}, nil
}

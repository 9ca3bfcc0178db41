package classify

import "github.com/derivchrom/svrecon/breakend"

// Classify assigns a Label to a chain summary, per the condition table:
// a closed chain is always COMPLEX; a 0- or 1-segment chain is classified
// by its open-end chromosomes and directions (DEL/DUP/INV/TRA); a
// 2-segment, multi-chromosome chain is TRA, a 2-segment single-chromosome
// chain with any reversed interior is INV; anything past 2 segments is
// COMPLEX.
func Classify(c Chain) Label {
	if c.IsClosed {
		return COMPLEX
	}

	switch {
	case c.Segments <= 1:
		return classifySimple(c)
	case c.Segments == 2:
		return classifyPair(c)
	default:
		return COMPLEX
	}
}

func classifySimple(c Chain) Label {
	if c.Lower.Chr != c.Upper.Chr {
		return TRA
	}

	switch {
	case c.Lower.Dir == breakend.RIGHT && c.Upper.Dir == breakend.LEFT:
		return DEL
	case c.Lower.Dir == breakend.LEFT && c.Upper.Dir == breakend.RIGHT:
		return DUP
	case c.Lower.Dir == c.Upper.Dir:
		return INV
	default:
		return UNKNOWN
	}
}

func classifyPair(c Chain) Label {
	if len(c.Chromosomes) > 1 {
		return TRA
	}
	if c.AnyReverse {
		return INV
	}

	return UNKNOWN
}

// ClassifyAll labels every chain in cs, preserving order.
func ClassifyAll(cs []Chain) []Label {
	out := make([]Label, len(cs))
	for i, c := range cs {
		out[i] = Classify(c)
	}

	return out
}

package segwalk

import "strconv"

// leftPort and rightPort render the port-name vertices used in the
// walk graph: "L{idx}" and "R{idx}".
func leftPort(idx int) string  { return "L" + strconv.Itoa(idx) }
func rightPort(idx int) string { return "R" + strconv.Itoa(idx) }

// isLeftPort reports whether a port name denotes a LEFT port.
func isLeftPort(port string) bool { return len(port) > 0 && port[0] == 'L' }

// segIndexOf extracts the segment index encoded in a port name.
func segIndexOf(port string) int {
	n, _ := strconv.Atoi(port[1:])

	return n
}

// oppositePort returns the other port of the same segment.
func oppositePort(port string) string {
	idx := segIndexOf(port)
	if isLeftPort(port) {
		return rightPort(idx)
	}

	return leftPort(idx)
}

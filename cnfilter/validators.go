package cnfilter

import (
	"fmt"

	"github.com/derivchrom/svrecon/breakend"
)

// cnfilterErrorf formats a staged-validation error, mirroring the
// teacher's builder.builderErrorf uniform-prefix convention.
func cnfilterErrorf(method, format string, args ...any) error {
	return fmt.Errorf("cnfilter: %s: "+format, append([]any{method}, args...)...)
}

// ValidateSegments checks that every CN segment is well-formed: a
// non-empty chromosome and a positive-width half-open interval.
func ValidateSegments(segs []breakend.CNSegment) error {
	for i, s := range segs {
		if s.Chr == "" {
			return cnfilterErrorf("ValidateSegments", "segment %d: empty chromosome", i)
		}
		if s.Start >= s.End {
			return cnfilterErrorf("ValidateSegments", "segment %d: start must be < end, got [%d,%d)", i, s.Start, s.End)
		}
		if s.MajorCN < 0 || s.MinorCN < 0 {
			return cnfilterErrorf("ValidateSegments", "segment %d: major_cn and minor_cn must be >= 0", i)
		}
	}

	return nil
}

// ValidateInterval checks that an evaluation interval is well-formed.
func ValidateInterval(lo, hi int) error {
	if lo > hi {
		return cnfilterErrorf("ValidateInterval", "lo must be <= hi, got lo=%d hi=%d", lo, hi)
	}

	return nil
}

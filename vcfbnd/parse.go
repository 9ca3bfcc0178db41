package vcfbnd

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/derivchrom/svrecon/breakend"
)

var (
	// t[p:q[  -> RIGHT, RIGHT
	reRightRight = regexp.MustCompile(`^([A-Za-z]+)\[([^:\[\]]+):(\d+)\[$`)
	// t]p:q]  -> RIGHT, LEFT
	reRightLeft = regexp.MustCompile(`^([A-Za-z]+)\]([^:\[\]]+):(\d+)\]$`)
	// ]p:q]t  -> LEFT, LEFT
	reLeftLeft = regexp.MustCompile(`^\]([^:\[\]]+):(\d+)\]([A-Za-z]+)$`)
	// [p:q[t  -> LEFT, RIGHT
	reLeftRight = regexp.MustCompile(`^\[([^:\[\]]+):(\d+)\[([A-Za-z]+)$`)
)

// ParseALT interprets a BND ALT field, returning this breakend's
// direction, the mate's chromosome/position/direction, and ok=false if
// alt does not match any of the four bracket patterns.
func ParseALT(alt string) (dir breakend.Direction, mateChr string, matePos int, mateDir breakend.Direction, ok bool) {
	switch {
	case reRightRight.MatchString(alt):
		m := reRightRight.FindStringSubmatch(alt)
		pos, err := strconv.Atoi(m[3])
		if err != nil {
			return 0, "", 0, 0, false
		}
		return breakend.RIGHT, m[2], pos, breakend.RIGHT, true

	case reRightLeft.MatchString(alt):
		m := reRightLeft.FindStringSubmatch(alt)
		pos, err := strconv.Atoi(m[3])
		if err != nil {
			return 0, "", 0, 0, false
		}
		return breakend.RIGHT, m[2], pos, breakend.LEFT, true

	case reLeftLeft.MatchString(alt):
		m := reLeftLeft.FindStringSubmatch(alt)
		pos, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, "", 0, 0, false
		}
		return breakend.LEFT, m[1], pos, breakend.LEFT, true

	case reLeftRight.MatchString(alt):
		m := reLeftRight.FindStringSubmatch(alt)
		pos, err := strconv.Atoi(m[2])
		if err != nil {
			return 0, "", 0, 0, false
		}
		return breakend.LEFT, m[1], pos, breakend.RIGHT, true

	default:
		return 0, "", 0, 0, false
	}
}

// parseInfo splits a semicolon-delimited INFO-style field list (the
// trailing columns of a BND line, joined back together) into a
// key=value map. Flag-style tokens with no '=' are ignored.
func parseInfo(fields []string) map[string]string {
	out := make(map[string]string)
	joined := strings.Join(fields, ";")
	for _, tok := range strings.Split(joined, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		k, v, found := strings.Cut(tok, "=")
		if !found {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	return out
}

// ParseLine parses one tab-separated BND line (CHROM, POS, ID, ALT, plus
// any trailing INFO-bearing columns). ok is false — never an error — for
// lines that are too short, carry an unparseable POS, are not SVTYPE=BND,
// or whose ALT does not match a BND bracket pattern: all skippable facts
// about real-world VCF input, not programmer errors.
func ParseLine(line string) (b breakend.Breakend, ok bool, err error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 4 {
		return breakend.Breakend{}, false, nil
	}

	chrom, posField, id, alt := fields[0], fields[1], fields[2], fields[3]
	pos, err := strconv.Atoi(posField)
	if err != nil {
		return breakend.Breakend{}, false, nil
	}

	info := parseInfo(fields[4:])
	if info["SVTYPE"] != "BND" {
		return breakend.Breakend{}, false, nil
	}

	dir, mateChr, matePos, mateDir, matched := ParseALT(alt)
	if !matched {
		return breakend.Breakend{}, false, nil
	}

	b, err = breakend.New(id, chrom, pos, dir)
	if err != nil {
		return breakend.Breakend{}, false, nil
	}
	b.MateID = info["MATEID"]
	b.MateChr = mateChr
	b.MatePos = matePos
	b.MateDir = mateDir
	b.Event = info["EVENT"]

	if raw, present := info["JCN"]; present {
		if f, ferr := strconv.ParseFloat(raw, 64); ferr == nil {
			b.HasJCN = true
			b.JCN = f
		}
	}
	if raw, present := info["JCNUNCERT"]; present {
		if f, ferr := strconv.ParseFloat(raw, 64); ferr == nil {
			b.JCNUnc = f
		}
	}

	return b, true, nil
}

// ParseRecords reads newline-delimited BND lines from r, skipping blank
// lines and lines starting with '#', and returns every breakend that
// ParseLine accepts. Only a scanner I/O failure is returned as an error.
func ParseRecords(r io.Reader) ([]breakend.Breakend, error) {
	var out []breakend.Breakend

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		b, ok, err := ParseLine(line)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, b)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Command svrecon reconstructs structural-variant chains from a VCF
// breakend stream, via either the deterministic segment-graph walker or
// the greedy chaining engine, and prints the result as JSON.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/derivchrom/svrecon/breakend"
	"github.com/derivchrom/svrecon/chainer"
	"github.com/derivchrom/svrecon/classify"
	"github.com/derivchrom/svrecon/cnfilter"
	"github.com/derivchrom/svrecon/segwalk"
	"github.com/derivchrom/svrecon/svgraph"
	"github.com/derivchrom/svrecon/vcfbnd"
)

func main() {
	in := flag.String("in", "-", "input VCF path, or - for stdin")
	mode := flag.String("mode", "walk", "reconstruction mode: walk or chain")
	cnPath := flag.String("cn", "", "optional tab-separated CN segment file (chrom start end major_cn minor_cn), chain mode only")
	flag.Parse()

	r := os.Stdin
	if *in != "-" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatalf("svrecon: %v", err)
		}
		defer f.Close()
		r = f
	}

	breakends, err := vcfbnd.ParseRecords(r)
	if err != nil {
		log.Fatalf("svrecon: %v", err)
	}

	switch *mode {
	case "walk":
		runWalk(breakends)
	case "chain":
		runChain(breakends, loadCNSegments(*cnPath))
	default:
		log.Fatalf("svrecon: unknown mode %q (want walk or chain)", *mode)
	}
}

// loadCNSegments reads a tab-separated "chrom start end major_cn minor_cn"
// CN segment file, or returns nil if path is empty.
func loadCNSegments(path string) []breakend.CNSegment {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("svrecon: %v", err)
	}
	defer f.Close()

	var segs []breakend.CNSegment
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) < 5 {
			continue
		}
		start, err1 := strconv.Atoi(fields[1])
		end, err2 := strconv.Atoi(fields[2])
		major, err3 := strconv.ParseFloat(fields[3], 64)
		minor, err4 := strconv.ParseFloat(fields[4], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		segs = append(segs, breakend.CNSegment{Chr: fields[0], Start: start, End: end, MajorCN: major, MinorCN: minor})
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("svrecon: %v", err)
	}

	return segs
}

type walkOutput struct {
	Chains        []segwalk.Chain `json:"chains"`
	OrphanIndices []int           `json:"orphan_indices"`
	Labels        []string        `json:"labels"`
}

func runWalk(breakends []breakend.Breakend) {
	chains, orphans, _, err := segwalk.Reconstruct(breakends)
	if err != nil {
		log.Fatalf("svrecon: %v", err)
	}

	labels := make([]string, len(chains))
	for i, c := range chains {
		labels[i] = classify.Classify(classify.FromWalkChain(c)).String()
	}

	emit(walkOutput{Chains: chains, OrphanIndices: orphans, Labels: labels})
}

type chainOutput struct {
	Chains []chainer.Chain `json:"chains"`
	Labels []string        `json:"labels"`
}

func runChain(breakends []breakend.Breakend, cnSegs []breakend.CNSegment) {
	set := breakend.NewSet()
	for _, b := range breakends {
		_ = set.Add(b) // duplicate IDs: first occurrence wins, not a CLI-level error
	}

	cg := svgraph.NewGraph()
	svLinks := svgraph.BuildSVEdges(set, cg)
	tiLinks := svgraph.BuildTIEdges(set, cg)

	if cnSegs != nil {
		filtered, err := cnfilter.FilterEdges(tiLinks, set, cnSegs)
		if err != nil {
			log.Fatalf("svrecon: %v", err)
		}
		tiLinks = filtered
	}

	chains, err := chainer.Derive(svLinks, tiLinks, set)
	if err != nil {
		log.Fatalf("svrecon: %v", err)
	}

	labels := make([]string, len(chains))
	for i, c := range chains {
		summary, err := classify.FromChainerChain(c, set)
		if err != nil {
			log.Fatalf("svrecon: %v", err)
		}
		labels[i] = classify.Classify(summary).String()
	}

	emit(chainOutput{Chains: chains, Labels: labels})
}

func emit(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("svrecon: %v", err)
	}
}

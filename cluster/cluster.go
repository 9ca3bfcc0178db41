// Package cluster groups breakends via a disjoint-set union-find,
// directly grounded on Kruskal's DSU: the same iterative
// find with path compression and union by rank, applied here to
// breakend IDs instead of graph vertices.
package cluster

import (
	"sort"

	"github.com/derivchrom/svrecon/breakend"
)

// dsu is the disjoint-set union-find over breakend IDs, identical in
// technique to Kruskal's find/union closures.
type dsu struct {
	parent map[string]string
	rank   map[string]int
}

func newDSU(ids []string) *dsu {
	d := &dsu{parent: make(map[string]string, len(ids)), rank: make(map[string]int, len(ids))}
	for _, id := range ids {
		d.parent[id] = id
		d.rank[id] = 0
	}
	return d
}

// find walks up to the root, compressing the path as it goes.
func (d *dsu) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}
	return u
}

// union merges the sets containing u and v, attaching the smaller-rank
// tree under the larger-rank root.
func (d *dsu) union(u, v string) {
	rootU, rootV := d.find(u), d.find(v)
	if rootU == rootV {
		return
	}
	if d.rank[rootU] < d.rank[rootV] {
		d.parent[rootU] = rootV
	} else {
		d.parent[rootV] = rootU
		if d.rank[rootU] == d.rank[rootV] {
			d.rank[rootU]++
		}
	}
}

// unionEvent records which basis drove a successful merge, so the final
// Result can report the strongest basis per cluster.
type unionEvent struct {
	a, b  string
	basis Basis
}

// Cluster groups the breakends in set by, in order: shared event tag,
// mate linkage, then same-chromosome proximity within
// opts.ProximityThreshold. Every breakend ID in set belongs to exactly
// one cluster in the result.
func Cluster(set *breakend.Set, opts ...Option) Result {
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ids := set.IDs()
	d := newDSU(ids)
	var events []unionEvent

	// Pass 1: shared event tag.
	byEvent := make(map[string][]string)
	for _, id := range ids {
		b, _ := set.Get(id)
		if b.Event == "" {
			continue
		}
		byEvent[b.Event] = append(byEvent[b.Event], id)
	}
	eventTags := make([]string, 0, len(byEvent))
	for tag := range byEvent {
		eventTags = append(eventTags, tag)
	}
	sort.Strings(eventTags)
	for _, tag := range eventTags {
		members := byEvent[tag]
		for i := 1; i < len(members); i++ {
			if d.find(members[0]) != d.find(members[i]) {
				events = append(events, unionEvent{members[0], members[i], EVENT})
			}
			d.union(members[0], members[i])
		}
	}

	// Pass 2: mate linkage.
	for _, id := range ids {
		b, _ := set.Get(id)
		mate, ok := set.Mate(b)
		if !ok {
			continue
		}
		if d.find(id) != d.find(mate.ID) {
			events = append(events, unionEvent{id, mate.ID, MATE})
		}
		d.union(id, mate.ID)
	}

	// Pass 3: same-chromosome proximity. set.All() is already sorted by
	// (Chr, Pos, ID), so consecutive same-chromosome breakends are each
	// other's nearest neighbor candidates.
	all := set.All()
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.Chr != cur.Chr {
			continue
		}
		if cur.Pos-prev.Pos > options.ProximityThreshold {
			continue
		}
		if d.find(prev.ID) != d.find(cur.ID) {
			events = append(events, unionEvent{prev.ID, cur.ID, PROXIMITY})
		}
		d.union(prev.ID, cur.ID)
	}

	return buildResult(ids, d, events)
}

// buildResult groups ids by final DSU root into dense, deterministically
// ordered clusters (by each cluster's smallest member ID), computing the
// strongest contributing basis per cluster from the recorded events.
func buildResult(ids []string, d *dsu, events []unionEvent) Result {
	membersByRoot := make(map[string][]string)
	for _, id := range ids {
		root := d.find(id)
		membersByRoot[root] = append(membersByRoot[root], id)
	}

	bestBasis := make(map[string]Basis)
	for _, e := range events {
		root := d.find(e.a)
		if cur, ok := bestBasis[root]; !ok || e.basis.priority() > cur.priority() {
			bestBasis[root] = e.basis
		}
	}

	roots := make([]string, 0, len(membersByRoot))
	for root := range membersByRoot {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		return smallest(membersByRoot[roots[i]]) < smallest(membersByRoot[roots[j]])
	})

	clusters := make([]Group, 0, len(roots))
	clusterOf := make(map[string]int, len(ids))
	for idx, root := range roots {
		members := membersByRoot[root]
		sort.Strings(members)
		for _, m := range members {
			clusterOf[m] = idx
		}
		clusters = append(clusters, Group{ID: idx, Members: members, Basis: bestBasis[root]})
	}

	return Result{Clusters: clusters, ClusterOf: clusterOf}
}

func smallest(ids []string) string {
	min := ids[0]
	for _, id := range ids[1:] {
		if id < min {
			min = id
		}
	}
	return min
}

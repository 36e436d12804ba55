package dijkstra

import "math"

// ReconstructPath walks the predecessor map back from target to source and
// returns the vertices in travel order together with the path cost.
//
// ok is false (and path nil, cost Infinity) when the target is unreachable,
// absent from distances, or the predecessor chain is broken. The walk is
// bounded by len(previous)+1 hops, so a corrupted map containing a cycle
// cannot loop forever.
func ReconstructPath(target, source string, previous map[string]string, distances map[string]float64) (path []string, cost float64, ok bool) {
	d, found := distances[target]
	if !found || math.IsInf(d, 1) {
		return nil, Infinity, false
	}
	if target == source {
		return []string{source}, d, true
	}

	rev := []string{target}
	cur := target
	for hops := 0; hops <= len(previous); hops++ {
		p := previous[cur]
		if p == "" {
			return nil, Infinity, false
		}
		rev = append(rev, p)
		if p == source {
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}
			return rev, d, true
		}
		cur = p
	}

	return nil, Infinity, false
}

// PathTo reconstructs the shortest path from r.Source to target using the
// final predecessor map.
func (r *Result) PathTo(target string) ([]string, float64, bool) {
	return ReconstructPath(target, r.Source, r.Previous, r.Distances)
}

package raptor

import "sort"

/**
 * filterAlternatives is the post-sweep dominance filter: sort by
 * (transferCount, departureTime, travelTime) ascending, deduplicate
 * exactly-equal triples, then drop any alternative dominated by
 * another surviving one.
 */
func filterAlternatives(routes []RaptorRoute) []RaptorRoute {
	if len(routes) == 0 {
		return routes
	}

	sort.Slice(routes, func(i, j int) bool {
		a, b := routes[i], routes[j]
		if a.numberOfTransfers != b.numberOfTransfers {
			return a.numberOfTransfers < b.numberOfTransfers
		}
		if a.departureTime != b.departureTime {
			return a.departureTime < b.departureTime
		}
		return a.travelTime < b.travelTime
	})

	deduped := routes[:0:0]
	for i, r := range routes {
		if i > 0 {
			prev := deduped[len(deduped)-1]
			if prev.numberOfTransfers == r.numberOfTransfers &&
				prev.departureTime == r.departureTime &&
				prev.travelTime == r.travelTime {
				continue
			}
		}
		deduped = append(deduped, r)
	}

	survivors := make([]RaptorRoute, 0, len(deduped))
	for i, candidate := range deduped {
		dominated := false
		for j, other := range deduped {
			if i == j {
				continue
			}
			if dominates(other, candidate) {
				dominated = true
				break
			}
		}
		if !dominated {
			survivors = append(survivors, candidate)
		}
	}
	return survivors
}

// dominates reports whether r2 dominates r1: no more transfers, no
// earlier departure, no later arrival, strict in at
// least one (the dedup pass already removed exact ties, so any
// r2 satisfying the three non-strict clauses here is strict in at
// least one dimension by construction).
func dominates(r2, r1 RaptorRoute) bool {
	if r2.numberOfTransfers > r1.numberOfTransfers {
		return false
	}
	if r2.departureTime < r1.departureTime {
		return false
	}
	r1Arrival := r1.departureTime + r1.travelTime
	r2Arrival := r2.departureTime + r2.travelTime
	return r2Arrival <= r1Arrival
}

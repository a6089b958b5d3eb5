// Package rank orders candidate labels by edit distance to a typed query.
package rank

import "strings"

// Scored is a candidate label with its distance to the query.
type Scored struct {
	Label string
	Score int
}

// Distance returns the Levenshtein distance between a and b, counted in runes.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	d := make([][]int, len(ra)+1)
	for i := range d {
		d[i] = make([]int, len(rb)+1)
		d[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		d[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d[i][j] = min(d[i-1][j]+1, d[i][j-1]+1, d[i-1][j-1]+cost)
		}
	}
	return d[len(ra)][len(rb)]
}

// Rank scores every candidate against query (case-insensitive) and returns
// them in ascending score order. Each candidate is inserted before the first
// entry with a strictly greater score, so equal scores keep input order.
func Rank(query string, candidates []string) []Scored {
	q := strings.ToLower(query)
	out := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		s := Scored{Label: c, Score: Distance(q, strings.ToLower(c))}
		at := len(out)
		for i, prev := range out {
			if s.Score < prev.Score {
				at = i
				break
			}
		}
		out = append(out, Scored{})
		copy(out[at+1:], out[at:])
		out[at] = s
	}
	return out
}

// Order is Rank without the scores.
func Order(query string, candidates []string) []string {
	ranked := Rank(query, candidates)
	labels := make([]string, len(ranked))
	for i, s := range ranked {
		labels[i] = s.Label
	}
	return labels
}

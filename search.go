package ahocorasick

// Match is one occurrence of a pattern in the scanned text. Index
// identifies the pattern by its insertion order; Start and End are the rune
// offsets of the occurrence's first and last symbol.
type Match struct {
	Index int
	Start int
	End   int
}

// Scan drives the automaton across text and calls yield once per match, in
// order of non-decreasing End; matches sharing an End arrive longest
// pattern first. Scanning stops as soon as yield returns false. Scan panics
// if Build has not run.
func (a *Automaton) Scan(text string, yield func(Match) bool) {
	if !a.built {
		panic("ahocorasick: Scan before Build")
	}
	current := a.root
	pos := 0
	for _, r := range text {
		for current != a.root && current.children[r] == nil {
			current = current.failure
		}
		if next := current.children[r]; next != nil {
			current = next
		}

		// The root only holds indices of empty patterns; those are not
		// reported, so the output walk stops there.
		for n := current; n != nil && n != a.root; n = n.output {
			for _, index := range n.patterns {
				m := Match{Index: index, Start: pos - a.lengths[index] + 1, End: pos}
				if !yield(m) {
					return
				}
			}
		}
		pos++
	}
}

// Search returns every match in text as one ordered slice. It is Scan with
// an appending callback.
func (a *Automaton) Search(text string) []Match {
	var matches []Match
	a.Scan(text, func(m Match) bool {
		matches = append(matches, m)
		return true
	})
	return matches
}

package ahocorasick

// node is one state of the pattern trie, representing a distinct prefix of
// the pattern set. The children map owns its targets; failure and output
// are back-references into the same tree and carry no ownership.
type node struct {
	children map[rune]*node
	// failure points to the state for the longest proper suffix of this
	// state's prefix that is itself a prefix of some pattern. The root's
	// failure points to the root.
	failure *node
	// output points to the nearest state on the failure chain that ends at
	// least one pattern, or nil if there is none.
	output *node
	// patterns holds the indices of patterns ending exactly at this state,
	// in insertion order.
	patterns []int
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Automaton matches a fixed set of patterns against texts. Populate it with
// Insert, finalise it with Build, then run Search or Scan as often as
// needed. Construction must finish before the first search; once built the
// automaton is immutable and safe for concurrent searches without locking,
// since every scan keeps its own cursor.
type Automaton struct {
	root     *node
	patterns []string
	// lengths[i] is the rune length of patterns[i], recorded at insert time
	// so a match's start position is derivable in constant time.
	lengths []int
	built   bool
}

// New creates an empty automaton.
func New() *Automaton {
	a := &Automaton{root: newNode()}
	a.root.failure = a.root
	return a
}

// Insert adds a pattern and returns its index, the position the pattern
// occupies in insertion order. Inserting an identical string twice yields
// two distinct indices, both reported at every occurrence. An empty
// pattern is legal and receives an index, but no search ever reports it.
// Insert panics once Build has run; the pattern sequence is frozen.
func (a *Automaton) Insert(pattern string) int {
	if a.built {
		panic("ahocorasick: Insert after Build")
	}
	index := len(a.patterns)
	a.patterns = append(a.patterns, pattern)

	current := a.root
	runeLen := 0
	for _, r := range pattern {
		runeLen++
		child, ok := current.children[r]
		if !ok {
			child = newNode()
			current.children[r] = child
		}
		current = child
	}
	a.lengths = append(a.lengths, runeLen)
	current.patterns = append(current.patterns, index)
	return index
}

// GetPattern returns the pattern inserted at the given index, or the empty
// string if the index is out of range.
func (a *Automaton) GetPattern(index int) string {
	if index < 0 || index >= len(a.patterns) {
		return ""
	}
	return a.patterns[index]
}

// PatternCount returns how many patterns have been inserted.
func (a *Automaton) PatternCount() int {
	return len(a.patterns)
}

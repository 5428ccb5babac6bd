package ahocorasick

// Build computes the failure and output links of every state. Call it
// exactly once, after all inserts and before any search; a second call
// panics.
//
// States are processed breadth first, so every shorter prefix is finalised
// before any longer one; the failure-chain walk below therefore only visits
// states whose links are already correct.
func (a *Automaton) Build() {
	if a.built {
		panic("ahocorasick: Build called twice")
	}
	a.built = true

	queue := make([]*node, 0, len(a.root.children))
	for _, child := range a.root.children {
		child.failure = a.root
		queue = append(queue, child)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for r, child := range current.children {
			// Walk the failure chain until a state with an r-transition
			// turns up, falling back to the root.
			fallback := current.failure
			for fallback != a.root && fallback.children[r] == nil {
				fallback = fallback.failure
			}
			if next := fallback.children[r]; next != nil {
				child.failure = next
			} else {
				child.failure = a.root
			}

			if len(child.failure.patterns) > 0 {
				child.output = child.failure
			} else {
				child.output = child.failure.output
			}

			queue = append(queue, child)
		}
	}
}

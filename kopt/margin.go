package kopt

// KMargin tracks the running gain budget of an in-progress k-opt move: the
// total length removed so far, minus the total length added so far. A new
// edge may only be added if its length does not exceed the current margin
// (the move must never spend more than it has saved), which is what keeps
// the Finder's search bounded without an explicit cost ceiling.
type KMargin struct {
	total int

	// incHistory/decHistory record each increase/decrease amount in the
	// order applied, so popIncrease/popDecrease can undo exactly the
	// matching push (the Finder's DFS always undoes in reverse order of
	// application, so a pair of stacks suffices instead of one combined
	// signed-delta stack).
	incHistory []int
	decHistory []int
}

// newKMargin returns a zeroed KMargin with history capacity reserved for
// up to kmax deletions/additions.
func newKMargin(kmax int) *KMargin {
	return &KMargin{
		incHistory: make([]int, 0, kmax),
		decHistory: make([]int, 0, kmax),
	}
}

// clear resets the margin to empty, as when starting a fresh search from a
// new seed point.
//
// Complexity: O(1) (reslices, does not reallocate).
func (m *KMargin) clear() {
	m.total = 0
	m.incHistory = m.incHistory[:0]
	m.decHistory = m.decHistory[:0]
}

// increase records a removed edge's length as newly available budget.
// Always succeeds: deleting an edge never needs to be refused.
//
// Complexity: O(1).
func (m *KMargin) increase(amount int) {
	m.total += amount
	m.incHistory = append(m.incHistory, amount)
}

// decrease spends amount of budget on a new edge, failing (without
// mutating state) if amount exceeds the current margin.
//
// Complexity: O(1).
func (m *KMargin) decrease(amount int) bool {
	if amount > m.total {
		return false
	}
	m.total -= amount
	m.decHistory = append(m.decHistory, amount)
	return true
}

// popIncrease undoes the most recent increase.
//
// Complexity: O(1).
func (m *KMargin) popIncrease() {
	n := len(m.incHistory)
	m.total -= m.incHistory[n-1]
	m.incHistory = m.incHistory[:n-1]
}

// popDecrease undoes the most recent decrease.
//
// Complexity: O(1).
func (m *KMargin) popDecrease() {
	n := len(m.decHistory)
	m.total += m.decHistory[n-1]
	m.decHistory = m.decHistory[:n-1]
}

package rivecore

// dependencySorter computes a topological order over a component graph by
// reverse post-order DFS, grounded on
// original_source/src/dependency_sorter.cpp. A component is pushed to the
// front of order only after all of its dependents have been visited, so
// for any edge a -> b (a depended-on-by b), order(a) < order(b).
type dependencySorter struct {
	perm map[Component]bool
	temp map[Component]bool
}

// sort computes a topological order rooted at root. It returns the order
// and true, or a partial order and false if a cycle was detected (spec
// §4.4, §7: cycles are reported and break sorting).
func (s *dependencySorter) sort(root Component) ([]Component, bool) {
	s.perm = make(map[Component]bool)
	s.temp = make(map[Component]bool)
	var order []Component
	ok := s.visit(root, &order)
	return order, ok
}

func (s *dependencySorter) visit(c Component, order *[]Component) bool {
	if s.perm[c] {
		return true
	}
	if s.temp[c] {
		// Dependency cycle.
		return false
	}
	s.temp[c] = true
	for _, dependent := range c.Dependents() {
		if !s.visit(dependent, order) {
			return false
		}
	}
	s.perm[c] = true
	*order = append([]Component{c}, *order...)
	return true
}

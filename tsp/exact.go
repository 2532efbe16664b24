package tsp

// Solver runs the Held–Karp dynamic program over a validated Matrix.
//
// State (mask, v) means: start at m.Start(), visit exactly the nodes whose
// bits are set in mask, and stand at v. Tables are flat slices of 2ⁿ·n
// entries indexed mask*n+v, allocated once in NewSolver.
//
// Reachability is tracked in its own vector instead of storing Inf in dp,
// so no addition ever touches the sentinel.
//
// A Solver is not safe for concurrent use.
//
// Time complexity:   O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
type Solver struct {
	m      *Matrix
	n      int
	start  int
	full   int // all n bits set
	dp     []Cost
	reach  []bool
	parent []int
}

// NewSolver allocates the DP and predecessor tables for m.
// m must come from NewMatrix (n ≥ 1, start in range).
func NewSolver(m *Matrix) *Solver {
	n := m.N()
	size := (1 << n) * n
	s := &Solver{
		m:      m,
		n:      n,
		start:  m.Start(),
		full:   1<<n - 1,
		dp:     make([]Cost, size),
		reach:  make([]bool, size),
		parent: make([]int, size),
	}
	s.reset()

	return s
}

// reset marks every state unreachable except the base case (mask={start}, v=start).
func (s *Solver) reset() {
	var i int
	for i = range s.dp {
		s.dp[i] = 0
		s.reach[i] = false
		s.parent[i] = -1
	}
	base := (1<<s.start)*s.n + s.start
	s.reach[base] = true
}

// Solve computes the minimum-cost closed tour from the start node.
// It returns false when no Hamiltonian cycle closes back at the start.
// Calling Solve again yields the same result.
func (s *Solver) Solve() (Tour, bool) {
	s.reset()
	s.fill()

	total, last, ok := s.close()
	if !ok {
		return Tour{}, false
	}
	path, ok := s.reconstruct(last)
	if !ok {
		return Tour{}, false
	}

	return Tour{Cost: total, Path: path}, true
}

// fill relaxes every state in increasing mask order. A mask is only ever
// extended into numerically larger masks, so all of its states are final
// by the time it is used as a source.
func (s *Solver) fill() {
	var (
		n        = s.n
		startBit = 1 << s.start
		mask     int
		u, v     int
		next     int
		from, to int
		c        Cost
		ok       bool
		cand     Cost
	)
	for mask = startBit; mask <= s.full; mask++ {
		if mask&startBit == 0 {
			continue // states without the start node are never reachable
		}
		for u = 0; u < n; u++ {
			from = mask*n + u
			if mask&(1<<u) == 0 || !s.reach[from] {
				continue
			}
			for v = 0; v < n; v++ {
				if mask&(1<<v) != 0 {
					continue
				}
				if c, ok = s.m.At(u, v); !ok {
					continue // no edge u→v
				}
				next = mask | 1<<v
				to = next*n + v
				cand = s.dp[from] + c
				if !s.reach[to] || cand < s.dp[to] {
					s.dp[to] = cand
					s.reach[to] = true
					s.parent[to] = u
				}
			}
		}
	}
}

// close finds the cheapest way to return to the start from a state that
// covers every node. Ties keep the lowest closing node.
// For n == 1 the start is its own closing node at cost 0.
func (s *Solver) close() (total Cost, last int, ok bool) {
	var (
		i    int
		idx  int
		c    Cost
		edge bool
		cand Cost
	)
	last = -1
	for i = 0; i < s.n; i++ {
		idx = s.full*s.n + i
		if !s.reach[idx] {
			continue
		}
		if i == s.start {
			c, edge = 0, true // only when n == 1; self-loops are never traversed
		} else {
			c, edge = s.m.At(i, s.start)
		}
		if !edge {
			continue // no edge back to start
		}
		cand = s.dp[idx] + c
		if last < 0 || cand < total {
			total, last = cand, i
		}
	}

	return total, last, last >= 0
}

// reconstruct walks predecessor links back from (full, last) to the base
// state and returns the closed tour. The walk is capped at n steps; if the
// base state is not reached within them the tables are inconsistent and
// false is returned.
func (s *Solver) reconstruct(last int) ([]int, bool) {
	var (
		path     = make([]int, 0, s.n+1)
		startBit = 1 << s.start
		mask     = s.full
		cur      = last
		prev     int
		step     int
		done     bool
	)
	for step = 0; step < s.n; step++ {
		path = append(path, cur)
		if mask == startBit && cur == s.start {
			done = true
			break
		}
		prev = s.parent[mask*s.n+cur]
		if prev < 0 {
			return nil, false
		}
		mask ^= 1 << cur
		cur = prev
	}
	if !done {
		return nil, false
	}

	// path holds last…start; flip it and close the cycle.
	var i, j int
	for i, j = 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	path = append(path, s.start)

	return path, true
}

// Solve validates costs with NewMatrix and returns the optimal tour from start.
//
// Errors: any NewMatrix error as-is, or ErrNoTour when no closed tour exists.
func Solve(costs [][]Cost, start int) (Tour, error) {
	m, err := NewMatrix(costs, start)
	if err != nil {
		return Tour{}, err
	}
	t, ok := NewSolver(m).Solve()
	if !ok {
		return Tour{}, ErrNoTour
	}

	return t, nil
}

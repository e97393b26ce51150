package bpd

// successors computes every grid reachable from b by one move of the
// variant. Lists are deduplicated by grid value because distinct moves can
// land on the same grid (a droop and a K-droop, or two flat drops that
// normalize alike).
type successors func(b Grid) []Grid

// Enumerator walks the reachability graph of a seed grid under one move
// set, yielding every distinct grid exactly once in depth-first order. It
// is lazy: successor frames are expanded only as [Enumerator.Next] is
// called, so abandoning an enumeration early costs nothing further.
//
// An Enumerator is single-use and not safe for concurrent calls.
type Enumerator struct {
	succ  successors
	stack []frame
	seen  map[string]struct{}
}

type frame struct {
	grid Grid
	next []Grid
}

func newEnumerator(seed Grid, succ successors) *Enumerator {
	e := &Enumerator{
		succ: succ,
		seen: map[string]struct{}{seed.Key(): {}},
	}
	e.stack = append(e.stack, frame{grid: seed, next: succ(seed)})
	return e
}

// Next returns the next unvisited grid, or ok == false once the orbit is
// exhausted. The seed is yielded first.
func (e *Enumerator) Next() (Grid, bool) {
	if len(e.stack) == 0 {
		return Grid{}, false
	}
	top := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	for _, s := range top.next {
		key := s.Key()
		if _, dup := e.seen[key]; dup {
			continue
		}
		e.seen[key] = struct{}{}
		e.stack = append(e.stack, frame{grid: s, next: e.succ(s)})
	}
	return top.grid, true
}

// Collect drains the enumerator into a slice.
func (e *Enumerator) Collect() []Grid {
	var out []Grid
	for {
		b, ok := e.Next()
		if !ok {
			return out
		}
		out = append(out, b)
	}
}

// Enumerate yields every bumpless pipe dream of w: the orbit of the Rothe
// seed under droop moves. For reduced enumeration every yielded grid g
// satisfies g.Perm().Equal(w.Normalized()) and g.IsReduced().
func Enumerate(w Perm) (*Enumerator, error) {
	seed, err := Rothe(w)
	if err != nil {
		return nil, err
	}
	return newEnumerator(seed, droopSuccessors), nil
}

// EnumerateK yields every K-theoretic bumpless pipe dream of w: the orbit
// of the Rothe seed under droops and K-droops. Grids beyond the plain
// orbit are non-reduced but still satisfy g.Perm().Equal(w.Normalized())
// under the Demazure product.
func EnumerateK(w Perm) (*Enumerator, error) {
	seed, err := Rothe(w)
	if err != nil {
		return nil, err
	}
	return newEnumerator(seed, kSuccessors), nil
}

// EnumerateFlat yields every flat bumpless pipe dream of w: the orbit of
// the flattened Rothe seed under flat drops. Every yielded grid satisfies
// [IsFlat].
func EnumerateFlat(w Perm) (*Enumerator, error) {
	seed, err := Rothe(w)
	if err != nil {
		return nil, err
	}
	return newEnumerator(MakeFlat(seed), flatSuccessors), nil
}

// EnumerateTop yields the top-flat orbit of w: the skew-flattened Rothe
// seed under drips and flat drops anchored at the top pipe's elbow, all
// normalized by [MakeFlatSkew] so the top pipe never droops away.
func EnumerateTop(w Perm) (*Enumerator, error) {
	seed, err := Rothe(w)
	if err != nil {
		return nil, err
	}
	return newEnumerator(MakeFlatSkew(seed), topSuccessors), nil
}

func droopSuccessors(b Grid) []Grid {
	var out []Grid
	forEachRect(b.n, func(r Rect) {
		if CanDroop(b, r) {
			out = append(out, applyDroop(b, r))
		}
	})
	return dedup(out)
}

func kSuccessors(b Grid) []Grid {
	var out []Grid
	forEachRect(b.n, func(r Rect) {
		if CanDroop(b, r) {
			out = append(out, applyDroop(b, r))
		}
		if CanKDroop(b, r) {
			next, err := KDroop(b, r)
			if err == nil {
				out = append(out, next)
			}
		}
	})
	return dedup(out)
}

func flatSuccessors(b Grid) []Grid {
	var out []Grid
	forEachRect(b.n, func(r Rect) {
		if CanFlatDrop(b, r) {
			out = append(out, makeFlat(applyDroop(b, r), false))
		}
	})
	return dedup(out)
}

func topSuccessors(b Grid) []Grid {
	var out []Grid
	for i := 1; i < b.n; i++ {
		for j := 1; j < b.n; j++ {
			if CanDrip(b, i, j) {
				r := Rect{I1: i, J1: j, I2: i + 1, J2: j + 1}
				out = append(out, makeFlat(applyDroop(b, r), true))
			}
		}
	}
	forEachRect(b.n, func(r Rect) {
		// Only the top pipe's own elbow may anchor a flat drop here.
		if b.At(r.I1, r.J1) == RElbow && b.CountPipes(r.I1, r.J1) == 1 && CanFlatDrop(b, r) {
			out = append(out, makeFlat(applyDroop(b, r), true))
		}
	})
	return dedup(out)
}

// forEachRect visits every proper rectangle of an n×n grid in a fixed
// lexicographic order, which keeps enumeration deterministic.
func forEachRect(n int, visit func(Rect)) {
	for i1 := 1; i1 < n; i1++ {
		for j1 := 1; j1 < n; j1++ {
			for i2 := i1 + 1; i2 <= n; i2++ {
				for j2 := j1 + 1; j2 <= n; j2++ {
					visit(Rect{I1: i1, J1: j1, I2: i2, J2: j2})
				}
			}
		}
	}
}

func dedup(grids []Grid) []Grid {
	if len(grids) < 2 {
		return grids
	}
	seen := make(map[string]struct{}, len(grids))
	out := grids[:0]
	for _, g := range grids {
		key := g.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, g)
	}
	return out
}

package data

// Pair holds the values of two linked containers, features first and targets last.
type Pair[A, B any] struct {
	First  A
	Second B
}

/*
Group links two containers into one container with a shared observation count.

Larger groups are built by nesting, Link(Link(x, y), z). When targets are
needed, the last member (Second) is used as the target source; a group in the
last slot is not unwrapped again.
*/
type Group[O1, B1, O2, B2 any] struct {
	first  Container[O1, B1]
	second Container[O2, B2]
	ax1    Axis
	ax2    Axis
}

// Link groups a and b; both use the axis passed to each call.
func Link[O1, B1, O2, B2 any](a Container[O1, B1], b Container[O2, B2]) (*Group[O1, B1, O2, B2], error) {
	return LinkAxes(a, Auto, b, Auto)
}

/*
LinkAxes groups a and b with fixed per-member axes.
Auto lets the member use the axis passed to the call.
The observation counts are checked with the default axes.
*/
func LinkAxes[O1, B1, O2, B2 any](a Container[O1, B1], ax1 Axis, b Container[O2, B2], ax2 Axis) (*Group[O1, B1, O2, B2], error) {
	g := &Group[O1, B1, O2, B2]{first: a, second: b, ax1: ax1, ax2: ax2}
	if _, err := g.NObs(Auto); err != nil {
		return nil, err
	}
	return g, nil
}

// LuckyLink is Link panicking on error.
func LuckyLink[O1, B1, O2, B2 any](a Container[O1, B1], b Container[O2, B2]) *Group[O1, B1, O2, B2] {
	return lucky(Link(a, b))
}

func (g *Group[O1, B1, O2, B2]) First() Container[O1, B1] {
	return g.first
}

func (g *Group[O1, B1, O2, B2]) Second() Container[O2, B2] {
	return g.second
}

// DefaultAxis is Auto, every member resolves its own default.
func (g *Group[O1, B1, O2, B2]) DefaultAxis() Axis {
	return Auto
}

// axes returns the resolved member axes for a call with ax.
func (g *Group[O1, B1, O2, B2]) axes(ax Axis) (Axis, Axis) {
	a1, a2 := g.ax1, g.ax2
	if a1.IsAuto() {
		a1 = ax
	}
	if a2.IsAuto() {
		a2 = ax
	}
	return Resolve(g.first, a1), Resolve(g.second, a2)
}

// targetSource returns the last member and its axis, used by target extraction.
func (g *Group[O1, B1, O2, B2]) targetSource(ax Axis) (interface{}, Axis) {
	_, a2 := g.axes(ax)
	return g.second, a2
}

func (g *Group[O1, B1, O2, B2]) NObs(ax Axis) (int, error) {
	a1, a2 := g.axes(ax)
	n1, err := g.first.NObs(a1)
	if err != nil {
		return 0, err
	}
	n2, err := g.second.NObs(a2)
	if err != nil {
		return 0, err
	}
	if n1 != n2 {
		return 0, Mismatch("linked containers have %d and %d observations", n1, n2)
	}
	return n1, nil
}

func (g *Group[O1, B1, O2, B2]) Obs(i int, ax Axis) (o Pair[O1, O2], err error) {
	a1, a2 := g.axes(ax)
	if o.First, err = g.first.Obs(i, a1); err != nil {
		return
	}
	o.Second, err = g.second.Obs(i, a2)
	return
}

func (g *Group[O1, B1, O2, B2]) Batch(idx []int, ax Axis) (b Pair[B1, B2], err error) {
	a1, a2 := g.axes(ax)
	if b.First, err = g.first.Batch(idx, a1); err != nil {
		return
	}
	b.Second, err = g.second.Batch(idx, a2)
	return
}

func (g *Group[O1, B1, O2, B2]) BatchInto(dst Pair[B1, B2], idx []int, ax Axis) error {
	f1, ok1 := batchFiller[B1](g.first)
	f2, ok2 := batchFiller[B2](g.second)
	if !ok1 || !ok2 {
		return Capability("linked containers %T and %T do not both support in-place batch extraction", g.first, g.second)
	}
	a1, a2 := g.axes(ax)
	if err := f1.BatchInto(dst.First, idx, a1); err != nil {
		return err
	}
	return f2.BatchInto(dst.Second, idx, a2)
}

func (g *Group[O1, B1, O2, B2]) ObsInto(dst Pair[O1, O2], i int, ax Axis) error {
	f1, ok1 := obsFiller[O1](g.first)
	f2, ok2 := obsFiller[O2](g.second)
	if !ok1 || !ok2 {
		return Capability("linked containers %T and %T do not both support in-place observation extraction", g.first, g.second)
	}
	a1, a2 := g.axes(ax)
	if err := f1.ObsInto(dst.First, i, a1); err != nil {
		return err
	}
	return f2.ObsInto(dst.Second, i, a2)
}

func (g *Group[O1, B1, O2, B2]) buffersBatch() bool {
	_, ok1 := batchFiller[B1](g.first)
	_, ok2 := batchFiller[B2](g.second)
	return ok1 && ok2
}

func (g *Group[O1, B1, O2, B2]) buffersObs() bool {
	_, ok1 := obsFiller[O1](g.first)
	_, ok2 := obsFiller[O2](g.second)
	return ok1 && ok2
}

/*
Subset returns a group of subsets, one per member, after checking that the
members agree on the observation count.
*/
func (g *Group[O1, B1, O2, B2]) Subset(idx Indices, ax Axis) (Container[Pair[O1, O2], Pair[B1, B2]], error) {
	n, err := g.NObs(ax)
	if err != nil {
		return nil, err
	}
	if err = idx.Check(n); err != nil {
		return nil, err
	}
	a1, a2 := g.axes(ax)
	s1, err := Subset(g.first, idx, a1)
	if err != nil {
		return nil, err
	}
	s2, err := Subset(g.second, idx, a2)
	if err != nil {
		return nil, err
	}
	return &Group[O1, B1, O2, B2]{first: s1, second: s2, ax1: a1, ax2: a2}, nil
}

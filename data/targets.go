package data

/*
Labeler extracts one label per observation of a container.
*/
type Labeler[L comparable] interface {
	Labels(c Sized, ax Axis) ([]L, error)
}

type targetSourcer interface {
	targetSource(ax Axis) (interface{}, Axis)
}

type subsetBase interface {
	subsetOf() (interface{}, Indices, Axis)
}

func (s *DataSubset[O, B]) subsetOf() (interface{}, Indices, Axis) {
	return s.base, s.idx, s.ax
}

type labelFunc[O any, L comparable] func(O) L

/*
By returns a Labeler applying fn to every observation.

When the container (or the base of a subset) implements TargetExtractable[L],
its bulk targets are used instead and no observation is materialized.
For a linked group the last member is used, once.
*/
func By[O any, L comparable](fn func(O) L) Labeler[L] {
	return labelFunc[O, L](fn)
}

// Identity returns a Labeler using the observations themselves as labels.
func Identity[L comparable]() Labeler[L] {
	return By(func(l L) L { return l })
}

func (fn labelFunc[O, L]) Labels(c Sized, ax Axis) ([]L, error) {
	var src interface{} = c
	if g, ok := src.(targetSourcer); ok {
		src, ax = g.targetSource(ax)
	} else {
		ax = Resolve(c, ax)
	}
	if ls, ok, err := bulkTargets[L](src, ax); ok {
		return ls, err
	}
	x, ok := src.(Indexable[O])
	if !ok {
		var o O
		return nil, Capability("%T does not provide observations of type %T", src, o)
	}
	n, err := x.NObs(ax)
	if err != nil {
		return nil, err
	}
	r := make([]L, n)
	for i := range r {
		o, err := x.Obs(i, ax)
		if err != nil {
			return nil, err
		}
		r[i] = fn(o)
	}
	return r, nil
}

func bulkTargets[L comparable](src interface{}, ax Axis) ([]L, bool, error) {
	if t, ok := src.(TargetExtractable[L]); ok {
		ls, err := t.Targets(ax)
		return ls, true, err
	}
	s, ok := src.(subsetBase)
	if !ok {
		return nil, false, nil
	}
	base, idx, sax := s.subsetOf()
	t, ok := base.(TargetExtractable[L])
	if !ok {
		return nil, false, nil
	}
	all, err := t.Targets(sax)
	if err != nil {
		return nil, true, err
	}
	if err = idx.Check(len(all)); err != nil {
		return nil, true, err
	}
	r := make([]L, idx.Len())
	for i := range r {
		r[i] = all[idx.At(i)]
	}
	return r, true, nil
}

// Targets returns the labels of every observation of c.
func Targets[L comparable](c Sized, lb Labeler[L], ax Axis) ([]L, error) {
	return lb.Labels(c, ax)
}

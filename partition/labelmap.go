package partition

/*
LabelMap maps every distinct label to the positions holding it.
Labels keeps the order of first appearance.
*/
type LabelMap[L comparable] struct {
	Labels []L
	Index  map[L][]int
}

// NewLabelMap indexes labels in their natural order.
func NewLabelMap[L comparable](labels []L) *LabelMap[L] {
	m := &LabelMap[L]{Index: map[L][]int{}}
	for i, l := range labels {
		m.add(l, i)
	}
	return m
}

/*
NewLabelMapOrder indexes the positions listed in order,
so every label's positions follow that order.
*/
func NewLabelMapOrder[L comparable](labels []L, order []int) *LabelMap[L] {
	m := &LabelMap[L]{Index: map[L][]int{}}
	for _, i := range order {
		m.add(labels[i], i)
	}
	return m
}

func (m *LabelMap[L]) add(l L, i int) {
	x, ok := m.Index[l]
	if !ok {
		m.Labels = append(m.Labels, l)
	}
	m.Index[l] = append(x, i)
}

// Count returns the number of positions holding label l.
func (m *LabelMap[L]) Count(l L) int {
	return len(m.Index[l])
}

// MinMax returns the smallest and the largest label count.
func (m *LabelMap[L]) MinMax() (lo, hi int) {
	for i, l := range m.Labels {
		c := len(m.Index[l])
		if i == 0 || c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return
}

package zlayer

import "math"

// maxExactLayer bounds layer ids to integers a float64 represents exactly.
const maxExactLayer = 1 << 53

// Slot locates the remaining candidates of one neighbour layer.
type Slot struct {
	Layer int
	From  int
}

// Layout is the layer assignment of one strip.
type Layout struct {
	count  int
	dense  [][]int32
	sparse map[int][]int32
	slots  [][3]Slot
	valid  [][3]bool
}

// Build assigns each z (in strip order) to the layer floor((z-minZ)/width).
// There are floor((maxZ-minZ)/width)+1 layers.
//
// It returns false when width is not positive or the layer ids cannot be
// represented exactly; callers must then fall back to an unbucketed scan.
func Build(zs []float64, width float64) (*Layout, bool) {
	if len(zs) == 0 || !(width > 0) {
		return nil, false
	}

	minZ, maxZ := zs[0], zs[0]
	for _, z := range zs[1:] {
		minZ = math.Min(minZ, z)
		maxZ = math.Max(maxZ, z)
	}

	span := math.Floor((maxZ - minZ) / width)
	if math.IsNaN(span) || span >= maxExactLayer {
		return nil, false
	}

	l := &Layout{
		count: int(span) + 1,
		slots: make([][3]Slot, len(zs)),
		valid: make([][3]bool, len(zs)),
	}
	if l.count <= len(zs) {
		l.dense = make([][]int32, l.count)
	} else {
		l.sparse = make(map[int][]int32, len(zs))
	}

	for i, z := range zs {
		own := int((z - minZ) / width)
		if own >= l.count {
			own = l.count - 1
		}

		l.append(own, int32(i))
		l.slots[i][1] = Slot{Layer: own, From: len(l.Layer(own))}
		l.valid[i][1] = true

		if own > 0 {
			l.slots[i][0] = Slot{Layer: own - 1, From: len(l.Layer(own - 1))}
			l.valid[i][0] = true
		}
		if own < l.count-1 {
			l.slots[i][2] = Slot{Layer: own + 1, From: len(l.Layer(own + 1))}
			l.valid[i][2] = true
		}
	}

	return l, true
}

func (l *Layout) append(id int, pos int32) {
	if l.dense != nil {
		l.dense[id] = append(l.dense[id], pos)
		return
	}
	l.sparse[id] = append(l.sparse[id], pos)
}

// Count returns the number of layers.
func (l *Layout) Count() int {
	return l.count
}

// Sparse reports whether layers are kept in a map instead of a slice.
func (l *Layout) Sparse() bool {
	return l.sparse != nil
}

// Layer returns the strip positions assigned to layer id, in insertion order.
func (l *Layout) Layer(id int) []int32 {
	if id < 0 || id >= l.count {
		return nil
	}
	if l.dense != nil {
		return l.dense[id]
	}
	return l.sparse[id]
}

// Own returns the layer of strip position i.
func (l *Layout) Own(i int) int {
	return l.slots[i][1].Layer
}

// AppendNeighbors appends the previous, own and next layer slots of strip
// position i to dst. Slots outside the layer range are skipped.
func (l *Layout) AppendNeighbors(dst []Slot, i int) []Slot {
	for k := range 3 {
		if l.valid[i][k] {
			dst = append(dst, l.slots[i][k])
		}
	}
	return dst
}

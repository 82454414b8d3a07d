package closestpair

import "github.com/hupe1980/closestpair/internal/zlayer"

// searchStrip looks for a pair closer than delta among strip, which holds
// the points near the partition boundary in y order. Points are bucketed
// along z into layers of width delta, so a pair closer than delta shares a
// layer or sits in adjacent layers. Within a layer the scan stops at the
// first point more than delta above in y.
func (f *Finder) searchStrip(strip []int, delta float64) (float64, error) {
	closest := delta

	if len(strip) < 2 {
		return closest, nil
	}
	if len(strip) <= 3 {
		d, err := f.handleBaseCase(strip)
		if err != nil {
			return 0, err
		}
		return min(d, closest), nil
	}
	if delta == 0 {
		return 0, nil
	}

	zs := make([]float64, len(strip))
	for i, id := range strip {
		zs[i] = f.points[id].Z
	}

	layout, ok := zlayer.Build(zs, delta)
	if !ok {
		return f.scanWindow(strip, delta), nil
	}
	f.opts.metricsCollector.RecordStrip(len(strip), layout.Count())

	for i, id := range strip {
		limit := f.points[id].Y + delta

		f.slots = layout.AppendNeighbors(f.slots[:0], i)
		for _, s := range f.slots {
			for _, pos := range layout.Layer(s.Layer)[s.From:] {
				cand := strip[pos]
				if f.points[cand].Y > limit {
					break
				}
				if d := f.distance(id, cand); d < closest {
					closest = d
					f.update(id, cand, d)
				}
			}
		}
	}

	return closest, nil
}

// scanWindow compares each strip point with the points following it while
// they stay within delta in y. It serves strips whose z spread is too wide
// relative to delta to number the layers exactly.
func (f *Finder) scanWindow(strip []int, delta float64) float64 {
	closest := delta
	for i, id := range strip {
		limit := f.points[id].Y + delta
		for _, cand := range strip[i+1:] {
			if f.points[cand].Y > limit {
				break
			}
			if d := f.distance(id, cand); d < closest {
				closest = d
				f.update(id, cand, d)
			}
		}
	}
	return closest
}

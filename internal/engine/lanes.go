package engine

// escapeRadius2 is |z|^2 at which an orbit is considered escaped.
const escapeRadius2 = 4.0

// lanes holds one batch of adjacent same-row pixels in structure-of-arrays
// form. All slices share the lane width.
type lanes struct {
	cr, ci []float64
	zr, zi []float64
	count  []uint32
	active []bool
}

func newLanes(width int) *lanes {
	return &lanes{
		cr:     make([]float64, width),
		ci:     make([]float64, width),
		zr:     make([]float64, width),
		zi:     make([]float64, width),
		count:  make([]uint32, width),
		active: make([]bool, width),
	}
}

// load resets the batch to pixels [x, x+n) of a row at world y. Lanes at
// or past n start inactive and never count.
func (l *lanes) load(left, scale float64, x, n int, wy float64) {
	for i := range l.cr {
		l.cr[i] = left + float64(x+i)*scale
		l.ci[i] = wy
		l.zr[i] = 0
		l.zi[i] = 0
		l.count[i] = 0
		l.active[i] = i < n
	}
}

// iterate advances z <- z^2 + c on every lane. A lane's active flag drops
// the first iteration its modulus reaches the escape radius and is never
// raised again; counts only grow while active. The batch exits once no
// lane is active or the budget is spent.
func (l *lanes) iterate(budget uint32) {
	cr := l.cr
	ci := l.ci[:len(cr)]
	zr, zi := l.zr[:len(cr)], l.zi[:len(cr)]
	count, active := l.count[:len(cr)], l.active[:len(cr)]

	for it := uint32(0); it < budget; it++ {
		live := false
		for i := range cr {
			r, im := zr[i], zi[i]
			nr := r*r - im*im + cr[i]
			ni := 2*r*im + ci[i]
			zr[i], zi[i] = nr, ni

			still := active[i] && nr*nr+ni*ni < escapeRadius2
			active[i] = still
			count[i] += b2u(still)
			live = live || still
		}
		if !live {
			return
		}
	}
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

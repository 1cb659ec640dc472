package roots

import "math"

// searcher is the internal protocol of the bracket-search family: grow
// or slide the window one step at a time until it brackets a sign
// change. Concrete variants differ only in which end(s) move.
type searcher interface {
	Iterate() error
	Bounds() Interval
	bracketed() (bool, error)
}

// searchBase holds the state shared by all search variants: the
// objective, the current window and the expansion ratio.
type searchBase struct {
	fn    Func
	iv    Interval
	ratio float64
}

// newSearchBase validates the objective, window and ratio.
func newSearchBase(fn Func, iv Interval, ratio float64) (searchBase, error) {
	if fn == nil {
		return searchBase{}, ErrNilFunction
	}
	if !isFinite(iv.Lower) || !isFinite(iv.Upper) || iv.Lower >= iv.Upper {
		return searchBase{}, ErrInvalidBounds
	}
	if ratio < 1 || math.IsNaN(ratio) {
		return searchBase{}, ErrInvalidRatio
	}

	return searchBase{fn: fn, iv: iv, ratio: ratio}, nil
}

// Bounds returns the current window.
func (s *searchBase) Bounds() Interval { return s.iv }

// evaluate applies the objective and fails on a non-finite result.
func (s *searchBase) evaluate(x float64) (float64, error) {
	y := s.fn(x)
	if !isFinite(y) {
		return 0, ErrNumerical
	}

	return y, nil
}

// bracketed reports whether the current window already straddles a sign
// change. Every variant terminates immediately, without mutating state,
// once this holds.
func (s *searchBase) bracketed() (bool, error) {
	fLo, err := s.evaluate(s.iv.Lower)
	if err != nil {
		return false, err
	}
	fHi, err := s.evaluate(s.iv.Upper)
	if err != nil {
		return false, err
	}

	return fLo*fHi <= 0, nil
}

// searchUp slides the whole window upward: the new window starts at the
// old upper bound and spans ratio times the old width.
type searchUp struct{ searchBase }

func (s *searchUp) Iterate() error {
	if ok, err := s.bracketed(); ok || err != nil {
		return err
	}

	w := s.iv.Width()
	s.iv = Interval{Lower: s.iv.Upper, Upper: s.iv.Upper + w*s.ratio}

	return nil
}

// searchDown slides the whole window downward, mirroring searchUp.
type searchDown struct{ searchBase }

func (s *searchDown) Iterate() error {
	if ok, err := s.bracketed(); ok || err != nil {
		return err
	}

	w := s.iv.Width()
	s.iv = Interval{Lower: s.iv.Lower - w*s.ratio, Upper: s.iv.Lower}

	return nil
}

// expandUp grows the upper end by ratio·width, holding the lower fixed.
type expandUp struct{ searchBase }

func (s *expandUp) Iterate() error {
	if ok, err := s.bracketed(); ok || err != nil {
		return err
	}

	s.iv.Upper += s.iv.Width() * s.ratio

	return nil
}

// expandDown grows the lower end by ratio·width, holding the upper fixed.
type expandDown struct{ searchBase }

func (s *expandDown) Iterate() error {
	if ok, err := s.bracketed(); ok || err != nil {
		return err
	}

	s.iv.Lower -= s.iv.Width() * s.ratio

	return nil
}

// expandOut grows both ends symmetrically by ratio·width/2 each.
type expandOut struct{ searchBase }

func (s *expandOut) Iterate() error {
	if ok, err := s.bracketed(); ok || err != nil {
		return err
	}

	half := s.iv.Width() * s.ratio / 2
	s.iv.Lower -= half
	s.iv.Upper += half

	return nil
}

// subdivide partitions the current window into ⌈ratio⌉ equal segments
// and adopts the first segment with a sign change; if none brackets, the
// ratio is doubled so the next pass probes a finer grid.
type subdivide struct{ searchBase }

func (s *subdivide) Iterate() error {
	if ok, err := s.bracketed(); ok || err != nil {
		return err
	}

	n := int(math.Ceil(s.ratio))
	step := s.iv.Width() / float64(n)

	lower := s.iv.Lower
	upper := math.Min(lower+step, s.iv.Upper)
	for i := 0; i < n; i++ {
		fLo, err := s.evaluate(lower)
		if err != nil {
			return err
		}
		fHi, err := s.evaluate(upper)
		if err != nil {
			return err
		}
		if fLo*fHi < 0 {
			s.iv = Interval{Lower: lower, Upper: upper}

			return nil
		}
		lower = upper
		upper = math.Min(upper+step, s.iv.Upper)
	}

	s.ratio *= 2

	return nil
}

// newSearcher dispatches on the SearchMethod enum.
func newSearcher(method SearchMethod, fn Func, iv Interval, ratio float64) (searcher, error) {
	base, err := newSearchBase(fn, iv, ratio)
	if err != nil {
		return nil, err
	}

	switch method {
	case SearchUp:
		return &searchUp{base}, nil
	case SearchDown:
		return &searchDown{base}, nil
	case ExpandUp:
		return &expandUp{base}, nil
	case ExpandDown:
		return &expandDown{base}, nil
	case ExpandOut:
		return &expandOut{base}, nil
	case Subdivide:
		return &subdivide{base}, nil
	default:
		return nil, ErrBadOption
	}
}

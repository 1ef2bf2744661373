package numeric

type DiffResult struct {
	X0          float64 `json:"x0"`
	Nonsingular bool    `json:"nonsingular"`
	// Derivs holds f, f', f'' and f''' at X0.
	Derivs [4]float64 `json:"derivs"`
}

// Differentiate estimates f and its first three derivatives at x0 from
// samples at x0, x0±h and x0±2h. A failed evaluation at x0 itself is
// treated as a removable singularity: the value and second derivative are
// then taken from the four offset samples only and Nonsingular is false.
func (s *Solver) Differentiate(f Func, x0 float64) (*DiffResult, error) {
	h := s.cfg.DiffStep

	center, centerErr := f(x0)

	var off [4]float64
	for i, k := range [4]float64{-2, -1, 1, 2} {
		v, err := eval(f, x0+k*h)
		if err != nil {
			return nil, err
		}
		off[i] = v
	}
	fm2, fm1, fp1, fp2 := off[0], off[1], off[2], off[3]

	res := &DiffResult{X0: x0, Nonsingular: centerErr == nil}
	res.Derivs[1] = (fm2 - 8*fm1 + 8*fp1 - fp2) / (12 * h)
	res.Derivs[3] = (-fm2 + 2*fm1 - 2*fp1 + fp2) / (2 * h * h * h)

	if res.Nonsingular {
		res.Derivs[0] = center
		res.Derivs[2] = (-fm2 + 16*fm1 - 30*center + 16*fp1 - fp2) / (12 * h * h)
	} else {
		s.log.Debug("singular point, extrapolating from neighbours", "x0", x0, "err", centerErr)
		res.Derivs[0] = (-fm2 + 4*fm1 + 4*fp1 - fp2) / 6
		res.Derivs[2] = (fm2 - fm1 - fp1 + fp2) / (3 * h * h)
	}

	return res, nil
}

package numeric_test

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numcalc/internal/calc"
	"github.com/san-kum/numcalc/internal/expr"
	"github.com/san-kum/numcalc/internal/numeric"
)

func TestNumeric(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Numeric Suite")
}

func mustFunc(formula string) numeric.Func {
	f, err := expr.New(formula).Func("x")
	Expect(err).NotTo(HaveOccurred())
	return f
}

var _ = Describe("Solver", func() {
	var s *numeric.Solver

	BeforeEach(func() {
		s = numeric.New(numeric.DefaultConfig(), nil)
	})

	Describe("on parsed formulas", func() {
		It("differentiates 2x+3/(x^4+5) at 1", func() {
			res, err := s.Differentiate(mustFunc("2x+3/(x^4+5)"), 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Derivs[0]).To(BeNumerically("~", 2.5, 1e-9))
			Expect(res.Derivs[1]).To(BeNumerically("~", 1.6667, 1e-4))
			Expect(res.Derivs[2]).To(BeNumerically("~", -0.5556, 1e-4))
			Expect(res.Derivs[3]).To(BeNumerically("~", 1.111, 1e-3))
		})

		It("extrapolates through the removable singularity of sin(x)/x", func() {
			res, err := s.Differentiate(mustFunc("sin(x)/x"), 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Nonsingular).To(BeFalse())
			Expect(res.Derivs[0]).To(BeNumerically("~", 1, 1e-9))
		})

		It("integrates the example over [1, 6]", func() {
			res, err := s.Integrate(mustFunc("2x+3/(x^4+5)"), 1, 6)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Integral).To(BeNumerically("~", 35.4136, 1e-4))
			Expect(res.Epsilon).To(Equal(1e-12))
		})

		It("finds the root of 2x-3/(x^4+5) from 1", func() {
			f := mustFunc("2x-3/(x^4+5)")
			res, err := s.FindRoot(f, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.X).To(BeNumerically("~", 0.2995, 1e-4))
			fx, err := f(res.X)
			Expect(err).NotTo(HaveOccurred())
			Expect(math.Abs(fx)).To(BeNumerically("<=", res.Epsilon))
		})

		It("finds the maximum of sin(x)+x/2 from 1", func() {
			res, err := s.FindMax(mustFunc("sin(x)+x/2"), 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.X).To(BeNumerically("~", 2.094, 1e-3))
			Expect(res.F).To(BeNumerically("~", 1.913, 1e-3))
		})
	})

	Describe("failures", func() {
		It("propagates domain errors from the integrand", func() {
			_, err := s.Integrate(mustFunc("ln(x)"), -1, 1)
			var de *calc.DomainError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Func).To(Equal("ln"))
		})

		It("reports a missing sign change as a convergence error", func() {
			_, err := s.FindRoot(mustFunc("x^2+1"), 0)
			Expect(err).To(MatchError(numeric.ErrBracketingFailed))
			Expect(calc.KindOf(err)).To(Equal("convergence"))
		})
	})
})

package solver

import (
	"math"

	"github.com/nodewave/circsim/cplx"
	"github.com/nodewave/circsim/sparse"
)

// Report carries diagnostics from the most recent Solve call. The
// circuit assembler never inspects Converged to decide whether to
// continue a run (non-convergence is silent by design); Report exists
// so a caller that does care can opt in.
type Report struct {
	Iterations int
	Residual   float64
	Converged  bool
}

// Solver runs BiCGSTAB over a fixed-size sparse complex system,
// reusing its working vectors across calls. Each Solve still allocates
// a working copy of x and one result vector per matrix-vector product.
type Solver struct {
	cfg Config

	// preallocated working vectors, resized only when N changes.
	r, rHat, p, ap, s, as, rNew []cplx.Z
}

// New creates a Solver with the given options applied over the
// default stopping criteria (MaxIters=100, Tol=1e-6).
func New(opts ...Option) *Solver {
	return &Solver{cfg: NewConfig(opts...)}
}

// ensureSize grows the working vectors to length n, reusing existing
// backing arrays when n has not changed (the common case: a circuit's
// dimension is fixed after assembly).
func (sv *Solver) ensureSize(n int) {
	if len(sv.r) == n {
		return
	}

	sv.r = make([]cplx.Z, n)
	sv.rHat = make([]cplx.Z, n)
	sv.p = make([]cplx.Z, n)
	sv.ap = make([]cplx.Z, n)
	sv.s = make([]cplx.Z, n)
	sv.as = make([]cplx.Z, n)
	sv.rNew = make([]cplx.Z, n)
}

// Solve solves A·x = b in place on sys's solution vector, using it as
// the warm-start initial guess. It always returns — convergence is
// never guaranteed for an arbitrary sparsity pattern, and the solver
// reports its best-effort x regardless of whether the tolerance was
// met (see Report.Converged).
// Complexity: O((nnz+N) * iterations).
func (sv *Solver) Solve(sys *sparse.System) Report {
	n := sys.N()
	sv.ensureSize(n)

	values := sys.Values()
	cols := sys.ColumnIndices()
	rowPtrs := sys.RowPointers()
	b := sys.B()
	x := append([]cplx.Z(nil), sys.X()...) // local working copy

	matvec := func(v []cplx.Z, out []cplx.Z) {
		tmp := sparse.MatVec(values, cols, rowPtrs, v)
		copy(out, tmp)
	}

	// Step 1: r <- b - A*x ; rHat <- r ; p <- r ; rhoOld <- <rHat, r>.
	matvec(x, sv.ap) // ap reused as scratch for A*x here
	for i := 0; i < n; i++ {
		sv.r[i] = b[i].Sub(sv.ap[i])
	}
	copy(sv.rHat, sv.r)
	copy(sv.p, sv.r)
	rhoOld := innerProduct(sv.rHat, sv.r)

	report := Report{Residual: norm2(sv.r)}

	for iter := 0; iter < sv.cfg.MaxIters; iter++ {
		report.Iterations = iter + 1

		// a. Ap <- A*p
		matvec(sv.p, sv.ap)

		// b. alphaDen <- <rHat, Ap>
		alphaDen := innerProduct(sv.rHat, sv.ap)
		if alphaDen.Norm() < breakdownEps {
			break
		}

		// c. alpha <- rhoOld / alphaDen
		alpha := rhoOld.Div(alphaDen)

		// d. s <- r - alpha*Ap
		for i := 0; i < n; i++ {
			sv.s[i] = sv.r[i].Sub(alpha.Mul(sv.ap[i]))
		}
		sNorm := norm2(sv.s)
		if sNorm < sv.cfg.Tol {
			for i := 0; i < n; i++ {
				x[i] = x[i].Add(alpha.Mul(sv.p[i]))
			}
			report.Residual = sNorm
			report.Converged = true
			sys.SetX(x)

			return report
		}

		// e. As <- A*s
		matvec(sv.s, sv.as)

		// f. omegaDen <- <As, As>
		omegaDen := innerProduct(sv.as, sv.as)
		if omegaDen.Norm() < breakdownEps {
			break
		}

		// g. omega <- <As, s> / omegaDen
		omega := innerProduct(sv.as, sv.s).Div(omegaDen)

		// h. x <- x + alpha*p + omega*s
		for i := 0; i < n; i++ {
			x[i] = x[i].Add(alpha.Mul(sv.p[i])).Add(omega.Mul(sv.s[i]))
		}

		// i. rNew <- s - omega*As
		for i := 0; i < n; i++ {
			sv.rNew[i] = sv.s[i].Sub(omega.Mul(sv.as[i]))
		}

		// j. rhoNew <- <rHat, rNew>
		rhoNew := innerProduct(sv.rHat, sv.rNew)
		if rhoNew.Norm() < breakdownEps || omega.IsZero() {
			copy(sv.r, sv.rNew)
			report.Residual = norm2(sv.r)
			break
		}

		// k. beta <- (rhoNew/rhoOld) * (alpha/omega)
		beta := rhoNew.Div(rhoOld).Mul(alpha.Div(omega))

		// l. p <- rNew + beta*(p - omega*Ap)
		for i := 0; i < n; i++ {
			sv.p[i] = sv.rNew[i].Add(beta.Mul(sv.p[i].Sub(omega.Mul(sv.ap[i]))))
		}

		// m. r <- rNew ; rhoOld <- rhoNew
		copy(sv.r, sv.rNew)
		rhoOld = rhoNew
		report.Residual = norm2(sv.r)
	}

	report.Converged = report.Residual < sv.cfg.Tol
	sys.SetX(x)

	return report
}

// innerProduct returns <u, v> = Sum u_i * conj(v_i).
func innerProduct(u, v []cplx.Z) cplx.Z {
	var sum cplx.Z
	for i := range u {
		sum = sum.Add(u[i].Mul(v[i].Conj()))
	}

	return sum
}

// norm2 returns the Euclidean norm of a complex vector.
func norm2(v []cplx.Z) float64 {
	var sum float64
	for _, z := range v {
		sum += z.Re*z.Re + z.Im*z.Im
	}

	return math.Sqrt(sum)
}

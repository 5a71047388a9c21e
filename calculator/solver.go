package calculator

import (
	"fmt"
	"math"
	"strings"

	"fvm1d/model"
)

const (
	SolverThomas = "thomas"
	SolverGauss  = "gauss"

	defaultSingularTolerance = 1e-12
)

// Solver 线性方程组求解器
type Solver interface {
	Solve(s *LinearSystem) ([]float64, error)
}

// NewSolver 根据名称选择求解器，tol <= 0 时使用默认值
func NewSolver(kind string, tol float64) (Solver, error) {
	if tol <= 0 {
		tol = defaultSingularTolerance
	}
	switch strings.ToLower(kind) {
	case "", SolverThomas:
		return &ThomasSolver{Tolerance: tol}, nil
	case SolverGauss:
		return &GaussSolver{Tolerance: tol}, nil
	default:
		return nil, fmt.Errorf("%w: unknown solver %q", model.ErrInvalidConfiguration, kind)
	}
}

// ThomasSolver 追赶法，仅适用于三对角矩阵
type ThomasSolver struct {
	Tolerance float64
}

func (ts *ThomasSolver) Solve(s *LinearSystem) ([]float64, error) {
	if err := s.checkSize(); err != nil {
		return nil, err
	}
	a := s.Matrix
	n := a.Size()
	eps := ts.Tolerance * a.maxAbs()

	cp := make([]float64, n) // 消元后的上对角
	dp := make([]float64, n) // 消元后的右端项

	// 消元
	denom := a.Diag[0]
	if math.Abs(denom) <= eps {
		return nil, fmt.Errorf("thomas: zero pivot at row 0: %w", model.ErrSingularSystem)
	}
	cp[0] = a.Upper[0] / denom
	dp[0] = s.RHS[0] / denom
	for i := 1; i < n; i++ {
		denom = a.Diag[i] - a.Lower[i]*cp[i-1]
		if math.Abs(denom) <= eps {
			return nil, fmt.Errorf("thomas: zero pivot at row %d: %w", i, model.ErrSingularSystem)
		}
		cp[i] = a.Upper[i] / denom
		dp[i] = (s.RHS[i] - a.Lower[i]*dp[i-1]) / denom
	}

	// 回代
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x, nil
}

// GaussSolver 列主元高斯消去，在稠密矩阵上求解
type GaussSolver struct {
	Tolerance float64
}

func (gs *GaussSolver) Solve(s *LinearSystem) ([]float64, error) {
	if err := s.checkSize(); err != nil {
		return nil, err
	}
	a := s.Matrix.Dense()
	b := make([]float64, len(s.RHS))
	copy(b, s.RHS)
	n := len(b)
	eps := gs.Tolerance * s.Matrix.maxAbs()

	for col := 0; col < n; col++ {
		// 选主元
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(a[pivot][col]) <= eps {
			return nil, fmt.Errorf("gauss: zero pivot in column %d: %w", col, model.ErrSingularSystem)
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			b[pivot], b[col] = b[col], b[pivot]
		}

		for row := col + 1; row < n; row++ {
			f := a[row][col] / a[col][col]
			if f == 0 {
				continue
			}
			for j := col; j < n; j++ {
				a[row][j] -= f * a[col][j]
			}
			b[row] -= f * b[col]
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= a[i][j] * x[j]
		}
		x[i] = sum / a[i][i]
	}
	return x, nil
}

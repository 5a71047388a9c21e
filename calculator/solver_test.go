package calculator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fvm1d/model"
)

func solvers(t *testing.T) map[string]Solver {
	t.Helper()
	out := make(map[string]Solver)
	for _, kind := range []string{SolverThomas, SolverGauss} {
		s, err := NewSolver(kind, 0)
		require.NoError(t, err)
		out[kind] = s
	}
	return out
}

func TestNewSolver(t *testing.T) {
	s, err := NewSolver("", 0)
	require.NoError(t, err)
	assert.IsType(t, &ThomasSolver{}, s)
	assert.Equal(t, defaultSingularTolerance, s.(*ThomasSolver).Tolerance)

	s, err = NewSolver("GAUSS", 1e-8)
	require.NoError(t, err)
	assert.IsType(t, &GaussSolver{}, s)
	assert.Equal(t, 1e-8, s.(*GaussSolver).Tolerance)

	_, err = NewSolver("lu", 0)
	assert.True(t, errors.Is(err, model.ErrInvalidConfiguration))
}

func TestSolversAgree(t *testing.T) {
	k := []float64{12, 7, 3, 30, 18, 1, 9}
	m := mustMesh(t, 2, len(k))
	sys, err := Assemble(m, CellProperties{Area: uniform(len(k), 1), Conductivity: k}, BoundaryCondition{TA: 300, TB: 20})
	require.NoError(t, err)

	thomas, err := (&ThomasSolver{Tolerance: defaultSingularTolerance}).Solve(sys)
	require.NoError(t, err)
	gauss, err := (&GaussSolver{Tolerance: defaultSingularTolerance}).Solve(sys)
	require.NoError(t, err)

	require.Len(t, thomas, len(k))
	for i := range thomas {
		assert.InDelta(t, thomas[i], gauss[i], 1e-9)
	}
	r, err := Residual(sys, thomas)
	require.NoError(t, err)
	assert.Less(t, r, 1e-9)
}

func TestSolveDoesNotMutateSystem(t *testing.T) {
	m := mustMesh(t, 1, 4)
	sys, err := Assemble(m, CellProperties{Area: uniform(4, 1), Conductivity: []float64{1, 2, 3, 4}}, BoundaryCondition{TA: 0, TB: 1})
	require.NoError(t, err)
	diag := append([]float64(nil), sys.Matrix.Diag...)
	rhs := append([]float64(nil), sys.RHS...)

	for name, s := range solvers(t) {
		_, err := s.Solve(sys)
		require.NoError(t, err, name)
		assert.Equal(t, diag, sys.Matrix.Diag, name)
		assert.Equal(t, rhs, sys.RHS, name)
	}
}

func TestSolveSingular(t *testing.T) {
	// [[1, 1], [1, 1]] 无唯一解
	sys := &LinearSystem{
		Matrix: &Tridiagonal{
			Lower: []float64{0, 1},
			Diag:  []float64{1, 1},
			Upper: []float64{1, 0},
		},
		RHS: []float64{1, 2},
	}
	for name, s := range solvers(t) {
		x, err := s.Solve(sys)
		assert.Nil(t, x, name)
		assert.True(t, errors.Is(err, model.ErrSingularSystem), name)
	}

	zero := &LinearSystem{Matrix: NewTridiagonal(3), RHS: make([]float64, 3)}
	for name, s := range solvers(t) {
		_, err := s.Solve(zero)
		assert.True(t, errors.Is(err, model.ErrSingularSystem), name)
	}
}

func TestSolveGaussPivoting(t *testing.T) {
	// 首个对角元为 0，追赶法失败而列主元消去可解
	sys := &LinearSystem{
		Matrix: &Tridiagonal{
			Lower: []float64{0, 2},
			Diag:  []float64{0, 1},
			Upper: []float64{3, 0},
		},
		RHS: []float64{6, 5},
	}
	x, err := (&GaussSolver{Tolerance: defaultSingularTolerance}).Solve(sys)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, x[0], 1e-12)
	assert.InDelta(t, 2, x[1], 1e-12)

	_, err = (&ThomasSolver{Tolerance: defaultSingularTolerance}).Solve(sys)
	assert.True(t, errors.Is(err, model.ErrSingularSystem))
}

func TestSolveDimensionMismatch(t *testing.T) {
	sys := &LinearSystem{Matrix: NewTridiagonal(3), RHS: make([]float64, 2)}
	for name, s := range solvers(t) {
		_, err := s.Solve(sys)
		assert.True(t, errors.Is(err, model.ErrInvalidConfiguration), name)
	}
	for name, s := range solvers(t) {
		_, err := s.Solve(nil)
		assert.Error(t, err, name)
	}
}

func TestTridiagonal(t *testing.T) {
	a := &Tridiagonal{
		Lower: []float64{0, -1, -2},
		Diag:  []float64{4, 5, 6},
		Upper: []float64{-3, -4, 0},
	}
	assert.Equal(t, -1.0, a.At(1, 0))
	assert.Equal(t, 5.0, a.At(1, 1))
	assert.Equal(t, -4.0, a.At(1, 2))
	assert.Equal(t, 0.0, a.At(0, 2))

	assert.Equal(t, [][]float64{
		{4, -3, 0},
		{-1, 5, -4},
		{0, -2, 6},
	}, a.Dense())

	y, err := a.MulVec([]float64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 4}, y)

	_, err = a.MulVec([]float64{1})
	assert.Error(t, err)
}

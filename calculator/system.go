package calculator

import (
	"fmt"
	"math"

	"fvm1d/model"
)

// Tridiagonal 三对角矩阵，按带存储，O(N)
// 第 i 行：Lower[i] 为 [i, i-1]，Diag[i] 为 [i, i]，Upper[i] 为 [i, i+1]
// Lower[0] 与 Upper[N-1] 恒为 0
type Tridiagonal struct {
	Lower []float64
	Diag  []float64
	Upper []float64
}

func NewTridiagonal(n int) *Tridiagonal {
	return &Tridiagonal{
		Lower: make([]float64, n),
		Diag:  make([]float64, n),
		Upper: make([]float64, n),
	}
}

func (m *Tridiagonal) Size() int {
	return len(m.Diag)
}

// At 返回 [i, j] 处的系数，带外为 0
func (m *Tridiagonal) At(i, j int) float64 {
	switch j - i {
	case -1:
		return m.Lower[i]
	case 0:
		return m.Diag[i]
	case 1:
		return m.Upper[i]
	default:
		return 0
	}
}

// Dense 转为 N×N 行优先稠密矩阵
func (m *Tridiagonal) Dense() [][]float64 {
	n := m.Size()
	dense := make([][]float64, n)
	for i := 0; i < n; i++ {
		dense[i] = make([]float64, n)
		dense[i][i] = m.Diag[i]
		if i > 0 {
			dense[i][i-1] = m.Lower[i]
		}
		if i < n-1 {
			dense[i][i+1] = m.Upper[i]
		}
	}
	return dense
}

// MulVec 计算 A·x
func (m *Tridiagonal) MulVec(x []float64) ([]float64, error) {
	n := m.Size()
	if len(x) != n {
		return nil, fmt.Errorf("tridiagonal mul: vector length %d, want %d", len(x), n)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.Diag[i] * x[i]
		if i > 0 {
			out[i] += m.Lower[i] * x[i-1]
		}
		if i < n-1 {
			out[i] += m.Upper[i] * x[i+1]
		}
	}
	return out, nil
}

// maxAbs 矩阵元素绝对值最大值，用于奇异判断的尺度
func (m *Tridiagonal) maxAbs() float64 {
	var scale float64
	for i := range m.Diag {
		scale = math.Max(scale, math.Abs(m.Diag[i]))
		scale = math.Max(scale, math.Abs(m.Lower[i]))
		scale = math.Max(scale, math.Abs(m.Upper[i]))
	}
	return scale
}

// LinearSystem 整体系数矩阵和方程右端项，每次求解重新组装
// Source 记录边界面的导热量 2k/dx，内部单元为 0
type LinearSystem struct {
	Matrix *Tridiagonal
	RHS    []float64
	Source []float64
}

func (s *LinearSystem) Size() int {
	return len(s.RHS)
}

// Residual 返回 max|A·t - b|
func Residual(s *LinearSystem, t []float64) (float64, error) {
	at, err := s.Matrix.MulVec(t)
	if err != nil {
		return 0, err
	}
	var r float64
	for i := range at {
		r = math.Max(r, math.Abs(at[i]-s.RHS[i]))
	}
	return r, nil
}

// checkSize 求解前检查维度
func (s *LinearSystem) checkSize() error {
	if s == nil || s.Matrix == nil {
		return fmt.Errorf("%w: nil system", model.ErrInvalidConfiguration)
	}
	n := s.Matrix.Size()
	if n == 0 || len(s.RHS) != n || len(s.Matrix.Lower) != n || len(s.Matrix.Upper) != n {
		return fmt.Errorf("%w: system dimension mismatch", model.ErrInvalidConfiguration)
	}
	return nil
}

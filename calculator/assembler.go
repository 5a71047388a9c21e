package calculator

import (
	"fvm1d/mesh"
)

// 方程离散和整体组装
// 稳态无源导热 d/dx(k dT/dx) = 0 在每个控制体上积分
// 界面导热量取相邻单元导热系数的算术平均除以 dx
// 边界面距单元中心 dx/2，因此边界面导热量为 2k/dx
//
// 内部单元、左边界单元和右边界单元分别组装，每一行只写一次

type assembler struct {
	k  []float64
	dx float64
	bc BoundaryCondition
	s  *LinearSystem
}

// Assemble 校验输入并返回新组装的线性方程组
// 截面积只参与校验，不进入系数
func Assemble(m *mesh.Mesh, props CellProperties, bc BoundaryCondition) (*LinearSystem, error) {
	n := m.Cells()
	if err := props.Validate(n); err != nil {
		return nil, err
	}
	if err := bc.Validate(); err != nil {
		return nil, err
	}

	a := &assembler{
		k:  props.Conductivity,
		dx: m.Dx(),
		bc: bc,
		s: &LinearSystem{
			Matrix: NewTridiagonal(n),
			RHS:    make([]float64, n),
			Source: make([]float64, n),
		},
	}

	if n == 1 {
		a.assembleSingleCellRow()
		return a.s, nil
	}
	a.assembleLeftBoundaryRow()
	for i := 1; i < n-1; i++ {
		a.assembleInteriorRow(i)
	}
	a.assembleRightBoundaryRow()
	return a.s, nil
}

// faceCoupling 单元 i 与 j 之间的耦合系数
func (a *assembler) faceCoupling(i, j int) float64 {
	return -(a.k[i] + a.k[j]) / 2 / a.dx
}

// boundaryConductance 端面导热量
func (a *assembler) boundaryConductance(i int) float64 {
	return 2 * a.k[i] / a.dx
}

func (a *assembler) assembleInteriorRow(i int) {
	aW := a.faceCoupling(i-1, i)
	aE := a.faceCoupling(i, i+1)
	a.s.Matrix.Lower[i] = aW
	a.s.Matrix.Upper[i] = aE
	a.s.Matrix.Diag[i] = -(aW + aE)
	a.s.RHS[i] = 0
}

func (a *assembler) assembleLeftBoundaryRow() {
	aE := a.faceCoupling(0, 1)
	gB := a.boundaryConductance(0)
	a.s.Matrix.Upper[0] = aE
	a.s.Matrix.Diag[0] = -aE + gB
	a.s.RHS[0] = gB * a.bc.TA
	a.s.Source[0] = gB
}

func (a *assembler) assembleRightBoundaryRow() {
	last := len(a.k) - 1
	aW := a.faceCoupling(last-1, last)
	gB := a.boundaryConductance(last)
	a.s.Matrix.Lower[last] = aW
	a.s.Matrix.Diag[last] = -aW + gB
	a.s.RHS[last] = gB * a.bc.TB
	a.s.Source[last] = gB
}

// assembleSingleCellRow N = 1 时唯一单元同时有两个边界面，没有相邻单元
func (a *assembler) assembleSingleCellRow() {
	gB := a.boundaryConductance(0)
	a.s.Matrix.Diag[0] = 2 * gB
	a.s.RHS[0] = gB*a.bc.TA + gB*a.bc.TB
	a.s.Source[0] = 2 * gB
}

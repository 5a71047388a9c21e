package mesh

import (
	"math"

	"fvm1d/model"
)

// 域离散
// 棒沿长度方向均匀划分为 N 个控制单元，单元宽度 dx = L / N
// 单元中心坐标 (i + 0.5) * dx，i ∈ [0, N)
// 边界温度作用在棒的两个端面上，不在单元中心

type Mesh struct {
	length  float64
	cells   int
	dx      float64
	centers []float64
}

// New 生成均匀网格
func New(length float64, cells int) (*Mesh, error) {
	if math.IsNaN(length) || math.IsInf(length, 0) || length <= 0 {
		return nil, model.NewFieldError("length", length, "must be a positive finite number")
	}
	if cells < 1 {
		return nil, model.NewFieldError("cells", float64(cells), "must be at least 1")
	}

	dx := length / float64(cells)
	centers := make([]float64, cells)
	for i := range centers {
		centers[i] = (float64(i) + 0.5) * dx
	}
	return &Mesh{
		length:  length,
		cells:   cells,
		dx:      dx,
		centers: centers,
	}, nil
}

func (m *Mesh) Length() float64 { return m.length }

func (m *Mesh) Cells() int { return m.cells }

// Dx 单元宽度，所有单元相同
func (m *Mesh) Dx() float64 { return m.dx }

// Centers 返回单元中心坐标的拷贝
func (m *Mesh) Centers() []float64 {
	out := make([]float64, len(m.centers))
	copy(out, m.centers)
	return out
}

// Center 第 i 个单元中心坐标
func (m *Mesh) Center(i int) float64 {
	return m.centers[i]
}

// Faces 返回 N+1 个界面坐标，首尾分别为 0 和 L
func (m *Mesh) Faces() []float64 {
	faces := make([]float64, m.cells+1)
	for i := 0; i < m.cells; i++ {
		faces[i] = float64(i) * m.dx
	}
	faces[m.cells] = m.length
	return faces
}

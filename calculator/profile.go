package calculator

import (
	"fmt"

	"fvm1d/mesh"
	"fvm1d/model"
)

// BuildProfile 拼接边界温度与单元中心温度
// 坐标 [0, 中心..., L]，温度 [TA, T..., TB]
func BuildProfile(m *mesh.Mesh, bc BoundaryCondition, t []float64) (model.Profile, error) {
	n := m.Cells()
	if len(t) != n {
		return model.Profile{}, fmt.Errorf("build profile: %d temperatures for %d cells", len(t), n)
	}

	x := make([]float64, 0, n+2)
	x = append(x, 0)
	x = append(x, m.Centers()...)
	x = append(x, m.Length())

	temps := make([]float64, 0, n+2)
	temps = append(temps, bc.TA)
	temps = append(temps, t...)
	temps = append(temps, bc.TB)

	return model.Profile{
		Coordinates:  x,
		Temperatures: temps,
	}, nil
}

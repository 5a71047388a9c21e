package calculator

import (
	"math"

	"fvm1d/model"
)

// CellProperties 单元截面积和导热系数，与单元一一对应
type CellProperties struct {
	Area         []float64
	Conductivity []float64
}

// BoundaryCondition 两端面的固定温度
type BoundaryCondition struct {
	TA float64
	TB float64
}

// Validate 检查长度为 n 且每个值为正的有限数
func (p CellProperties) Validate(n int) error {
	if err := validatePositive("area", p.Area, n); err != nil {
		return err
	}
	return validatePositive("conductivity", p.Conductivity, n)
}

func (bc BoundaryCondition) Validate() error {
	if math.IsNaN(bc.TA) || math.IsInf(bc.TA, 0) {
		return model.NewFieldError("ta", bc.TA, "must be finite")
	}
	if math.IsNaN(bc.TB) || math.IsInf(bc.TB, 0) {
		return model.NewFieldError("tb", bc.TB, "must be finite")
	}
	return nil
}

func validatePositive(field string, values []float64, n int) error {
	if len(values) != n {
		return model.NewFieldError(field, float64(len(values)), "length must equal the cell count")
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return &model.ConfigError{Field: field, Index: i, Value: v, Reason: "must be a positive finite number"}
		}
	}
	return nil
}

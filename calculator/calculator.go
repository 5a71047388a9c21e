package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"fvm1d/material"
	"fvm1d/mesh"
	"fvm1d/model"
)

// calculator 的接口定义

type Calculator interface {
	// 计算一根导热棒的稳态温度分布
	Calculate(rod model.Rod) (*Result, error)
}

// Result 一次求解的结果
type Result struct {
	Mesh     *mesh.Mesh
	System   *LinearSystem
	Cells    []float64 // 单元中心温度
	Profile  model.Profile
	Residual float64
}

type steadyCalculator struct {
	solver Solver
}

func NewCalculator(cfg *Config) (Calculator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	solver, err := NewSolver(cfg.Solver, cfg.SingularTolerance)
	if err != nil {
		return nil, err
	}
	return NewCalculatorWithSolver(solver), nil
}

// NewCalculatorWithSolver 使用外部提供的求解器
func NewCalculatorWithSolver(solver Solver) Calculator {
	return &steadyCalculator{solver: solver}
}

// Calculate 域离散 -> 组装 -> 求解 -> 结果拼接
// 任一步失败都不返回部分结果
func (c *steadyCalculator) Calculate(rod model.Rod) (*Result, error) {
	m, err := mesh.New(rod.Length, rod.Cells)
	if err != nil {
		return nil, err
	}

	props, err := cellProperties(rod)
	if err != nil {
		return nil, err
	}
	bc := BoundaryCondition{TA: rod.TA, TB: rod.TB}

	sys, err := Assemble(m, props, bc)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"length": m.Length(),
		"cells":  m.Cells(),
		"dx":     m.Dx(),
		"ta":     bc.TA,
		"tb":     bc.TB,
	}).Debug("方程组组装完成")

	t, err := c.solver.Solve(sys)
	if err != nil {
		log.WithError(err).Error("方程求解失败")
		return nil, fmt.Errorf("solve: %w", err)
	}

	profile, err := BuildProfile(m, bc, t)
	if err != nil {
		return nil, err
	}
	residual, err := Residual(sys, t)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"cells":    m.Cells(),
		"residual": residual,
	}).Info("稳态温度场计算完成")

	return &Result{
		Mesh:     m,
		System:   sys,
		Cells:    t,
		Profile:  profile,
		Residual: residual,
	}, nil
}

// cellProperties 导热系数未给出时按材料生成
func cellProperties(rod model.Rod) (CellProperties, error) {
	k := rod.Conductivity
	if len(k) == 0 && rod.Material != "" {
		var err error
		k, err = material.Uniform(rod.Material, rod.Cells)
		if err != nil {
			return CellProperties{}, err
		}
	}
	return CellProperties{Area: rod.Area, Conductivity: k}, nil
}

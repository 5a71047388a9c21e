package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fvm1d/calculator"
	"fvm1d/model"
)

type solveOptions struct {
	caseFile     string
	length       float64
	cells        int
	area         []float64
	conductivity []float64
	material     string
	ta           float64
	tb           float64
	solver       string
	asJSON       bool
}

func newSolveCmd() *cobra.Command {
	opts := &solveOptions{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "计算一根导热棒的稳态温度分布",
		Example: `  fvm1d solve
  fvm1d solve --case rod.yaml --json
  fvm1d solve --length 0.5 --cells 5 --material copper --ta 100 --tb 500`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				printError("config", err)
				return err
			}
			if cmd.Flags().Changed("solver") {
				cfg.Solver = opts.solver
			}
			rod, err := opts.buildRod(cmd, cfg.Rod)
			if err != nil {
				printError("case", err)
				return err
			}

			c, err := calculator.NewCalculator(cfg)
			if err != nil {
				printError("solver", err)
				return err
			}
			res, err := c.Calculate(*rod)
			if err != nil {
				printError("solve", err)
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), res.Profile)
			}
			return writeTable(cmd.OutOrStdout(), res.Profile)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.caseFile, "case", "", "算例文件 (.json/.yaml/.toml)")
	f.Float64Var(&opts.length, "length", 0, "棒总长")
	f.IntVar(&opts.cells, "cells", 0, "控制单元数目")
	f.Float64SliceVar(&opts.area, "area", nil, "截面积，单个值表示均匀")
	f.Float64SliceVar(&opts.conductivity, "conductivity", nil, "导热系数，单个值表示均匀")
	f.StringVar(&opts.material, "material", "", "按材料名称设置导热系数")
	f.Float64Var(&opts.ta, "ta", 0, "左端温度")
	f.Float64Var(&opts.tb, "tb", 0, "右端温度")
	f.StringVar(&opts.solver, "solver", calculator.SolverThomas, "求解器: thomas | gauss")
	f.BoolVar(&opts.asJSON, "json", false, "以 json 输出")
	return cmd
}

func init() {
	rootCmd.AddCommand(newSolveCmd())
}

// buildRod 算例优先级：配置文件默认值 < --case 文件 < 命令行参数
func (o *solveOptions) buildRod(cmd *cobra.Command, base model.Rod) (*model.Rod, error) {
	rod := base
	if o.caseFile != "" {
		loaded, err := model.LoadRod(o.caseFile)
		if err != nil {
			return nil, err
		}
		rod = *loaded
	}

	f := cmd.Flags()
	if f.Changed("length") {
		rod.Length = o.length
	}
	if f.Changed("cells") {
		rod.Cells = o.cells
	}
	if f.Changed("ta") {
		rod.TA = o.ta
	}
	if f.Changed("tb") {
		rod.TB = o.tb
	}
	if f.Changed("material") {
		rod.Material = o.material
		rod.Conductivity = nil
	}
	if f.Changed("conductivity") {
		rod.Conductivity = expand(o.conductivity, rod.Cells)
	}
	if f.Changed("area") {
		rod.Area = expand(o.area, rod.Cells)
	}
	// 单元数改变后，均匀的物性随之展开
	if len(rod.Area) != rod.Cells && isUniform(rod.Area) {
		rod.Area = expand(rod.Area[:1], rod.Cells)
	}
	if len(rod.Conductivity) != rod.Cells && isUniform(rod.Conductivity) {
		rod.Conductivity = expand(rod.Conductivity[:1], rod.Cells)
	}
	return &rod, nil
}

func expand(values []float64, cells int) []float64 {
	if len(values) != 1 || cells < 1 {
		return values
	}
	out := make([]float64, cells)
	for i := range out {
		out[i] = values[0]
	}
	return out
}

func isUniform(values []float64) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

func writeJSON(w io.Writer, p model.Profile) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func writeTable(w io.Writer, p model.Profile) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "x\tT")
	for i := range p.Temperatures {
		fmt.Fprintf(tw, "%.6g\t%.6f\n", p.Coordinates[i], p.Temperatures[i])
	}
	return tw.Flush()
}

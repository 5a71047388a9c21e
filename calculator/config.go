package calculator

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"fvm1d/model"
)

// Config 运行配置，来自 conf/config.ini
type Config struct {
	Addr string // websocket 监听地址

	Solver            string
	SingularTolerance float64

	// 默认算例
	Rod model.Rod
}

// LoadConfig 读取 ini 配置，path 为空时全部使用默认值
func LoadConfig(path string) (*Config, error) {
	file := ini.Empty()
	if path != "" {
		var err error
		file, err = ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	cfg := loadCfg(file)
	log.WithFields(log.Fields{
		"path":   path,
		"addr":   cfg.Addr,
		"solver": cfg.Solver,
		"cells":  cfg.Rod.Cells,
	}).Debug("配置已加载")
	return cfg, nil
}

// DefaultConfig 默认配置：L=0.5，N=5，A=0.001，k=1000，TA=100，TB=500
func DefaultConfig() *Config {
	return loadCfg(ini.Empty())
}

func loadCfg(file *ini.File) *Config {
	rod := file.Section("rod")
	cells := rod.Key("Cells").MustInt(5)

	cfg := &Config{
		Addr:              file.Section("server").Key("Addr").MustString(":9000"),
		Solver:            file.Section("calculator").Key("Solver").MustString(SolverThomas),
		SingularTolerance: file.Section("calculator").Key("SingularTolerance").MustFloat64(defaultSingularTolerance),
		Rod: model.Rod{
			Length:   rod.Key("Length").MustFloat64(0.5),
			Cells:    cells,
			Material: rod.Key("Material").MustString(""),
			TA:       rod.Key("TA").MustFloat64(100),
			TB:       rod.Key("TB").MustFloat64(500),
		},
	}

	// 截面积和导热系数可以是单个值（均匀）或逗号分隔的逐单元数值
	cfg.Rod.Area = perCell(rod.Key("Area"), cells, 0.001)
	if cfg.Rod.Material == "" {
		cfg.Rod.Conductivity = perCell(rod.Key("Conductivity"), cells, 1000)
	}
	return cfg
}

func perCell(key *ini.Key, cells int, def float64) []float64 {
	values := key.Float64s(",")
	if len(values) > 1 {
		return values
	}
	v := def
	if len(values) == 1 {
		v = values[0]
	}
	if cells < 1 {
		return nil
	}
	out := make([]float64, cells)
	for i := range out {
		out[i] = v
	}
	return out
}

package material

import (
	"fmt"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"fvm1d/model"
)

// 常用导热材料，导热系数单位 W/(m·K)，取室温附近的典型值

type Material struct {
	Number       int
	Name         string
	Conductivity float64
}

var materials = map[string]Material{
	"copper":    {Number: 1, Name: "copper", Conductivity: 1000}, // 教学算例取整值
	"aluminium": {Number: 2, Name: "aluminium", Conductivity: 237},
	"brass":     {Number: 3, Name: "brass", Conductivity: 109},
	"steel":     {Number: 4, Name: "steel", Conductivity: 45},
	"stainless": {Number: 5, Name: "stainless", Conductivity: 16},
	"glass":     {Number: 6, Name: "glass", Conductivity: 1.05},
}

// Lookup 根据名称获取材料，不区分大小写
func Lookup(name string) (Material, error) {
	m, ok := materials[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Material{}, fmt.Errorf("%w: unknown material %q", model.ErrInvalidConfiguration, name)
	}
	return m, nil
}

// Uniform 生成 n 个单元的均匀导热系数
func Uniform(name string, n int) ([]float64, error) {
	m, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, model.NewFieldError("cells", float64(n), "must be at least 1")
	}
	k := make([]float64, n)
	for i := range k {
		k[i] = m.Conductivity
	}
	log.WithFields(log.Fields{
		"material":     m.Name,
		"conductivity": m.Conductivity,
		"cells":        n,
	}).Debug("使用材料导热系数")
	return k, nil
}

// Names 返回已注册的材料名称，按编号排序
func Names() []string {
	all := make([]Material, 0, len(materials))
	for _, m := range materials {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Number < all[j].Number
	})
	names := make([]string, len(all))
	for i, m := range all {
		names[i] = m.Name
	}
	return names
}

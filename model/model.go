package model

// 一维导热棒的输入与输出

// Rod 计算输入
// Conductivity 为空时使用 Material 对应的导热系数
type Rod struct {
	Length       float64   `json:"length" yaml:"length" toml:"length"`                   // 棒总长，m
	Cells        int       `json:"cells" yaml:"cells" toml:"cells"`                      // 控制单元数目
	Area         []float64 `json:"area" yaml:"area" toml:"area"`                         // 单元截面积
	Conductivity []float64 `json:"conductivity" yaml:"conductivity" toml:"conductivity"` // 单元导热系数
	Material     string    `json:"material,omitempty" yaml:"material,omitempty" toml:"material,omitempty"`
	TA           float64   `json:"ta" yaml:"ta" toml:"ta"` // 左端温度
	TB           float64   `json:"tb" yaml:"tb" toml:"tb"` // 右端温度
}

// Profile 计算结果，两个序列等长（N+2），从左边界到右边界
type Profile struct {
	Coordinates  []float64 `json:"coordinates"`
	Temperatures []float64 `json:"temperatures"`
}

// Len 返回结果点数
func (p Profile) Len() int {
	return len(p.Temperatures)
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgEnv     = "env"
	MsgEnvSet  = "envSet"
	MsgStart   = "start"
	MsgStarted = "started"
	MsgStop    = "stop"
	MsgStopped = "stopped"
	MsgError   = "error"
)

package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadRod 读取算例文件，格式由扩展名决定：.yaml/.yml、.toml，其余按 json 解析
func LoadRod(path string) (*Rod, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case %s: %w", path, err)
	}
	rod, err := ParseRod(content, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parse case %s: %w", path, err)
	}
	return rod, nil
}

// ParseRod 按扩展名解析算例内容
func ParseRod(content []byte, ext string) (*Rod, error) {
	var rod Rod
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &rod); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(content, &rod); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(content, &rod); err != nil {
			return nil, err
		}
	}
	return &rod, nil
}

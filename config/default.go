package config

import (
	_ "embed"
)

// DefaultConfigYAML 嵌入的默认配置，保证二进制开箱即用
//
//go:embed default.yaml
var DefaultConfigYAML []byte

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// 默认配置
const (
	// DefaultAddress 默认追踪的 Hyperliquid 账户地址
	DefaultAddress = "0xdae4df7207feb3b350e4284c8efe5f7dac37f637"
	// DefaultAPIBaseURL Hyperliquid 公共查询 API
	DefaultAPIBaseURL = "https://api.hyperliquid.xyz"
	// DefaultCoin 追踪的资产
	DefaultCoin = "BTC"
	// DefaultHTTPTimeoutSeconds 网络请求超时（秒）
	DefaultHTTPTimeoutSeconds = 30
)

// Config 应用配置
type Config struct {
	Address            string // 追踪的账户地址（0x 开头的十六进制）
	APIBaseURL         string // info API 地址
	Coin               string // 追踪的资产
	HTTPTimeoutSeconds int    // 网络请求超时（秒）
	LogLevel           string // 日志级别
	LogFile            string // 日志文件路径（可选，为空则只输出到控制台）
}

// ConfigFile 配置文件结构（YAML 解析用）
type ConfigFile struct {
	Address            string `yaml:"address"`
	APIBaseURL         string `yaml:"api_base_url"`
	Coin               string `yaml:"coin"`
	HTTPTimeoutSeconds int    `yaml:"http_timeout_seconds"`
	LogLevel           string `yaml:"log_level"`
	LogFile            string `yaml:"log_file"`
}

var globalConfig *Config
var configFilePath string

// SetConfigPath 设置配置文件路径
func SetConfigPath(path string) {
	configFilePath = path
}

// GetConfigPath 获取配置文件路径
func GetConfigPath() string {
	return configFilePath
}

// Load 加载配置
func Load() (*Config, error) {
	return LoadFromFile(configFilePath)
}

// LoadFromFile 从指定文件加载配置。
// 文件不存在不是错误（全部走环境变量和默认值）。
// 优先级：环境变量 > 配置文件 > 默认值，地址可以用
// HYPERLIQUID_ADDRESS 临时覆盖，不用改文件。
func LoadFromFile(filePath string) (*Config, error) {
	if globalConfig != nil && configFilePath == filePath {
		return globalConfig, nil
	}

	var configFile *ConfigFile
	if filePath != "" {
		var err error
		configFile, err = loadConfigFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("加载配置文件失败 %s: %w", filePath, err)
		}
	}
	if configFile == nil {
		configFile = &ConfigFile{}
	}

	config := &Config{
		Address:            firstNonEmpty(os.Getenv("HYPERLIQUID_ADDRESS"), configFile.Address, DefaultAddress),
		APIBaseURL:         firstNonEmpty(os.Getenv("HYPERLIQUID_API_URL"), configFile.APIBaseURL, DefaultAPIBaseURL),
		Coin:               firstNonEmpty(os.Getenv("HYPERSCALE_COIN"), configFile.Coin, DefaultCoin),
		HTTPTimeoutSeconds: firstPositive(parseIntEnv("HYPERSCALE_HTTP_TIMEOUT", 0), configFile.HTTPTimeoutSeconds, DefaultHTTPTimeoutSeconds),
		LogLevel:           firstNonEmpty(os.Getenv("LOG_LEVEL"), configFile.LogLevel, "info"),
		LogFile:            firstNonEmpty(os.Getenv("LOG_FILE"), configFile.LogFile),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	globalConfig = config
	configFilePath = filePath
	return config, nil
}

// Get 获取全局配置（必须先 Load）
func Get() *Config {
	return globalConfig
}

// Validate 校验配置
func (c *Config) Validate() error {
	if !common.IsHexAddress(c.Address) {
		return fmt.Errorf("地址格式无效（需要 0x 开头的十六进制地址）: %s", c.Address)
	}
	if c.Coin == "" {
		return fmt.Errorf("COIN 不能为空")
	}
	if c.HTTPTimeoutSeconds <= 0 {
		return fmt.Errorf("HTTP 超时必须大于 0")
	}
	return nil
}

// HTTPTimeout 网络请求超时
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

func loadConfigFile(filePath string) (*ConfigFile, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var cf ConfigFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// firstNonEmpty 按优先级返回第一个非空值
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func parseIntEnv(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

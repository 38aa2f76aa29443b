package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFile_Defaults(t *testing.T) {
	// 指向一个不存在的文件：全部走默认值
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	require.Equal(t, DefaultAddress, cfg.Address)
	require.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	require.Equal(t, DefaultCoin, cfg.Coin)
	require.Equal(t, DefaultHTTPTimeoutSeconds, cfg.HTTPTimeoutSeconds)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
address: "0x1234567890abcdef1234567890abcdef12345678"
coin: ETH
http_timeout_seconds: 10
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "0x1234567890abcdef1234567890abcdef12345678", cfg.Address)
	require.Equal(t, "ETH", cfg.Coin)
	require.Equal(t, 10, cfg.HTTPTimeoutSeconds)
	require.Equal(t, "debug", cfg.LogLevel)
	// 文件未设置的字段回落到默认值
	require.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
}

func TestLoadFromFile_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`address: "0x1234567890abcdef1234567890abcdef12345678"`), 0644))

	// 环境变量覆盖配置文件（临时换个追踪地址不用改文件）
	t.Setenv("HYPERLIQUID_ADDRESS", "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd")
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd", cfg.Address)
}

func TestLoadFromFile_InvalidAddress(t *testing.T) {
	t.Setenv("HYPERLIQUID_ADDRESS", "not-an-address")
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "地址格式无效")
}

func TestLoadFromFile_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("address: [oops"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
}

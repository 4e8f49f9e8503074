package config

import (
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type ConfigStruct struct {
	Logging LoggingConfig
	Dump    DumpConfig
}

type LoggingConfig struct {
	Level    string
	HideKeys bool
}

type DumpConfig struct {
	// MaxItems caps how many entities the inspector prints per listing.
	// 0 means unlimited.
	MaxItems int
}

var Config *ConfigStruct

func NewConfig() {
	config := &ConfigStruct{
		Logging: LoggingConfig{
			Level:    getLogLevel(),
			HideKeys: os.Getenv("LOG_HIDE_KEYS") == "true",
		},
		Dump: DumpConfig{
			MaxItems: getMaxItems(),
		},
	}

	Config = config
}

func getLogLevel() string {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		return "info"
	}
	if _, err := log.ParseLevel(levelStr); err != nil {
		return "info"
	}
	return levelStr
}

func getMaxItems() int {
	maxStr := os.Getenv("DUMP_MAX_ITEMS")
	if maxStr == "" {
		return 0
	}
	max, err := strconv.Atoi(maxStr)
	if err != nil || max < 0 {
		return 0
	}
	return max
}

package config

import (
	"github.com/tkanos/gonfig"
	"path"
	"path/filepath"
	"runtime"
)

type Configuration struct {
	RUN_PORT string

	STORE_HOST            string
	STORE_PORT            string
	STORE_DB              int
	STORE_PASSWORD        string
	STORE_TIMEOUT_SECONDS int
	STORE_POOL_SIZE       int

	LOG_LEVEL string
}

func GetConfig() Configuration {
	configuration := Configuration{}
	_, dirname, _, _ := runtime.Caller(0)
	filePath := path.Join(filepath.Dir(dirname), "config.json")
	gonfig.GetConf(filePath, &configuration)
	return configuration
}

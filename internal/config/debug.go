package config

import "os"

func IsDebug() bool {
	return os.Getenv("NOTEBOT_DEBUG") == "1"
}

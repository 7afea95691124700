package env

import (
	"os"
)

// PodName example: k8ssta-resolution-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: k8ssta
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// ConfigPath overrides the default config file location
func ConfigPath() string {
	return os.Getenv("RESOLUTION_CONFIG")
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// CompilerConfig is the optional velac.yaml the driver reads before a
// compilation run.
type CompilerConfig struct {
	// Root is the filesystem root emitted import paths are relative to.
	Root string `yaml:"root"`
	// EnableModuleCache turns on the sqlite-backed export cache
	// (internal/cache) across compilation runs.
	EnableModuleCache bool `yaml:"enable_module_cache"`
	// CacheFile is where the module cache database lives.
	CacheFile string `yaml:"cache_file"`
	// ParallelFiles bounds how many source files the driver translates
	// concurrently; 0 means unbounded (one goroutine per file).
	ParallelFiles int `yaml:"parallel_files"`
}

// DefaultCompilerConfig mirrors what a bare `velac` invocation assumes
// with no config file present.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		Root:              ".",
		EnableModuleCache: false,
		CacheFile:         "velac-cache.sqlite",
		ParallelFiles:     0,
	}
}

// LoadCompilerConfig reads path, falling back to defaults for any
// field the file omits. A missing file is not an error; it just
// yields the defaults.
func LoadCompilerConfig(path string) (CompilerConfig, error) {
	cfg := DefaultCompilerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

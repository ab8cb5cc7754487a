// Package iofs prepares the file system locations memimport relies on:
// configuration and log directories, the config.yaml template and the
// optional .env file.
package iofs

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/swimroster/memimport/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// the file can hold a service key
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0600); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// LoadEnvFile reads KEY=VALUE pairs from path into the process
// environment. Variables that are already set are not overridden.
// A missing file is not an error; loaded reports whether it was read.
func LoadEnvFile(path string) (loaded bool, err error) {
	if _, err = os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	if err = godotenv.Load(path); err != nil {
		return false, ReadFileError(path, err)
	}
	return true, nil
}

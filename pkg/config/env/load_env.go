package env

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const PathVar = "ENV_PATH"

// LoadDotEnv loads variables from a .env file without overriding ones
// already set. ENV_PATH names the file; otherwise defaultPath is tried.
// A missing default file is not an error, a missing ENV_PATH file is.
func LoadDotEnv(defaultPath string) error {
	envPath, explicit := os.LookupEnv(PathVar)
	if !explicit || envPath == "" {
		envPath = defaultPath
		explicit = false
	}

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("Loaded .env", "path", envPath)
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Skipping .env ...", "path", envPath)
		return nil
	}
	return fmt.Errorf("load %s: %w", envPath, err)
}

// Package config loads tabcopy's host wiring configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/temirov/tabcopy/internal/utils"
)

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// ApplicationConfiguration describes where tabcopy finds the editor state.
type ApplicationConfiguration struct {
	Session   string                 `mapstructure:"session"`
	Workspace WorkspaceConfiguration `mapstructure:"workspace"`
}

// WorkspaceConfiguration lists workspace folders added to those reported by the editor.
type WorkspaceConfiguration struct {
	Roots []string `mapstructure:"roots"`
}

// LoadApplicationConfiguration loads configuration from the global file and then the local or explicit file.
// Relative paths are resolved against the directory of the file that declares them.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.ConfigFileName)
		globalConfig, loadError := loadConfigurationFromPath(globalPath, false)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfig)
	}

	localPath := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	localConfig, loadError := loadConfigurationFromPath(localPath, options.ExplicitFilePath != "")
	if loadError != nil {
		return ApplicationConfiguration{}, loadError
	}
	merged = merged.Merge(localConfig)

	if merged.Session == "" {
		merged.Session = filepath.Join(workingDirectory, utils.DefaultSessionFileName)
	}
	merged.Workspace.Roots = utils.DeduplicateStrings(merged.Workspace.Roots)

	return merged, nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) string {
	if explicitPath != "" {
		return utils.ResolvePath(workingDirectory, explicitPath)
	}
	return filepath.Join(workingDirectory, utils.LocalConfigFileName)
}

func loadConfigurationFromPath(path string, required bool) (ApplicationConfiguration, error) {
	info, statError := os.Stat(path)
	if statError != nil {
		if os.IsNotExist(statError) && !required {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", path, statError)
	}
	if info.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", path)
	}

	reader := viper.New()
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", path, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", path, decodeError)
	}

	configurationDirectory := filepath.Dir(path)
	if configuration.Session != "" && configuration.Session != utils.StandardInputPath {
		configuration.Session = utils.ResolvePath(configurationDirectory, configuration.Session)
	}
	for rootIndex, root := range configuration.Workspace.Roots {
		configuration.Workspace.Roots[rootIndex] = utils.ResolvePath(configurationDirectory, root)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
// Workspace roots accumulate; a non-empty session path replaces the current one.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.Session != "" {
		result.Session = override.Session
	}
	if len(override.Workspace.Roots) > 0 {
		combinedRoots := append(append([]string{}, result.Workspace.Roots...), override.Workspace.Roots...)
		result.Workspace.Roots = utils.DeduplicateStrings(combinedRoots)
	}
	return result
}

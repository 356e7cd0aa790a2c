package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"dojo.dev/pkg/dojo/internal/adapter"
	"dojo.dev/pkg/dojo/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "dojo"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	manifestFlagName   = "manifest"
	showOutputFlagName = "show-output"
	logFileFlagName    = "log-file"
	verboseFlagName    = "verbose"
	watchDirFlagName   = "dir"
	debounceFlagName   = "debounce"
	initialPassFlag    = "initial-pass"

	manifestKey         = "manifest"
	showOutputKey       = "verify.show_output"
	watchDirKey         = "watch.dir"
	watchDebounceKey    = "watch.debounce"
	watchInitialPassKey = "watch.initial_pass"
	toolchainBinaryKey  = "toolchain.binary"
	toolchainTimeoutKey = "toolchain.timeout"
	markerKey           = "exercises.marker"

	defaultManifest    = "exercises.yaml"
	defaultShowOutput  = false
	defaultWatchDir    = "exercises"
	defaultInitialPass = true
	defaultToolBinary  = "go"

	envPrefix = "DOJO"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".dojo.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

const (
	defaultDebounce         = domain.DefaultDebounce
	defaultToolchainTimeout = adapter.DefaultToolTimeout
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	configReadErr = loadConfigFile()
}

// configReadErr is set when dojo.yaml exists but cannot be used. It is
// reported once logging is configured.
var configReadErr error

// loadConfigFile reads dojo.yaml. A missing file is not an error.
func loadConfigFile() error {
	err := viper.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read %s: %w", viper.ConfigFileUsed(), err)
}

// warnConfigReadErr tells the user their config file was ignored.
func warnConfigReadErr(cmd *cobra.Command) {
	if configReadErr == nil {
		return
	}

	slog.Warn("Ignoring configuration file", "error", configReadErr)
	cmd.PrintErrln("Warning: using defaults,", configReadErr)
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(manifestKey, defaultManifest)
	viper.SetDefault(showOutputKey, defaultShowOutput)
	viper.SetDefault(watchDirKey, defaultWatchDir)
	viper.SetDefault(watchDebounceKey, defaultDebounce.String())
	viper.SetDefault(watchInitialPassKey, defaultInitialPass)
	viper.SetDefault(toolchainBinaryKey, defaultToolBinary)
	viper.SetDefault(toolchainTimeoutKey, defaultToolchainTimeout.String())
	viper.SetDefault(markerKey, domain.DefaultMarker)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// durationSetting reads a duration key, falling back when it is unset or invalid.
func durationSetting(key string, fallback time.Duration) time.Duration {
	d := viper.GetDuration(key)
	if d <= 0 {
		slog.Warn("Invalid duration in configuration, using default", "key", key, "value", viper.GetString(key), "default", fallback)
		return fallback
	}

	return d
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

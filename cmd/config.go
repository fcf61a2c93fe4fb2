package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "github.com/anton-mel/macro-extract/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "macro-extract"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	dotenvFileName   = ".env"

	envPrefix = "MACRO_EXTRACT"

	modeFlagName         = "mode"
	formatFlagName       = "format"
	reportFormatFlagName = "report-format"
	ignoreFlagName       = "ignore"
	plainFlagName        = "plain"
	verboseFlagName      = "verbose"
	logFileFlagName      = "log-file"
	writeFlagName        = "write"
	checkFlagName        = "check"

	watchRootKey         = "watch.root"
	watchExtensionsKey   = "watch.extensions"
	watchIgnoreKey       = "watch.ignore"
	skeletonExtensionKey = "skeleton.extension"
	reportExtensionKey   = "report.extension"
	reportFormatKey      = "report.format"
	reportModeKey        = "report.mode"
	uiPlainKey           = "ui.plain"

	defaultWatchRoot         = "."
	defaultSkeletonExtension = "macros"
	defaultReportExtension   = "report"
	defaultReportFormat      = string(m.FormatText)
	defaultReportMode        = string(m.ModeVerify)
	defaultUIPlain           = false

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".macro-extract.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var (
	defaultWatchExtensions = []string{".rs"}
	defaultWatchIgnore     = []string{"target", ".git", "node_modules"}
)

var globalLogger *slog.Logger

func init() {
	// A missing .env file is the common case.
	_ = godotenv.Load(dotenvFileName)

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(watchRootKey, defaultWatchRoot)
	viper.SetDefault(watchExtensionsKey, defaultWatchExtensions)
	viper.SetDefault(watchIgnoreKey, defaultWatchIgnore)
	viper.SetDefault(skeletonExtensionKey, defaultSkeletonExtension)
	viper.SetDefault(reportExtensionKey, defaultReportExtension)
	viper.SetDefault(reportFormatKey, defaultReportFormat)
	viper.SetDefault(reportModeKey, defaultReportMode)
	viper.SetDefault(uiPlainKey, defaultUIPlain)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// configuredArtifacts derives artifact naming from the skeleton and report
// extensions.
func configuredArtifacts() m.Artifacts {
	return m.Artifacts{
		SkeletonExtension: viper.GetString(skeletonExtensionKey),
		ReportExtension:   viper.GetString(reportExtensionKey),
	}
}

// configuredExtensions returns the watched source extensions with a leading
// dot.
func configuredExtensions() []string {
	raw := viper.GetStringSlice(watchExtensionsKey)
	extensions := make([]string, 0, len(raw))

	for _, ext := range raw {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}

		extensions = append(extensions, ext)
	}

	return extensions
}

func parseReportFormat(value string) (m.ReportFormat, error) {
	switch format := m.ReportFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case m.FormatText, m.FormatJSON, m.FormatYAML:
		return format, nil
	case "":
		return m.FormatText, nil
	default:
		return "", fmt.Errorf("invalid report format %q (want text, json or yaml)", value)
	}
}

func parseReportMode(value string) (m.ReportMode, error) {
	switch mode := m.ReportMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case m.ModeVerify, m.ModeDump:
		return mode, nil
	case "":
		return m.ModeVerify, nil
	default:
		return "", fmt.Errorf("invalid report mode %q (want verify or dump)", value)
	}
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

package utils

const (
	// ApplicationName is the binary and configuration namespace.
	ApplicationName = "tabcopy"
	// GlobalConfigDirectoryName is the directory under the user's home holding global configuration.
	GlobalConfigDirectoryName = "." + ApplicationName
	// ConfigFileName is the name of the global configuration file.
	ConfigFileName = "config.yaml"
	// LocalConfigFileName is the name of the per-project configuration file.
	LocalConfigFileName = "." + ApplicationName + ".yaml"
	// DefaultSessionFileName is the session snapshot read when none is configured.
	DefaultSessionFileName = "." + ApplicationName + "-session.yaml"
	// StandardInputPath selects standard input wherever a file path is accepted.
	StandardInputPath = "-"

	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal command errors.
	ApplicationExecutionFailedMessage = "tabcopy failed"
)

// Package global is a collection of application-wide references and
// constants that need to be accessible in all packages in the
// application, including the procinfo build information. The package
// should depend on _no_ other packages inside of this
// module/application.
package global

const ApplicationName = "procinfo"

// UnknownValue is substituted for any identity fact that could not be
// resolved from the operating system.
const UnknownValue = "(unknown)"

const (
	EnvVarLogLevel       = "PROCINFO_LOG_LEVEL"
	EnvVarLogQuietSyslog = "PROCINFO_LOG_QUIET_SYSLOG"
	EnvVarLogFormatJSON  = "PROCINFO_LOG_FORMAT_JSON"
	EnvVarLogJSONColor   = "PROCINFO_LOG_COLOR_JSON"
	EnvVarNoColor        = "NO_COLOR"
)

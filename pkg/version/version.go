package version

// Version is set at build time with -ldflags "-X go.githedgehog.com/syslogger/pkg/version.Version=..."
var Version = "dev"

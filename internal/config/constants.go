package config

// Default locations and values
const (
	// AppDirName is the directory created under the user config directory.
	AppDirName = "lifebook"

	// DatabasesDirName is the default database directory inside CONFIG_DIR.
	DatabasesDirName = "databases"

	DefaultHost = "127.0.0.1"
	DefaultPort = 8188

	// DefaultAllowedOrigins are the desktop webview origins.
	DefaultAllowedOrigins = "tauri://localhost,http://localhost:1420"
)

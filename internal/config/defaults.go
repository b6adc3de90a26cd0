package config

const (
	defaultFriendlyName = "gorender"
	defaultLockFile     = "~/.local/share/gorender/gorender.lock"
	defaultDebugLevel   = 0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Renderer: Renderer{
			FriendlyName: defaultFriendlyName,
		},
		Paths: Paths{
			LockFile: defaultLockFile,
		},
		Logging: Logging{
			DebugLevel: defaultDebugLevel,
		},
	}
}

package cli

// CommonOptions are shared by every command that runs a session.
type CommonOptions struct {
	ConfigPath string
	EnvFile    string
	Debug      bool
	SessionID  string
	RedisAddr  string
}

// ChatOptions contains all the configuration for the chat command.
type ChatOptions struct {
	CommonOptions
	JSON     bool
	NoBanner bool
	Style    string
}

// ServeOptions contains all the configuration for the serve command.
type ServeOptions struct {
	CommonOptions
	Addr string
}

package search

type ErrorCode string

const (
	// ErrNoProviders represents a config without any provider
	ErrNoProviders ErrorCode = "NoProviders"

	// ErrProviderNotFound represents a name matching no provider or alias
	ErrProviderNotFound ErrorCode = "ProviderNotFound"

	// ErrTemplateInvalid represents a provider URL that is not a valid template
	ErrTemplateInvalid ErrorCode = "TemplateInvalid"

	// ErrLaunchFailed represents a browser process that could not be started
	ErrLaunchFailed ErrorCode = "LaunchFailed"
)

package config

type ErrorCode string

const (
	// ErrIO represents failures reading or writing the config file
	ErrIO ErrorCode = "ConfigIO"

	// ErrParse represents a config file that is not valid YAML for Config
	ErrParse ErrorCode = "ConfigParse"

	// ErrInvalid represents a config that parsed but breaks a constraint
	ErrInvalid ErrorCode = "ConfigInvalid"
)

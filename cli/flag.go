package cli

import (
	"github.com/spf13/pflag"
)

// providerFlag records whether --provider was given, so an explicit
// empty name is reported as unknown instead of selecting the default.
type providerFlag struct {
	IsSet bool
	Value string
}

// String implements pflag.Value.
func (s *providerFlag) String() string {
	return s.Value
}

func (s *providerFlag) Set(value string) error {
	s.Value = value
	s.IsSet = true
	return nil
}

func (s *providerFlag) Type() string {
	return "name"
}

var _ pflag.Value = &providerFlag{}

package session

import "fmpmcp/internal/config"

// Mode selects how a server instance is assembled for a session.
type Mode int

const (
	// ModeAll registers every known toolset at build time.
	ModeAll Mode = iota
	// ModeStatic registers only the configured toolsets.
	ModeStatic
	// ModeDynamic registers the meta toolset and lets the client enable
	// toolsets at runtime.
	ModeDynamic
)

func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	case ModeDynamic:
		return "dynamic"
	default:
		return "all"
	}
}

// ModeFor is the mode decision table: dynamic discovery wins, then an
// explicit toolset list, otherwise everything.
func ModeFor(cfg config.Config) Mode {
	if cfg.DynamicToolsets {
		return ModeDynamic
	}
	if len(cfg.Toolsets) > 0 {
		return ModeStatic
	}
	return ModeAll
}

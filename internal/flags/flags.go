// Package flags toggles optional game behaviour. Flags are read-only after initialization;
// unknown names are reported disabled.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/vimwizard/internal/log"
)

// Flag names as they appear under `flags:` in the config file.
const (
	// FlagMouseRemarks makes the wizard scold clicks on the editor.
	FlagMouseRemarks = "mouse-remarks"

	// FlagVictoryRemarks asks the dialogue service for a fresh remark after a generated
	// level is won.
	FlagVictoryRemarks = "victory-remarks"

	// FlagResumeProgress starts at the level saved in the config instead of start_level.
	FlagResumeProgress = "resume-progress"

	// FlagSaveProgress writes the level reached and the score back to the config file.
	FlagSaveProgress = "save-progress"
)

// Defaults returns every known flag with its default value.
func Defaults() map[string]bool {
	return map[string]bool{
		FlagMouseRemarks:   true,
		FlagVictoryRemarks: true,
		FlagResumeProgress: true,
		FlagSaveProgress:   true,
	}
}

// Registry holds flag state loaded from configuration.
type Registry struct {
	flags map[string]bool
}

// New creates a Registry from Defaults overlaid with overrides. Overrides for names that are
// not known flags are kept but logged, so a typo in the config is visible in the debug log.
func New(overrides map[string]bool) *Registry {
	flags := Defaults()
	for name, value := range overrides {
		if _, known := flags[name]; !known {
			log.Warn(log.CatConfig, "Unknown feature flag in config", "flag", name)
		}
		flags[name] = value
	}
	r := &Registry{flags: flags}
	log.Debug(log.CatConfig, "Feature flags initialized", "count", len(flags), "flags", r.All())
	return r
}

// Enabled reports whether the named flag is on. It returns false for unknown flags and on a
// nil registry.
func (r *Registry) Enabled(name string) bool {
	if r == nil {
		return false
	}
	return r.flags[name]
}

// Names returns the flag names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.flags))
}

// All returns a copy of all flags. It returns an empty map on a nil registry.
func (r *Registry) All() map[string]bool {
	if r == nil {
		return make(map[string]bool)
	}
	return maps.Clone(r.flags)
}

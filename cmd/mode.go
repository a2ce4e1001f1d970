package cmd

import (
	"strconv"

	"github.com/ChainSafe/mips-stats/stats"
)

// modeSelector keeps the first statistics mode enabled on the command line.
// Flags are parsed in argument order, so later mode flags are ignored.
type modeSelector struct {
	mode stats.Mode
}

func (s *modeSelector) Mode() stats.Mode {
	return s.mode
}

// modeFlagValue is a boolean flag.Value that reports into a shared modeSelector.
type modeFlagValue struct {
	mode     stats.Mode
	selector *modeSelector
	enabled  bool
}

func (v *modeFlagValue) Set(s string) error {
	enabled, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if !enabled {
		return nil
	}
	v.enabled = true
	if v.selector.mode == stats.ModeNone {
		v.selector.mode = v.mode
	}
	return nil
}

func (v *modeFlagValue) String() string {
	if v == nil {
		return "false"
	}
	return strconv.FormatBool(v.enabled)
}

// IsBoolFlag lets the flag be given without a value, e.g. `-i`.
func (v *modeFlagValue) IsBoolFlag() bool {
	return true
}

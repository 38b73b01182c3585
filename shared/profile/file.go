package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/automoto/tablescore/shared/match"
	"gopkg.in/yaml.v3"
)

// File is the on-disk form of a profiles file.
type File struct {
	Profiles []FileProfile `yaml:"profiles"`
}

// FileProfile overrides or adds a profile. Empty fields keep the built-in
// value of the profile with the same ID.
type FileProfile struct {
	ID              string     `yaml:"id"`
	Title           string     `yaml:"title"`
	Sport           string     `yaml:"sport"`
	HomeTeam        string     `yaml:"home_team"`
	AwayTeam        string     `yaml:"away_team"`
	PeriodNoun      string     `yaml:"period_noun"`
	PossessionLabel string     `yaml:"possession_label"`
	Signal          Signal     `yaml:"signal"`
	Rules           *FileRules `yaml:"rules"`
}

// FileRules overrides match rules. Clock values are written "MM:SS".
type FileRules struct {
	DefaultTimeouts *int     `yaml:"default_timeouts"`
	MaxTimeouts     *int     `yaml:"max_timeouts"`
	MinPeriod       *int     `yaml:"min_period"`
	MaxPeriod       *int     `yaml:"max_period"`
	DefaultClock    string   `yaml:"default_clock"`
	Presets         []string `yaml:"presets"`
}

// Load reads profile overrides from path and merges them onto the built-in
// profiles. A missing file yields the built-ins when optional is true.
func Load(path string, optional bool) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return NewSet(Builtin()), nil
		}
		return nil, fmt.Errorf("reading profiles file: %w", err)
	}
	return Parse(data)
}

// Parse merges the YAML document data onto the built-in profiles.
func Parse(data []byte) (*Set, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing profiles file: %w", err)
	}

	profiles := Builtin()
	for i, fp := range f.Profiles {
		if fp.ID == "" {
			return nil, fmt.Errorf("profile %d: missing id", i)
		}

		idx := indexOf(profiles, fp.ID)
		if idx < 0 {
			base := Builtin()[0]
			base.ID = fp.ID
			profiles = append(profiles, base)
			idx = len(profiles) - 1
		}

		merged, err := merge(profiles[idx], fp)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", fp.ID, err)
		}
		profiles[idx] = merged
	}

	return NewSet(profiles), nil
}

func indexOf(profiles []Profile, id string) int {
	for i, p := range profiles {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func merge(p Profile, fp FileProfile) (Profile, error) {
	setString(&p.Title, fp.Title)
	setString(&p.Sport, fp.Sport)
	setString(&p.HomeTeam, fp.HomeTeam)
	setString(&p.AwayTeam, fp.AwayTeam)
	setString(&p.PeriodNoun, fp.PeriodNoun)
	setString(&p.PossessionLabel, fp.PossessionLabel)

	switch fp.Signal {
	case "":
	case SignalWhistle, SignalHorn:
		p.Signal = fp.Signal
	default:
		return p, fmt.Errorf("unknown signal %q", fp.Signal)
	}

	if fp.Rules != nil {
		r, err := mergeRules(p.Rules, *fp.Rules)
		if err != nil {
			return p, err
		}
		p.Rules = r
	}
	return p, nil
}

func mergeRules(r match.Rules, fr FileRules) (match.Rules, error) {
	setInt(&r.DefaultTimeouts, fr.DefaultTimeouts)
	setInt(&r.MaxTimeouts, fr.MaxTimeouts)
	setInt(&r.MinPeriod, fr.MinPeriod)
	setInt(&r.MaxPeriod, fr.MaxPeriod)

	if fr.DefaultClock != "" {
		c, err := ParseClock(fr.DefaultClock)
		if err != nil {
			return r, fmt.Errorf("default_clock: %w", err)
		}
		r.DefaultClock = c
	}

	if len(fr.Presets) > 0 {
		presets := make([]match.Countdown, 0, len(fr.Presets))
		for _, s := range fr.Presets {
			c, err := ParseClock(s)
			if err != nil {
				return r, fmt.Errorf("presets: %w", err)
			}
			presets = append(presets, c)
		}
		r.Presets = presets
	}

	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, nil
}

// ParseClock parses "MM:SS" (or bare minutes) into a stopped countdown.
func ParseClock(s string) (match.Countdown, error) {
	minStr, secStr, hasSec := strings.Cut(strings.TrimSpace(s), ":")

	minutes, err := strconv.Atoi(minStr)
	if err != nil || minutes < 0 {
		return match.Countdown{}, fmt.Errorf("invalid clock %q", s)
	}

	seconds := 0
	if hasSec {
		seconds, err = strconv.Atoi(secStr)
		if err != nil || seconds < 0 || seconds > 59 {
			return match.Countdown{}, fmt.Errorf("invalid clock %q", s)
		}
	}
	return match.NewCountdown(minutes, seconds), nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

package common

import (
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultProfileName is used when no .arithaprofile marker selects one.
const DefaultProfileName = "default"

type CommonFlags struct {
	Profile      string `flag:"profile" help:"arithaprofile name to use"`
	ProfileStore string `flag:"profile-store" help:"path to arithaprofile store file"`
	Session      string `flag:"session" help:"path to session file"`
}

type commonFlagDetection struct {
	home string
}

type CommonFlagDetectionOption func(*commonFlagDetection) *commonFlagDetection

func WithHome(home string) CommonFlagDetectionOption {
	return func(opt *commonFlagDetection) *commonFlagDetection {
		opt.home = home
		return opt
	}
}

// Flags detects default values for CommonFlags.
//
// The profile name comes from the first line of the nearest .arithaprofile
// marker, searching from the given directory upwards. Without a marker, the
// profile name is "default". Profile store and session live under ~/.aritha.
func Flags(from string, opt ...CommonFlagDetectionOption) (CommonFlags, error) {
	detparam := commonFlagDetection{
		home: "",
	}
	for _, o := range opt {
		detparam = *o(&detparam)
	}

	home := detparam.home
	if home == "" {
		_home, err := os.UserHomeDir()
		if err != nil {
			_home = ""
		}
		home = _home
	}

	if _from, err := filepath.Abs(from); err == nil {
		from = _from
	}

	profile := DefaultProfileName

	for searchpath := from; ; {
		candidate := path.Join(searchpath, ".arithaprofile")
		if s, err := os.Stat(candidate); err == nil && s.Mode().IsRegular() {
			_profile, err := os.ReadFile(candidate)
			if err != nil {
				return CommonFlags{}, err
			}
			if p := strings.Split(string(_profile), "\n"); 0 < len(p) {
				profile = strings.TrimSpace(p[0])
			}
			break
		}

		next := path.Dir(searchpath)
		if next == searchpath {
			break
		}
		searchpath = next
	}

	return CommonFlags{
		Profile:      profile,
		ProfileStore: path.Join(home, ".aritha", "profile"),
		Session:      path.Join(home, ".aritha", "session"),
	}, nil
}

type CommonFlagOption func(*CommonFlags) *CommonFlags

func WithProfile(profile string, store string) CommonFlagOption {
	return func(opt *CommonFlags) *CommonFlags {
		opt.Profile = profile
		opt.ProfileStore = store
		return opt
	}
}

func WithSession(session string) CommonFlagOption {
	return func(opt *CommonFlags) *CommonFlags {
		opt.Session = session
		return opt
	}
}

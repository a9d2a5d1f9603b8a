package init

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/arithahq/aritha/cmd/aritha/config/profiles"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
	yaml "gopkg.in/yaml.v3"
)

const ARG_ARITHA_PROFILE_FILE = "ARITHA_PROFILE_FILE"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"initialize this directory as an aritha-managed workspace.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ARITHA_PROFILE_FILE, Required: true,
				Help: "filepath to an arithaprofile file, which you received from your admin.",
			},
		},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Register a new arithaprofile into your profile store.

"arithaprofile" is a file which points at an HR backend deployment (its API
root and, optionally, a CA certificate). "{{ .Command }}" registers the given
arithaprofile into your profile store and drops an .arithaprofile marker here,
so commands run in this directory pick the profile up automatically.

The name of the profile is given by "--profile" (default: "default").
`),
	)
}

func Task() common.ArithaTaskWithCommonFlag[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag common.CommonFlags,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		profFile := cl.Args()[ARG_ARITHA_PROFILE_FILE][0]

		profStore, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
		if errors.Is(err, profiles.ErrProfileStoreNotFound) {
			// ok.
			profStore = profiles.ProfileStore{}
		} else if err != nil {
			return err
		}

		newProf := new(profiles.Profile)
		{
			content, err := os.ReadFile(profFile)
			if err != nil {
				return err
			}
			if err := yaml.Unmarshal(content, newProf); err != nil {
				return err
			}
		}
		if err := newProf.Verify(); err != nil {
			return err
		}

		profName := commonFlag.Profile
		profStore[profName] = newProf
		if err := profStore.Save(commonFlag.ProfileStore); err != nil {
			return err
		}
		logger.Printf("profile %s is saved to %s", profName, commonFlag.ProfileStore)

		{
			f, err := os.OpenFile(".arithaprofile", os.O_RDWR|os.O_CREATE|os.O_TRUNC, os.FileMode(0600))
			if err != nil {
				return err
			}
			defer f.Close()
			if _, err := f.Write([]byte(profName + "\n")); err != nil {
				return err
			}
		}

		return nil
	}
}

package login

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/arithahq/aritha/cmd/aritha/config/profiles"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Password string `flag:"password" alias:"p" metavar:"PASSWORD" help:"password. Read from stdin when omitted."`
}

const ARG_EMAIL = "EMAIL"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Log in to the HR backend and store the session.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_EMAIL, Required: true,
				Help: "email address of your account.",
			},
		},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Authenticate against the HR backend of the current profile.

On success the bearer token and your account are stored in the session file,
and every other command sends the token automatically. Log in again when the
token expires.

Passing the password on the command line leaks it into the shell history;
prefer typing it at the prompt:

    {{ .Command }} you@example.com
`),
	)
}

func Task() common.ArithaTaskWithCommonFlag[Flag] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag common.CommonFlags,
		cl flarc.Commandline[Flag],
		params []any,
	) error {
		email := cl.Args()[ARG_EMAIL][0]

		password := cl.Flags().Password
		if password == "" {
			fmt.Fprint(cl.Stderr(), "password: ")
			scanner := bufio.NewScanner(cl.Stdin())
			if !scanner.Scan() {
				return errors.Join(flarc.ErrUsage, errors.New("no password given"))
			}
			password = strings.TrimSpace(scanner.Text())
		}
		if password == "" {
			return errors.Join(flarc.ErrUsage, errors.New("no password given"))
		}

		profStore, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
		if err != nil {
			return fmt.Errorf(
				"%w: please try `aritha init` first (profile store: %s)",
				err, commonFlag.ProfileStore,
			)
		}
		prof, ok := profStore[commonFlag.Profile]
		if !ok {
			return fmt.Errorf(
				"profile '%s' not found in the profile store (%s)",
				commonFlag.Profile, commonFlag.ProfileStore,
			)
		}

		client, err := krest.NewClient(prof)
		if err != nil {
			return err
		}

		login, err := client.Login(ctx, email, password)
		if err != nil {
			return err
		}

		sess := &session.Session{
			Token: login.Token,
			User:  login.User,
			Role:  login.User.Role,
		}
		if err := sess.Save(commonFlag.Session); err != nil {
			return err
		}

		logger.Printf("logged in as %s (role: %s)", login.User.Email, login.User.Role)
		return nil
	}
}

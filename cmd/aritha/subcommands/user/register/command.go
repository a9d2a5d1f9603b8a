package register

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/mail"

	apiusers "github.com/arithahq/aritha/api/types/users"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Password string `flag:"password" alias:"p" metavar:"PASSWORD" help:"initial password. Prompted for when not given."`
	Role     string `flag:"role" metavar:"admin|hr" help:"role of the new account."`
}

const ARG_EMAIL = "EMAIL"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Register a new console account.",
		Flag{Role: apiusers.RoleHr},
		flarc.Args{
			{
				Name: ARG_EMAIL, Required: true,
				Help: "email address of the new account.",
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Register a console account. Needs the admin role.

    {{ .Command }} someone@example.com --role hr

When --password is not given, the password is prompted for on stderr.
`),
	)
}

func Task() common.Task[Flag] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		sess *session.Session,
		client krest.Client,
		cl flarc.Commandline[Flag],
		params []any,
	) error {
		email := cl.Args()[ARG_EMAIL][0]
		if _, err := mail.ParseAddress(email); err != nil {
			return fmt.Errorf("%w: EMAIL is not a valid address", flarc.ErrUsage)
		}

		flags := cl.Flags()
		switch flags.Role {
		case apiusers.RoleAdmin, apiusers.RoleHr:
			// ok
		default:
			return fmt.Errorf(`%w: --role should be "admin" or "hr"`, flarc.ErrUsage)
		}

		password := flags.Password
		if password == "" {
			fmt.Fprint(cl.Stderr(), "password: ")
			scanner := bufio.NewScanner(cl.Stdin())
			if !scanner.Scan() {
				return fmt.Errorf("%w: password is required", flarc.ErrUsage)
			}
			password = scanner.Text()
		}
		if password == "" {
			return fmt.Errorf("%w: password is required", flarc.ErrUsage)
		}

		created, err := client.Register(ctx, email, password, flags.Role)
		if err != nil {
			return err
		}

		logger.Printf("registered %s (role: %s)", created.Email, created.Role)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(created)
	}
}

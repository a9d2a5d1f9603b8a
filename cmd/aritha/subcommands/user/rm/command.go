package rm

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Yes bool `flag:"yes" alias:"y" help:"skip the confirmation prompt."`
}

const ARG_USER_ID = "USER_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete a console account.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_USER_ID, Required: true,
				Help: "id of the account to be deleted.",
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Delete a console account. Needs the admin role.

Prefer disabling accounts ("{{ .Command }}" is irreversible):

    aritha user status USER_ID inactive
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
		id, err := strconv.Atoi(cl.Args()[ARG_USER_ID][0])
		if err != nil {
			return fmt.Errorf("%w: USER_ID should be a number", flarc.ErrUsage)
		}

		if !cl.Flags().Yes {
			fmt.Fprintf(cl.Stderr(), "delete user #%d? [y/N]: ", id)
			scanner := bufio.NewScanner(cl.Stdin())
			if !scanner.Scan() {
				return nil
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if answer != "y" && answer != "yes" {
				logger.Println("cancelled")
				return nil
			}
		}

		if err := client.DeleteUser(ctx, id); err != nil {
			return err
		}
		logger.Printf("deleted user #%d", id)
		return nil
	}
}

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

const ARG_CLIENT_ID = "CLIENT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete a Client.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_CLIENT_ID, Required: true,
				Help: "id of the client to be deleted.",
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Delete a client. Needs the admin role.

A client that still has teams or employees assigned cannot be deleted;
the backend answers a conflict. Unassign them first.
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
		id, err := strconv.Atoi(cl.Args()[ARG_CLIENT_ID][0])
		if err != nil {
			return fmt.Errorf("%w: CLIENT_ID should be a number", flarc.ErrUsage)
		}

		if !cl.Flags().Yes {
			fmt.Fprintf(cl.Stderr(), "delete client #%d? [y/N]: ", id)
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

		if err := client.DeleteClient(ctx, id); err != nil {
			return err
		}
		logger.Printf("deleted client #%d", id)
		return nil
	}
}

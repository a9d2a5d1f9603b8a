package show

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Teams     bool `flag:"teams" help:"show the client's teams instead."`
	Employees bool `flag:"employees" help:"show the client's employees instead."`
}

const ARG_CLIENT_ID = "CLIENT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a Client in detail.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_CLIENT_ID, Required: true,
				Help: "id of the client to be shown.",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Show one client as JSON: contact pairs, assigned teams and employees.
With --teams or --employees, print just that association.
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

		flags := cl.Flags()
		if flags.Teams && flags.Employees {
			return fmt.Errorf("%w: --teams and --employees are exclusive", flarc.ErrUsage)
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")

		if flags.Teams {
			teams, err := client.GetClientTeams(ctx, id)
			if err != nil {
				return err
			}
			return enc.Encode(teams)
		}
		if flags.Employees {
			employees, err := client.GetClientEmployees(ctx, id)
			if err != nil {
				return err
			}
			return enc.Encode(employees)
		}

		found, err := client.GetClient(ctx, id)
		if err != nil {
			return err
		}
		return enc.Encode(found)
	}
}

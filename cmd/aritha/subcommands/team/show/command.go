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
	Employees bool `flag:"employees" help:"show the full employee records of the roster instead."`
}

const ARG_TEAM_ID = "TEAM_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a Team in detail.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_TEAM_ID, Required: true,
				Help: "id of the team to be shown.",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Show one team as JSON: manager contact, client assignment and member
summaries. With --employees, print the full employee records of the
roster instead.
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
		id, err := strconv.Atoi(cl.Args()[ARG_TEAM_ID][0])
		if err != nil {
			return fmt.Errorf("%w: TEAM_ID should be a number", flarc.ErrUsage)
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")

		if cl.Flags().Employees {
			members, err := client.GetTeamEmployees(ctx, id)
			if err != nil {
				return err
			}
			return enc.Encode(members)
		}

		team, err := client.GetTeam(ctx, id)
		if err != nil {
			return err
		}
		return enc.Encode(team)
	}
}

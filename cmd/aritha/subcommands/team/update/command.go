package update

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/arithahq/aritha/pkg/utils"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Name         string `flag:"name" metavar:"NAME" help:"new team name."`
	Title        string `flag:"title" metavar:"TITLE" help:"new title."`
	ManagerName  string `flag:"manager" metavar:"NAME" help:"new manager name."`
	ManagerEmail string `flag:"manager-email" metavar:"EMAIL" help:"new manager email."`
	ClientId     int    `flag:"client" metavar:"CLIENT_ID" help:"new client assignment."`
}

const ARG_TEAM_ID = "TEAM_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Update a Team.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_TEAM_ID, Required: true,
				Help: "id of the team to be updated.",
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Update a team. Needs the admin role. Unspecified flags leave their fields
as they are; the roster is managed through "aritha employee update --team".
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

		current, err := client.GetTeam(ctx, id)
		if err != nil {
			return err
		}

		flags := cl.Flags()
		spec := apiteams.Spec{
			Name:     current.Name,
			Title:    current.Title,
			Manager:  current.Manager,
			ClientId: current.ClientId,
			Employees: utils.Map(
				current.Employees,
				func(e apiemployees.Summary) int { return e.Id },
			),
		}
		if flags.Name != "" {
			spec.Name = flags.Name
		}
		if flags.Title != "" {
			spec.Title = flags.Title
		}
		if flags.ManagerName != "" {
			spec.Manager.Name = flags.ManagerName
		}
		if flags.ManagerEmail != "" {
			spec.Manager.Email = flags.ManagerEmail
		}
		if flags.ClientId != 0 {
			spec.ClientId = flags.ClientId
		}

		updated, err := client.UpdateTeam(ctx, id, spec)
		if err != nil {
			return err
		}

		logger.Printf("team #%d (%s) is updated", updated.Id, updated.Name)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(updated)
	}
}

package add

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	apiteams "github.com/arithahq/aritha/api/types/teams"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Name         string   `flag:"name" metavar:"NAME" help:"team name. Required."`
	Title        string   `flag:"title" metavar:"TITLE" help:"what the team does."`
	ManagerName  string   `flag:"manager" metavar:"NAME" help:"manager name."`
	ManagerEmail string   `flag:"manager-email" metavar:"EMAIL" help:"manager email."`
	ClientId     int      `flag:"client" metavar:"CLIENT_ID" help:"client this team serves."`
	Employees    []string `flag:"member" metavar:"EMPLOYEE_ID" help:"initial member. Repeatable."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Create a new Team.",
		Flag{},
		flarc.Args{},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Create a team. Needs the admin role.

    {{ .Command }} --name Platform --manager "Jane Roe" --client 2 --member 7 --member 9

A 409 answer means a team with this name already exists.
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
		flags := cl.Flags()
		if flags.Name == "" {
			return errors.Join(flarc.ErrUsage, errors.New("--name is required"))
		}

		members := make([]int, 0, len(flags.Employees))
		for _, m := range flags.Employees {
			id, err := strconv.Atoi(m)
			if err != nil {
				return errors.Join(flarc.ErrUsage, fmt.Errorf("--member should be a number: %s", m))
			}
			members = append(members, id)
		}

		created, err := client.CreateTeam(ctx, apiteams.Spec{
			Name:  flags.Name,
			Title: flags.Title,
			Manager: apiteams.Manager{
				Name:  flags.ManagerName,
				Email: flags.ManagerEmail,
			},
			ClientId:  flags.ClientId,
			Employees: members,
		})
		if err != nil {
			return err
		}

		logger.Printf("team #%d (%s) is created", created.Id, created.Name)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(created)
	}
}

package list

import (
	"context"
	"encoding/json"
	"log"

	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct{}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List console user accounts.",
		Flag{},
		flarc.Args{},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
List all console accounts as JSON. Needs the admin role.
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
		found, err := client.ListUsers(ctx)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(found)
	}
}

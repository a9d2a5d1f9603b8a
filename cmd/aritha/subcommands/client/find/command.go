package find

import (
	"context"
	"encoding/json"
	"log"

	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Search string `flag:"search" alias:"s" metavar:"TEXT" help:"match client name or industry."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find Clients.",
		Flag{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
List clients as JSON, with their teams, employees and contact pairs.

    {{ .Command }} --search acme
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
		found, err := client.FindClients(ctx, cl.Flags().Search)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(found)
	}
}

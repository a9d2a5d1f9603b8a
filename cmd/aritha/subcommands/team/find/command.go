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
	Search string `flag:"search" alias:"s" metavar:"TEXT" help:"match team name or title."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find Teams.",
		Flag{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
List teams as JSON, with their member rosters and denormalized counts.

    {{ .Command }} --search platform
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
		found, err := client.FindTeams(ctx, cl.Flags().Search)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(found)
	}
}

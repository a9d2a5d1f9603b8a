package add

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	apiclients "github.com/arithahq/aritha/api/types/clients"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Name             string `flag:"name" metavar:"NAME" help:"client name. Required."`
	Address          string `flag:"address" metavar:"ADDRESS" help:"postal address."`
	Industry         string `flag:"industry" metavar:"INDUSTRY" help:"industry."`
	PocInternalName  string `flag:"poc-internal" metavar:"NAME" help:"internal point of contact."`
	PocInternalEmail string `flag:"poc-internal-email" metavar:"EMAIL" help:"internal point of contact email."`
	PocExternalName  string `flag:"poc-external" metavar:"NAME" help:"external point of contact."`
	PocExternalEmail string `flag:"poc-external-email" metavar:"EMAIL" help:"external point of contact email."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Create a new Client.",
		Flag{},
		flarc.Args{},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Create a client. Needs the admin role.

    {{ .Command }} --name "Acme Corp" --industry Retail --poc-internal "Jane Roe"

A 409 answer means a client with this name already exists.
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

		created, err := client.CreateClient(ctx, apiclients.Spec{
			Name:             flags.Name,
			Address:          flags.Address,
			Industry:         flags.Industry,
			PocInternalName:  flags.PocInternalName,
			PocInternalEmail: flags.PocInternalEmail,
			PocExternalName:  flags.PocExternalName,
			PocExternalEmail: flags.PocExternalEmail,
		})
		if err != nil {
			return err
		}

		logger.Printf("client #%d (%s) is created", created.Id, created.Name)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(created)
	}
}

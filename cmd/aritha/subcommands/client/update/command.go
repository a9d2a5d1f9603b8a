package update

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	apiclients "github.com/arithahq/aritha/api/types/clients"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Name             string `flag:"name" metavar:"NAME" help:"new client name."`
	Address          string `flag:"address" metavar:"ADDRESS" help:"new postal address."`
	Industry         string `flag:"industry" metavar:"INDUSTRY" help:"new industry."`
	PocInternalName  string `flag:"poc-internal" metavar:"NAME" help:"new internal point of contact."`
	PocInternalEmail string `flag:"poc-internal-email" metavar:"EMAIL" help:"new internal point of contact email."`
	PocExternalName  string `flag:"poc-external" metavar:"NAME" help:"new external point of contact."`
	PocExternalEmail string `flag:"poc-external-email" metavar:"EMAIL" help:"new external point of contact email."`
}

const ARG_CLIENT_ID = "CLIENT_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Update a Client.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_CLIENT_ID, Required: true,
				Help: "id of the client to be updated.",
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Update a client. Needs the admin role. Unspecified flags leave their
fields as they are.
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

		current, err := client.GetClient(ctx, id)
		if err != nil {
			return err
		}

		spec := apiclients.Spec{
			Name:             current.Name,
			Address:          current.Address,
			Industry:         current.Industry,
			PocInternalName:  current.PocInternalName,
			PocInternalEmail: current.PocInternalEmail,
			PocExternalName:  current.PocExternalName,
			PocExternalEmail: current.PocExternalEmail,
		}

		flags := cl.Flags()
		if flags.Name != "" {
			spec.Name = flags.Name
		}
		if flags.Address != "" {
			spec.Address = flags.Address
		}
		if flags.Industry != "" {
			spec.Industry = flags.Industry
		}
		if flags.PocInternalName != "" {
			spec.PocInternalName = flags.PocInternalName
		}
		if flags.PocInternalEmail != "" {
			spec.PocInternalEmail = flags.PocInternalEmail
		}
		if flags.PocExternalName != "" {
			spec.PocExternalName = flags.PocExternalName
		}
		if flags.PocExternalEmail != "" {
			spec.PocExternalEmail = flags.PocExternalEmail
		}

		updated, err := client.UpdateClient(ctx, id, spec)
		if err != nil {
			return err
		}

		logger.Printf("client #%d (%s) is updated", updated.Id, updated.Name)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(updated)
	}
}

package status

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

type Flag struct{}

const (
	ARG_USER_ID = "USER_ID"
	ARG_STATUS  = "STATUS"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Enable or disable a console account.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_USER_ID, Required: true,
				Help: "id of the account.",
			},
			{
				Name: ARG_STATUS, Required: true,
				Help: `"active" or "inactive".`,
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Flip an account's active flag. Needs the admin role.

    {{ .Command }} 3 inactive

A disabled account cannot log in until re-enabled.
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
		id, err := strconv.Atoi(cl.Args()[ARG_USER_ID][0])
		if err != nil {
			return fmt.Errorf("%w: USER_ID should be a number", flarc.ErrUsage)
		}

		var active bool
		switch cl.Args()[ARG_STATUS][0] {
		case "active":
			active = true
		case "inactive":
			active = false
		default:
			return fmt.Errorf(`%w: STATUS should be "active" or "inactive"`, flarc.ErrUsage)
		}

		updated, err := client.UpdateUserStatus(ctx, id, active)
		if err != nil {
			return err
		}

		state := "inactive"
		if updated.Active {
			state = "active"
		}
		logger.Printf("user #%d (%s) is now %s", updated.Id, updated.Email, state)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(updated)
	}
}

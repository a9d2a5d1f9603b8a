package role

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	apiusers "github.com/arithahq/aritha/api/types/users"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct{}

const (
	ARG_USER_ID = "USER_ID"
	ARG_ROLE    = "ROLE"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Change the role of a console account.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_USER_ID, Required: true,
				Help: "id of the account.",
			},
			{
				Name: ARG_ROLE, Required: true,
				Help: `"admin" or "hr".`,
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Change an account's role. Needs the admin role.

The change takes effect on the account's next login.
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

		newRole := cl.Args()[ARG_ROLE][0]
		switch newRole {
		case apiusers.RoleAdmin, apiusers.RoleHr:
			// ok
		default:
			return fmt.Errorf(`%w: ROLE should be "admin" or "hr"`, flarc.ErrUsage)
		}

		updated, err := client.UpdateUserRole(ctx, id, newRole)
		if err != nil {
			return err
		}

		logger.Printf("user #%d (%s) is now %s", updated.Id, updated.Email, updated.Role)

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(updated)
	}
}

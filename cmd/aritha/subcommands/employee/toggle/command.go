package toggle

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Yes bool `flag:"yes" alias:"y" help:"skip the confirmation prompt."`
}

const ARG_EMPLOYEE_ID = "EMPLOYEE_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Flip an employee between active and inactive.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_EMPLOYEE_ID, Required: true,
				Help: "id of the employee to be toggled.",
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Deactivate an active employee, or restore an inactive one. Needs the admin
role.

This is the soft-delete switch: a deactivated employee keeps its record and
history and can be toggled back at any time. The current status is shown
before the confirmation prompt; pass --yes to skip the prompt.
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
		id, err := strconv.Atoi(cl.Args()[ARG_EMPLOYEE_ID][0])
		if err != nil {
			return fmt.Errorf("%w: EMPLOYEE_ID should be a number", flarc.ErrUsage)
		}

		current, err := client.GetEmployee(ctx, id)
		if err != nil {
			return err
		}

		action := "deactivate"
		if !current.Active {
			action = "restore"
		}

		if !cl.Flags().Yes {
			fmt.Fprintf(
				cl.Stderr(), "%s employee #%d (%s)? [y/N]: ",
				action, current.Id, current.Name(),
			)
			scanner := bufio.NewScanner(cl.Stdin())
			if !scanner.Scan() {
				return nil
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if answer != "y" && answer != "yes" {
				logger.Println("cancelled")
				return nil
			}
		}

		toggled, err := client.ToggleEmployeeStatus(ctx, id)
		if err != nil {
			return err
		}

		status := "active"
		if !toggled.Active {
			status = "inactive"
		}
		logger.Printf("employee #%d (%s) is now %s", toggled.Id, toggled.Name(), status)
		return nil
	}
}

package rm

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
	Hard bool `flag:"hard" help:"delete the record permanently instead of deactivating it."`
	Yes  bool `flag:"yes" alias:"y" help:"skip the confirmation prompt."`
}

const ARG_EMPLOYEE_ID = "EMPLOYEE_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Delete an employee.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_EMPLOYEE_ID, Required: true,
				Help: "id of the employee to be deleted.",
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Delete an employee. Needs the admin role.

By default this is a soft delete and the record can be restored with
"aritha employee toggle". With --hard the record is gone for good.
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

		flags := cl.Flags()

		if !flags.Yes {
			manner := "delete (soft)"
			if flags.Hard {
				manner = "delete PERMANENTLY"
			}
			fmt.Fprintf(cl.Stderr(), "%s employee #%d? [y/N]: ", manner, id)
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

		if err := client.DeleteEmployee(ctx, id, flags.Hard); err != nil {
			return err
		}
		logger.Printf("deleted employee #%d", id)
		return nil
	}
}

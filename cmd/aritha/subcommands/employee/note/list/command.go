package list

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

const ARG_EMPLOYEE_ID = "EMPLOYEE_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"List notes on an employee.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_EMPLOYEE_ID, Required: true,
				Help: "id of the employee whose notes are listed.",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
List the notes on an employee as JSON, newest first as the backend orders
them. Each note carries its author account.
`),
	)
}

func Task() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		sess *session.Session,
		client krest.Client,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		id, err := strconv.Atoi(cl.Args()[ARG_EMPLOYEE_ID][0])
		if err != nil {
			return fmt.Errorf("%w: EMPLOYEE_ID should be a number", flarc.ErrUsage)
		}

		notes, err := client.GetEmployeeNotes(ctx, id)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(notes)
	}
}

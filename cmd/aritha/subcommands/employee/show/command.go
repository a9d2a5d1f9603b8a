package show

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
		"Show an employee in detail.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_EMPLOYEE_ID, Required: true,
				Help: "id of the employee to be shown.",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Show one employee as JSON, with the nested team and client references and
the server-computed tenure. Tenure is owned by the backend; the console
never recomputes it.
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

		emp, err := client.GetEmployee(ctx, id)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(emp)
	}
}

package add

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	apinotes "github.com/arithahq/aritha/api/types/notes"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Content string `flag:"content" alias:"m" metavar:"TEXT" help:"note text. Required."`
	Date    string `flag:"date" metavar:"YYYY-MM-DD" help:"date the note refers to. Default: today."`
}

const ARG_EMPLOYEE_ID = "EMPLOYEE_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Add a note to an employee.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_EMPLOYEE_ID, Required: true,
				Help: "id of the employee to be annotated.",
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Attach a dated note to an employee. Needs the admin role. The logged-in
account is recorded as the author.

    {{ .Command }} 7 -m "Promoted to Senior Engineer"
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
		if flags.Content == "" {
			return errors.Join(flarc.ErrUsage, errors.New("--content is required"))
		}

		noteDate := flags.Date
		if noteDate == "" {
			noteDate = time.Now().Format("2006-01-02")
		}

		created, err := client.AddEmployeeNote(ctx, id, apinotes.Spec{
			Content:  flags.Content,
			NoteDate: noteDate,
		})
		if err != nil {
			return err
		}

		logger.Printf("note #%d is added to employee #%d", created.Id, id)
		return nil
	}
}

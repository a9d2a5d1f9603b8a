package export

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"

	pb "github.com/cheggaaa/pb/v3"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Output   string `flag:"output" alias:"o" metavar:"FILE" help:"write CSV here instead of stdout."`
	Search   string `flag:"search" metavar:"TEXT" help:"export only matching employees."`
	Status   string `flag:"status" metavar:"active|inactive" help:"export only this status."`
	PageSize int    `flag:"page-size" metavar:"N" help:"records fetched per request."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Export employees as CSV.",
		Flag{
			PageSize: 100,
		},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Export employees to CSV, paging through the whole result set.

    {{ .Command }} --status active -o employees.csv

When writing to a file a progress bar tracks the download. Writing to
stdout stays quiet so the output can be piped.
`),
	)
}

var csvHeader = []string{
	"id", "employeeCode", "firstName", "lastName", "email",
	"title", "gender", "active", "team", "client", "dateOfJoining",
}

func csvRecord(emp apiemployees.Detail) []string {
	team := ""
	if emp.Team != nil {
		team = emp.Team.Name
	}
	cli := ""
	if emp.Client != nil {
		cli = emp.Client.Name
	}
	return []string{
		strconv.Itoa(emp.Id), emp.EmployeeCode, emp.FirstName, emp.LastName,
		emp.Email, emp.Title, emp.Gender, strconv.FormatBool(emp.Active),
		team, cli, emp.DateOfJoining,
	}
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
		pageSize := flags.PageSize
		if pageSize <= 0 {
			pageSize = 100
		}

		var out io.Writer = cl.Stdout()
		var bar *pb.ProgressBar
		if flags.Output != "" {
			f, err := os.Create(flags.Output)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f

			bar = pb.New(0)
			bar.SetWriter(cl.Stderr())
			bar.Start()
			defer bar.Finish()
		}

		w := csv.NewWriter(out)
		if err := w.Write(csvHeader); err != nil {
			return err
		}

		exported := 0
		for page := 1; ; page += 1 {
			found, pagination, err := client.FindEmployees(ctx, krest.EmployeeQuery{
				Search:   flags.Search,
				Status:   flags.Status,
				Page:     page,
				PageSize: pageSize,
			})
			if err != nil {
				return err
			}

			if bar != nil && pagination != nil {
				bar.SetTotal(int64(pagination.Total))
			}

			for _, emp := range found {
				if err := w.Write(csvRecord(emp)); err != nil {
					return err
				}
				exported += 1
				if bar != nil {
					bar.Increment()
				}
			}

			if pagination == nil || !pagination.HasMore || len(found) == 0 {
				break
			}
		}

		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}

		logger.Printf("exported %d employees", exported)
		return nil
	}
}

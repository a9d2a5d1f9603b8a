package find

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Search    string `flag:"search" alias:"s" metavar:"TEXT" help:"match name, email or employee code."`
	Status    string `flag:"status" metavar:"active|inactive|all" help:"filter by status."`
	Gender    string `flag:"gender" metavar:"GENDER" help:"filter by gender."`
	Title     string `flag:"title" metavar:"TITLE" help:"filter by job title."`
	TeamId    int    `flag:"team" metavar:"TEAM_ID" help:"filter by team."`
	ClientId  int    `flag:"client" metavar:"CLIENT_ID" help:"filter by client."`
	MinExp    int    `flag:"min-exp" metavar:"YEARS" help:"minimum years of experience."`
	MaxExp    int    `flag:"max-exp" metavar:"YEARS" help:"maximum years of experience."`
	SortBy    string `flag:"sort-by" metavar:"FIELD" help:"server-side sort field."`
	SortOrder string `flag:"sort-order" metavar:"asc|desc" help:"server-side sort order."`
	Page      int    `flag:"page" metavar:"N" help:"page number, starting at 1."`
	PageSize  int    `flag:"page-size" metavar:"N" help:"records per page."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find employees that satisfy all specified conditions.",
		Flag{
			Status: "all",
		},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Find employees. All filters combine with AND; filtering, sorting and
pagination happen server-side.

Finding by name or email:

    {{ .Command }} --search john

Active engineers on team 3, newest joiners first:

    {{ .Command }} --status active --title Engineer --team 3 --sort-by dateOfJoining --sort-order desc

Found employees are printed as JSON. Pagination metadata, when the backend
answers it, goes to stderr.
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

		status := ""
		switch flags.Status {
		case "active", "inactive":
			status = flags.Status
		case "all", "":
			// default value.
		default:
			return fmt.Errorf("%w: unknown --status value: %s", flarc.ErrUsage, flags.Status)
		}

		found, page, err := client.FindEmployees(ctx, krest.EmployeeQuery{
			Search:    flags.Search,
			Status:    status,
			Gender:    flags.Gender,
			Title:     flags.Title,
			TeamId:    flags.TeamId,
			ClientId:  flags.ClientId,
			MinExp:    flags.MinExp,
			MaxExp:    flags.MaxExp,
			SortBy:    flags.SortBy,
			SortOrder: flags.SortOrder,
			Page:      flags.Page,
			PageSize:  flags.PageSize,
		})
		if err != nil {
			return err
		}

		if page != nil {
			logger.Printf(
				"page %d/%d (%d employees in total)",
				page.Page, page.TotalPages, page.Total,
			)
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(found)
	}
}

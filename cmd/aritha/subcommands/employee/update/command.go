package update

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	FirstName     string `flag:"first-name" metavar:"NAME" help:"new first name."`
	LastName      string `flag:"last-name" metavar:"NAME" help:"new last name."`
	Email         string `flag:"email" metavar:"EMAIL" help:"new primary email."`
	EmployeeCode  string `flag:"code" metavar:"CODE" help:"new employee code."`
	PersonalEmail string `flag:"personal-email" metavar:"EMAIL" help:"new personal email."`
	CompanyEmail  string `flag:"company-email" metavar:"EMAIL" help:"new company email."`
	Phone         string `flag:"phone" metavar:"PHONE" help:"new phone number."`
	DateOfBirth   string `flag:"born" metavar:"YYYY-MM-DD" help:"new date of birth."`
	DateOfJoining string `flag:"joined" metavar:"YYYY-MM-DD" help:"new date of joining."`
	Title         string `flag:"title" metavar:"TITLE" help:"new job title."`
	Gender        string `flag:"gender" metavar:"GENDER" help:"new gender."`
	TeamId        int    `flag:"team" metavar:"TEAM_ID" help:"new team."`
	ClientId      int    `flag:"client" metavar:"CLIENT_ID" help:"new client."`
}

const ARG_EMPLOYEE_ID = "EMPLOYEE_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Update an employee record.",
		Flag{},
		flarc.Args{
			{
				Name: ARG_EMPLOYEE_ID, Required: true,
				Help: "id of the employee to be updated.",
			},
		},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Update an employee. Needs the admin role.

The current record is fetched first and the given flags overwrite its
fields, so unspecified fields stay as they are:

    {{ .Command }} 7 --title "Senior Engineer" --team 4

Tenure is recomputed by the backend out of the joining date and prior
experience; it cannot be set here.
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

		spec := specOf(current)
		overlay(&spec, cl.Flags())

		updated, err := client.UpdateEmployee(ctx, id, spec)
		if err != nil {
			return err
		}

		logger.Printf("employee #%d (%s) is updated", updated.Id, updated.Name())

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(updated)
	}
}

func specOf(emp apiemployees.Detail) apiemployees.Spec {
	return apiemployees.Spec{
		EmployeeCode:              emp.EmployeeCode,
		FirstName:                 emp.FirstName,
		LastName:                  emp.LastName,
		Email:                     emp.Email,
		PersonalEmail:             emp.PersonalEmail,
		CompanyEmail:              emp.CompanyEmail,
		Phone:                     emp.Phone,
		DateOfBirth:               emp.DateOfBirth,
		DateOfJoining:             emp.DateOfJoining,
		ExperienceYearsAtJoining:  emp.ExperienceYearsAtJoining,
		ExperienceMonthsAtJoining: emp.ExperienceMonthsAtJoining,
		Title:                     emp.Title,
		Gender:                    emp.Gender,
		TeamId:                    emp.TeamId,
		ClientId:                  emp.ClientId,
	}
}

func overlay(spec *apiemployees.Spec, flags Flag) {
	if flags.EmployeeCode != "" {
		spec.EmployeeCode = flags.EmployeeCode
	}
	if flags.FirstName != "" {
		spec.FirstName = flags.FirstName
	}
	if flags.LastName != "" {
		spec.LastName = flags.LastName
	}
	if flags.Email != "" {
		spec.Email = flags.Email
	}
	if flags.PersonalEmail != "" {
		spec.PersonalEmail = flags.PersonalEmail
	}
	if flags.CompanyEmail != "" {
		spec.CompanyEmail = flags.CompanyEmail
	}
	if flags.Phone != "" {
		spec.Phone = flags.Phone
	}
	if flags.DateOfBirth != "" {
		spec.DateOfBirth = flags.DateOfBirth
	}
	if flags.DateOfJoining != "" {
		spec.DateOfJoining = flags.DateOfJoining
	}
	if flags.Title != "" {
		spec.Title = flags.Title
	}
	if flags.Gender != "" {
		spec.Gender = flags.Gender
	}
	if flags.TeamId != 0 {
		spec.TeamId = flags.TeamId
	}
	if flags.ClientId != 0 {
		spec.ClientId = flags.ClientId
	}
}

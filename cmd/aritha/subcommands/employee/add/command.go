package add

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/mail"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	FirstName     string `flag:"first-name" metavar:"NAME" help:"first name. Required."`
	LastName      string `flag:"last-name" metavar:"NAME" help:"last name. Required."`
	Email         string `flag:"email" metavar:"EMAIL" help:"primary email. Required."`
	EmployeeCode  string `flag:"code" metavar:"CODE" help:"employee code."`
	PersonalEmail string `flag:"personal-email" metavar:"EMAIL" help:"personal email."`
	CompanyEmail  string `flag:"company-email" metavar:"EMAIL" help:"company email."`
	Phone         string `flag:"phone" metavar:"PHONE" help:"phone number."`
	DateOfBirth   string `flag:"born" metavar:"YYYY-MM-DD" help:"date of birth."`
	DateOfJoining string `flag:"joined" metavar:"YYYY-MM-DD" help:"date of joining."`
	ExpYears      int    `flag:"exp-years" metavar:"N" help:"years of experience at joining."`
	ExpMonths     int    `flag:"exp-months" metavar:"N" help:"months of experience at joining."`
	Title         string `flag:"title" metavar:"TITLE" help:"job title."`
	Gender        string `flag:"gender" metavar:"GENDER" help:"gender."`
	TeamId        int    `flag:"team" metavar:"TEAM_ID" help:"team to assign."`
	ClientId      int    `flag:"client" metavar:"CLIENT_ID" help:"client to assign."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Create a new employee record.",
		Flag{},
		flarc.Args{},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Create an employee. Needs the admin role.

    {{ .Command }} --first-name John --last-name Doe --email john@example.com --team 3

First name, last name and a well-formed email are checked before the
request goes out; everything else is validated by the backend, and a 409
answer means the email or employee code is already taken.
`),
	)
}

// Validate checks what the add form checked: required fields and email shape.
func Validate(flags Flag) error {
	problems := []error{}
	if flags.FirstName == "" {
		problems = append(problems, errors.New("--first-name is required"))
	}
	if flags.LastName == "" {
		problems = append(problems, errors.New("--last-name is required"))
	}
	if flags.Email == "" {
		problems = append(problems, errors.New("--email is required"))
	} else if _, err := mail.ParseAddress(flags.Email); err != nil {
		problems = append(problems, fmt.Errorf("--email is not a valid address: %s", flags.Email))
	}
	if len(problems) == 0 {
		return nil
	}
	return errors.Join(append([]error{flarc.ErrUsage}, problems...)...)
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
		if err := Validate(flags); err != nil {
			return err
		}

		created, err := client.CreateEmployee(ctx, apiemployees.Spec{
			EmployeeCode:              flags.EmployeeCode,
			FirstName:                 flags.FirstName,
			LastName:                  flags.LastName,
			Email:                     flags.Email,
			PersonalEmail:             flags.PersonalEmail,
			CompanyEmail:              flags.CompanyEmail,
			Phone:                     flags.Phone,
			DateOfBirth:               flags.DateOfBirth,
			DateOfJoining:             flags.DateOfJoining,
			ExperienceYearsAtJoining:  flags.ExpYears,
			ExperienceMonthsAtJoining: flags.ExpMonths,
			Title:                     flags.Title,
			Gender:                    flags.Gender,
			TeamId:                    flags.TeamId,
			ClientId:                  flags.ClientId,
		})
		if err != nil {
			return err
		}

		logger.Printf("employee #%d (%s) is created", created.Id, created.Name())

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(created)
	}
}

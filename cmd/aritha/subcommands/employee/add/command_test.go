package add_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krst_mock "github.com/arithahq/aritha/cmd/aritha/rest/mock"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/employee/add"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/internal/commandline"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/logger"
	"github.com/youta-t/flarc"
)

func TestValidate(t *testing.T) {

	type When struct {
		flags add.Flag
	}
	type Then struct {
		ok bool
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			err := add.Validate(when.flags)
			if then.ok {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, flarc.ErrUsage) {
				t.Errorf("expected a usage error, got %v", err)
			}
		}
	}

	t.Run("all required fields present", theory(
		When{flags: add.Flag{
			FirstName: "John", LastName: "Doe", Email: "john@example.com",
		}},
		Then{ok: true},
	))
	t.Run("missing first name", theory(
		When{flags: add.Flag{LastName: "Doe", Email: "john@example.com"}},
		Then{ok: false},
	))
	t.Run("missing last name", theory(
		When{flags: add.Flag{FirstName: "John", Email: "john@example.com"}},
		Then{ok: false},
	))
	t.Run("missing email", theory(
		When{flags: add.Flag{FirstName: "John", LastName: "Doe"}},
		Then{ok: false},
	))
	t.Run("malformed email", theory(
		When{flags: add.Flag{FirstName: "John", LastName: "Doe", Email: "not-an-email"}},
		Then{ok: false},
	))
}

func TestAddSendsTheSpec(t *testing.T) {
	client := krst_mock.New(t)
	client.Impl.CreateEmployee = func(ctx context.Context, spec apiemployees.Spec) (apiemployees.Detail, error) {
		return apiemployees.Detail{
			Id: 42, FirstName: spec.FirstName, LastName: spec.LastName,
			Email: spec.Email, Active: true,
		}, nil
	}

	stdout := new(strings.Builder)
	err := add.Task()(
		context.Background(),
		logger.Null(),
		&session.Session{Token: "fake-token", Role: "admin"},
		client,
		commandline.MockCommandline[add.Flag]{
			Fullname_: "aritha employee add",
			Stdin_:    strings.NewReader(""),
			Stdout_:   stdout,
			Stderr_:   new(strings.Builder),
			Flags_: add.Flag{
				FirstName: "Jane", LastName: "Roe", Email: "jane@example.com",
				Title: "Engineer", TeamId: 3, ClientId: 9,
				DateOfJoining: "2024-04-01", ExpYears: 2,
			},
			Args_: map[string][]string{},
		},
		[]any{},
	)
	if err != nil {
		t.Fatal(err)
	}

	if len(client.Calls.CreateEmployee) != 1 {
		t.Fatalf("expected one CreateEmployee call, got %d", len(client.Calls.CreateEmployee))
	}
	sent := client.Calls.CreateEmployee[0]
	want := apiemployees.Spec{
		FirstName: "Jane", LastName: "Roe", Email: "jane@example.com",
		Title: "Engineer", TeamId: 3, ClientId: 9,
		DateOfJoining: "2024-04-01", ExperienceYearsAtJoining: 2,
	}
	if sent != want {
		t.Errorf("expected %+v, got %+v", want, sent)
	}

	if !strings.Contains(stdout.String(), `"id": 42`) {
		t.Errorf("expected the created record on stdout, got %q", stdout.String())
	}
}

func TestAddRejectsBadFlagsBeforeCalling(t *testing.T) {
	client := krst_mock.New(t)

	err := add.Task()(
		context.Background(),
		logger.Null(),
		&session.Session{Token: "fake-token", Role: "admin"},
		client,
		commandline.MockCommandline[add.Flag]{
			Stdin_:  strings.NewReader(""),
			Stdout_: new(strings.Builder),
			Stderr_: new(strings.Builder),
			Flags_:  add.Flag{FirstName: "Jane"},
			Args_:   map[string][]string{},
		},
		[]any{},
	)
	if !errors.Is(err, flarc.ErrUsage) {
		t.Errorf("expected a usage error, got %v", err)
	}
	if len(client.Calls.CreateEmployee) != 0 {
		t.Errorf("expected no CreateEmployee calls, got %d", len(client.Calls.CreateEmployee))
	}
}

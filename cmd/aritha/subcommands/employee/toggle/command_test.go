package toggle_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krst_mock "github.com/arithahq/aritha/cmd/aritha/rest/mock"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/employee/toggle"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/internal/commandline"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/logger"
)

func TestToggleConfirmation(t *testing.T) {

	type When struct {
		yes     bool
		stdin   string
		current apiemployees.Detail
	}
	type Then struct {
		toggles int
		prompt  string
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := krst_mock.New(t)
			client.Impl.GetEmployee = func(ctx context.Context, id int) (apiemployees.Detail, error) {
				return when.current, nil
			}
			client.Impl.ToggleEmployeeStatus = func(ctx context.Context, id int) (apiemployees.Detail, error) {
				toggled := when.current
				toggled.Active = !toggled.Active
				return toggled, nil
			}

			testee := toggle.Task()

			stdout := new(strings.Builder)
			stderr := new(strings.Builder)
			err := testee(
				context.Background(),
				logger.Null(),
				&session.Session{Token: "fake-token", Role: "admin"},
				client,
				commandline.MockCommandline[toggle.Flag]{
					Fullname_: "aritha employee toggle",
					Stdin_:    strings.NewReader(when.stdin),
					Stdout_:   stdout,
					Stderr_:   stderr,
					Flags_:    toggle.Flag{Yes: when.yes},
					Args_: map[string][]string{
						toggle.ARG_EMPLOYEE_ID: {"7"},
					},
				},
				[]any{},
			)
			if err != nil {
				t.Fatal(err)
			}

			if len(client.Calls.GetEmployee) != 1 || client.Calls.GetEmployee[0] != 7 {
				t.Errorf("expected one GetEmployee call for #7, got %v", client.Calls.GetEmployee)
			}
			if got := len(client.Calls.ToggleEmployeeStatus); got != then.toggles {
				t.Errorf("expected %d toggle calls, got %d", then.toggles, got)
			}
			if then.prompt != "" && !strings.Contains(stderr.String(), then.prompt) {
				t.Errorf("expected prompt containing %q, got %q", then.prompt, stderr.String())
			}
		}
	}

	active := apiemployees.Detail{
		Id: 7, FirstName: "John", LastName: "Doe", Active: true,
	}

	t.Run("with --yes, it toggles without prompting", theory(
		When{yes: true, current: active},
		Then{toggles: 1},
	))
	t.Run("when the user answers y, it toggles", theory(
		When{stdin: "y\n", current: active},
		Then{toggles: 1, prompt: "deactivate employee #7 (John Doe)?"},
	))
	t.Run("when the user answers n, it does not toggle", theory(
		When{stdin: "n\n", current: active},
		Then{toggles: 0, prompt: "deactivate employee #7 (John Doe)?"},
	))
	t.Run("when stdin closes without an answer, it does not toggle", theory(
		When{stdin: "", current: active},
		Then{toggles: 0},
	))
	t.Run("an inactive employee is offered a restore", theory(
		When{
			stdin: "y\n",
			current: apiemployees.Detail{
				Id: 7, FirstName: "John", LastName: "Doe", Active: false,
			},
		},
		Then{toggles: 1, prompt: "restore employee #7 (John Doe)?"},
	))
}

func TestToggleErrors(t *testing.T) {
	t.Run("a non-numeric id is a usage error", func(t *testing.T) {
		client := krst_mock.New(t)

		err := toggle.Task()(
			context.Background(),
			logger.Null(),
			&session.Session{Token: "fake-token", Role: "admin"},
			client,
			commandline.MockCommandline[toggle.Flag]{
				Stdin_:  strings.NewReader(""),
				Stdout_: new(strings.Builder),
				Stderr_: new(strings.Builder),
				Args_: map[string][]string{
					toggle.ARG_EMPLOYEE_ID: {"seven"},
				},
			},
			[]any{},
		)
		if err == nil {
			t.Fatal("expected an error, got nil")
		}
		if len(client.Calls.GetEmployee) != 0 {
			t.Errorf("expected no GetEmployee calls, got %v", client.Calls.GetEmployee)
		}
	})

	t.Run("a backend error is passed through", func(t *testing.T) {
		wantErr := errors.New("fake error")
		client := krst_mock.New(t)
		client.Impl.GetEmployee = func(ctx context.Context, id int) (apiemployees.Detail, error) {
			return apiemployees.Detail{}, wantErr
		}

		err := toggle.Task()(
			context.Background(),
			logger.Null(),
			&session.Session{Token: "fake-token", Role: "admin"},
			client,
			commandline.MockCommandline[toggle.Flag]{
				Stdin_:  strings.NewReader(""),
				Stdout_: new(strings.Builder),
				Stderr_: new(strings.Builder),
				Args_: map[string][]string{
					toggle.ARG_EMPLOYEE_ID: {"7"},
				},
			},
			[]any{},
		)
		if !errors.Is(err, wantErr) {
			t.Errorf("expected %v, got %v", wantErr, err)
		}
	})
}

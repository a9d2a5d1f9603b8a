package update_test

import (
	"context"
	"strings"
	"testing"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krst_mock "github.com/arithahq/aritha/cmd/aritha/rest/mock"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/internal/commandline"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/logger"
	team_update "github.com/arithahq/aritha/cmd/aritha/subcommands/team/update"
	"github.com/arithahq/aritha/pkg/utils/cmp"
)

func TestUpdateOverlaysOnTheCurrentTeam(t *testing.T) {

	current := apiteams.Detail{
		Id: 4, Name: "core", Title: "Core Platform",
		Manager:  apiteams.Manager{Name: "Jane Roe", Email: "jane@example.com"},
		ClientId: 9,
		Employees: []apiemployees.Summary{
			{Id: 1, FirstName: "a", Active: true},
			{Id: 2, FirstName: "b", Active: true},
		},
	}

	type When struct {
		flags team_update.Flag
	}
	type Then struct {
		spec apiteams.Spec
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := krst_mock.New(t)
			client.Impl.GetTeam = func(ctx context.Context, id int) (apiteams.Detail, error) {
				return current, nil
			}
			var sent apiteams.Spec
			client.Impl.UpdateTeam = func(ctx context.Context, id int, spec apiteams.Spec) (apiteams.Detail, error) {
				sent = spec
				return apiteams.Detail{Id: id, Name: spec.Name}, nil
			}

			err := team_update.Task()(
				context.Background(),
				logger.Null(),
				&session.Session{Token: "fake-token", Role: "admin"},
				client,
				commandline.MockCommandline[team_update.Flag]{
					Fullname_: "aritha team update",
					Stdin_:    strings.NewReader(""),
					Stdout_:   new(strings.Builder),
					Stderr_:   new(strings.Builder),
					Flags_:    when.flags,
					Args_: map[string][]string{
						team_update.ARG_TEAM_ID: {"4"},
					},
				},
				[]any{},
			)
			if err != nil {
				t.Fatal(err)
			}

			if sent.Name != then.spec.Name ||
				sent.Title != then.spec.Title ||
				sent.Manager != then.spec.Manager ||
				sent.ClientId != then.spec.ClientId {
				t.Errorf("expected %+v, got %+v", then.spec, sent)
			}
			if !cmp.SliceEq(sent.Employees, then.spec.Employees) {
				t.Errorf("expected roster %v, got %v", then.spec.Employees, sent.Employees)
			}
		}
	}

	t.Run("renaming keeps everything else, roster included", theory(
		When{flags: team_update.Flag{Name: "platform"}},
		Then{spec: apiteams.Spec{
			Name: "platform", Title: "Core Platform",
			Manager:  apiteams.Manager{Name: "Jane Roe", Email: "jane@example.com"},
			ClientId: 9, Employees: []int{1, 2},
		}},
	))
	t.Run("a new manager email keeps the manager name", theory(
		When{flags: team_update.Flag{ManagerEmail: "roe@example.com"}},
		Then{spec: apiteams.Spec{
			Name: "core", Title: "Core Platform",
			Manager:  apiteams.Manager{Name: "Jane Roe", Email: "roe@example.com"},
			ClientId: 9, Employees: []int{1, 2},
		}},
	))
	t.Run("reassigning the client keeps the roster", theory(
		When{flags: team_update.Flag{ClientId: 12}},
		Then{spec: apiteams.Spec{
			Name: "core", Title: "Core Platform",
			Manager:  apiteams.Manager{Name: "Jane Roe", Email: "jane@example.com"},
			ClientId: 12, Employees: []int{1, 2},
		}},
	))
}

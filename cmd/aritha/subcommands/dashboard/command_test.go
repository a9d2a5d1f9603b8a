package dashboard_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	apiclients "github.com/arithahq/aritha/api/types/clients"
	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/api/types/envelope"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	krst_mock "github.com/arithahq/aritha/cmd/aritha/rest/mock"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/dashboard"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/internal/commandline"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/logger"
)

func run(t *testing.T, client krest.Client, sess *session.Session, flags dashboard.Flag) string {
	t.Helper()

	stdout := new(strings.Builder)
	err := dashboard.Task()(
		context.Background(),
		logger.Null(),
		sess,
		client,
		commandline.MockCommandline[dashboard.Flag]{
			Fullname_: "aritha dashboard",
			Stdin_:    strings.NewReader(""),
			Stdout_:   stdout,
			Stderr_:   new(strings.Builder),
			Flags_:    flags,
		},
		[]any{},
	)
	if err != nil {
		t.Fatal(err)
	}
	return stdout.String()
}

func TestDashboard(t *testing.T) {
	thisMonth := time.Now().Format("2006-01") + "-03"
	lastMonth := time.Now().AddDate(0, -1, 0).Format("2006-01") + "-15"

	client := krst_mock.New(t)
	client.Impl.GetEmployeeStats = func(ctx context.Context) (apiemployees.Stats, error) {
		return apiemployees.Stats{Total: 10, Active: 8, Inactive: 2}, nil
	}
	client.Impl.FindTeams = func(ctx context.Context, search string) ([]apiteams.Detail, error) {
		return []apiteams.Detail{{Id: 1, Name: "core"}, {Id: 2, Name: "infra"}}, nil
	}
	client.Impl.FindClients = func(ctx context.Context, search string) ([]apiclients.Detail, error) {
		return []apiclients.Detail{{Id: 1, Name: "Acme Corp"}}, nil
	}
	client.Impl.FindEmployees = func(ctx context.Context, q krest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		// deactivated employees must not count as hires.
		if q.Status != "active" {
			t.Errorf("expected an active-only query, got status %q", q.Status)
		}
		return []apiemployees.Detail{
			{Id: 1, FirstName: "a", DateOfJoining: thisMonth},
			{Id: 2, FirstName: "b", DateOfJoining: thisMonth},
			{Id: 3, FirstName: "c", DateOfJoining: lastMonth},
			{Id: 4, FirstName: "d", DateOfJoining: "2001-01-01"},
			{Id: 5, FirstName: "e", DateOfJoining: "not a date"},
		}, nil, nil
	}

	out := run(
		t, client,
		&session.Session{
			Token: "fake-token", Role: "hr",
		},
		dashboard.Flag{Months: 6},
	)

	if !strings.Contains(out, "Welcome back, HR!") {
		t.Errorf("expected the HR greeting, got %q", out)
	}
	if !strings.Contains(out, "Total Employees:    10 (8 active)") {
		t.Errorf("expected employee totals, got %q", out)
	}
	if !strings.Contains(out, "Active Teams:       2") {
		t.Errorf("expected team count, got %q", out)
	}
	if !strings.Contains(out, "Total Clients:      1") {
		t.Errorf("expected client count, got %q", out)
	}

	// two hires this month, one the month before. ancient and unparsable
	// join dates fall out of the window.
	wantNow := fmt.Sprintf("%-9s %3d ##", time.Now().Format("Jan 2006"), 2)
	if !strings.Contains(out, wantNow) {
		t.Errorf("expected %q in the chart, got %q", wantNow, out)
	}
	wantPrev := fmt.Sprintf("%-9s %3d #", time.Now().AddDate(0, -1, 0).Format("Jan 2006"), 1)
	if !strings.Contains(out, wantPrev) {
		t.Errorf("expected %q in the chart, got %q", wantPrev, out)
	}
}

func TestDashboardGreetsByRole(t *testing.T) {

	type When struct {
		sess *session.Session
	}
	type Then struct {
		greeting string
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := krst_mock.New(t)
			client.Impl.GetEmployeeStats = func(ctx context.Context) (apiemployees.Stats, error) {
				return apiemployees.Stats{}, nil
			}
			client.Impl.FindTeams = func(ctx context.Context, search string) ([]apiteams.Detail, error) {
				return nil, nil
			}
			client.Impl.FindClients = func(ctx context.Context, search string) ([]apiclients.Detail, error) {
				return nil, nil
			}
			client.Impl.FindEmployees = func(ctx context.Context, q krest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
				return nil, nil, nil
			}

			out := run(t, client, when.sess, dashboard.Flag{Months: 3})
			if !strings.Contains(out, then.greeting) {
				t.Errorf("expected %q, got %q", then.greeting, out)
			}
		}
	}

	t.Run("hr is shown as HR", theory(
		When{sess: &session.Session{Token: "fake-token", Role: "hr"}},
		Then{greeting: "Welcome back, HR!"},
	))
	t.Run("other roles are capitalized", theory(
		When{sess: &session.Session{Token: "fake-token", Role: "admin"}},
		Then{greeting: "Welcome back, Admin!"},
	))
	t.Run("no session greets a guest", theory(
		When{sess: &session.Session{}},
		Then{greeting: "Welcome back, guest!"},
	))
}

func TestDashboardWidgetsDegradeIndependently(t *testing.T) {
	client := krst_mock.New(t)
	client.Impl.GetEmployeeStats = func(ctx context.Context) (apiemployees.Stats, error) {
		return apiemployees.Stats{}, errors.New("fake error")
	}
	client.Impl.FindTeams = func(ctx context.Context, search string) ([]apiteams.Detail, error) {
		return []apiteams.Detail{{Id: 1, Name: "core"}}, nil
	}
	client.Impl.FindClients = func(ctx context.Context, search string) ([]apiclients.Detail, error) {
		return nil, errors.New("fake error")
	}
	client.Impl.FindEmployees = func(ctx context.Context, q krest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		return nil, nil, errors.New("fake error")
	}

	out := run(
		t, client,
		&session.Session{Token: "fake-token", Role: "hr"},
		dashboard.Flag{Months: 6},
	)

	if !strings.Contains(out, "Total Employees:    0 (0 active)") {
		t.Errorf("expected zeroed employee totals, got %q", out)
	}
	if !strings.Contains(out, "Active Teams:       1") {
		t.Errorf("expected the surviving team count, got %q", out)
	}
	if !strings.Contains(out, "(no hires in this window)") {
		t.Errorf("expected an empty chart, got %q", out)
	}
}

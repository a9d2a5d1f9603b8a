package search_test

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	apiclients "github.com/arithahq/aritha/api/types/clients"
	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/api/types/envelope"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	"github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/rest/mock"
	"github.com/arithahq/aritha/cmd/aritha/search"
	"github.com/arithahq/aritha/pkg/utils"
	"github.com/arithahq/aritha/pkg/utils/cmp"
)

func nullLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestAggregatorMergeOrder(t *testing.T) {
	client := mock.New(t)
	client.Impl.FindEmployees = func(ctx context.Context, q rest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		if q.Page != 1 || q.PageSize != 5 {
			t.Errorf("employee lookup should ask page 1, pageSize 5: got %+v", q)
		}
		return []apiemployees.Detail{
			{Id: 1, FirstName: "John", LastName: "Barnes", Email: "jb@example.com"},
		}, nil, nil
	}
	client.Impl.FindTeams = func(ctx context.Context, s string) ([]apiteams.Detail, error) {
		return []apiteams.Detail{{Id: 4, Name: "Johnson Squad", Title: "Platform"}}, nil
	}
	client.Impl.FindClients = func(ctx context.Context, s string) ([]apiclients.Detail, error) {
		return []apiclients.Detail{{Id: 9, Name: "Johnny Ltd", Address: "1 Main St"}}, nil
	}

	testee := search.New(client, nullLogger())
	got := testee.Search(context.Background(), "add john")

	ids := utils.Map(got, func(r search.Result) string { return r.Id })
	want := []string{"employee-1", "team-4", "client-9"}
	if !cmp.SliceEq(ids, want) {
		t.Errorf("unmatch merge order:\n got: %v\nwant: %v", ids, want)
	}
}

func TestAggregatorCommandsComeFirst(t *testing.T) {
	client := mock.New(t)
	client.Impl.FindEmployees = func(ctx context.Context, q rest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		return []apiemployees.Detail{{Id: 2, FirstName: "Emp", LastName: "Loyee"}}, nil, nil
	}
	client.Impl.FindTeams = func(ctx context.Context, s string) ([]apiteams.Detail, error) {
		return nil, nil
	}
	client.Impl.FindClients = func(ctx context.Context, s string) ([]apiclients.Detail, error) {
		return nil, nil
	}

	testee := search.New(client, nullLogger())
	got := testee.Search(context.Background(), "add employee")

	if len(got) < 1 || got[0].Id != "action-add-employee" {
		t.Fatalf("the create action should come first: %+v", got)
	}
	if got[0].Path != "/employees/add" {
		t.Errorf("unmatch action path: %s", got[0].Path)
	}
	if got[len(got)-1].Id != "employee-2" {
		t.Errorf("records should follow commands: %+v", got)
	}
}

func TestAggregatorSourceFailureIsolation(t *testing.T) {
	client := mock.New(t)
	client.Impl.FindEmployees = func(ctx context.Context, q rest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		return []apiemployees.Detail{
			{Id: 7, FirstName: "John", LastName: "Doe", Email: "john@example.com"},
		}, nil, nil
	}
	client.Impl.FindTeams = func(ctx context.Context, s string) ([]apiteams.Detail, error) {
		return nil, errors.New("teams source down")
	}
	client.Impl.FindClients = func(ctx context.Context, s string) ([]apiclients.Detail, error) {
		return nil, errors.New("clients source down")
	}

	testee := search.New(client, nullLogger())
	got := testee.Search(context.Background(), "john")

	ids := utils.Map(got, func(r search.Result) string { return r.Id })
	if !cmp.SliceEq(ids, []string{"employee-7"}) {
		t.Errorf("surviving source should still answer: %v", ids)
	}
}

func TestAggregatorCapsEachSource(t *testing.T) {
	manyTeams := []apiteams.Detail{}
	for i := 1; i <= 8; i += 1 {
		manyTeams = append(manyTeams, apiteams.Detail{Id: i, Name: "Team"})
	}

	client := mock.New(t)
	client.Impl.FindEmployees = func(ctx context.Context, q rest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		return nil, nil, nil
	}
	client.Impl.FindTeams = func(ctx context.Context, s string) ([]apiteams.Detail, error) {
		return manyTeams, nil
	}
	client.Impl.FindClients = func(ctx context.Context, s string) ([]apiclients.Detail, error) {
		return nil, nil
	}

	testee := search.New(client, nullLogger())
	got := testee.Search(context.Background(), "team")

	teams := 0
	for _, r := range got {
		if r.Kind == search.KindTeam {
			teams += 1
		}
	}
	if teams != 5 {
		t.Errorf("a source should contribute at most 5 rows, got %d", teams)
	}
}

func TestAggregatorSubtitleFallbacks(t *testing.T) {
	client := mock.New(t)
	client.Impl.FindEmployees = func(ctx context.Context, q rest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		return []apiemployees.Detail{
			{Id: 1, FirstName: "A", LastName: "B", Email: "a@example.com", Title: "Engineer"},
			{Id: 2, FirstName: "C", LastName: "D", Title: "Designer"},
			{Id: 3, FirstName: "E", LastName: "F"},
		}, nil, nil
	}
	client.Impl.FindTeams = func(ctx context.Context, s string) ([]apiteams.Detail, error) {
		return []apiteams.Detail{
			{Id: 1, Name: "T1", Title: "Platform"},
			{Id: 2, Name: "T2", Count: &apiteams.Count{Employees: 3}},
			{Id: 3, Name: "T3"},
		}, nil
	}
	client.Impl.FindClients = func(ctx context.Context, s string) ([]apiclients.Detail, error) {
		return []apiclients.Detail{
			{Id: 1, Name: "C1", Address: "1 Main St"},
			{Id: 2, Name: "C2", Count: &apiteams.Count{Employees: 12}},
		}, nil
	}

	testee := search.New(client, nullLogger())
	got := testee.Search(context.Background(), "x")

	bySubtitle := map[string]string{}
	for _, r := range got {
		bySubtitle[r.Id] = r.Subtitle
	}

	for id, want := range map[string]string{
		"employee-1": "a@example.com",
		"employee-2": "Designer",
		"employee-3": "Employee",
		"team-1":     "Platform",
		"team-2":     "3 members",
		"team-3":     "0 members",
		"client-1":   "1 Main St",
		"client-2":   "12 employees",
	} {
		if got := bySubtitle[id]; got != want {
			t.Errorf("subtitle of %s: got %q, want %q", id, got, want)
		}
	}
}

func TestAggregatorEmptyQuery(t *testing.T) {
	client := mock.New(t)

	testee := search.New(client, nullLogger())
	if got := testee.Search(context.Background(), "  "); got != nil {
		t.Errorf("blank query should answer nil without touching the network: %v", got)
	}
}

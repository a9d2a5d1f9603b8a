package search_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	apiclients "github.com/arithahq/aritha/api/types/clients"
	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/api/types/envelope"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	krst_mock "github.com/arithahq/aritha/cmd/aritha/rest/mock"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/internal/commandline"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/logger"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/search"
	"github.com/youta-t/flarc"
)

func TestOneShotSearch(t *testing.T) {
	client := krst_mock.New(t)
	client.Impl.FindEmployees = func(ctx context.Context, q krest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		if q.Search != "john" {
			t.Errorf("expected search %q, got %q", "john", q.Search)
		}
		return []apiemployees.Detail{
			{Id: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com", Active: true},
		}, nil, nil
	}
	client.Impl.FindTeams = func(ctx context.Context, search string) ([]apiteams.Detail, error) {
		return []apiteams.Detail{}, nil
	}
	client.Impl.FindClients = func(ctx context.Context, search string) ([]apiclients.Detail, error) {
		return []apiclients.Detail{}, nil
	}

	stdout := new(strings.Builder)
	err := search.Task()(
		context.Background(),
		logger.Null(),
		&session.Session{Token: "fake-token", Role: "hr"},
		client,
		commandline.MockCommandline[search.Flag]{
			Fullname_: "aritha search",
			Stdin_:    strings.NewReader(""),
			Stdout_:   stdout,
			Stderr_:   new(strings.Builder),
			Args_: map[string][]string{
				search.ARG_QUERY: {"john"},
			},
		},
		[]any{},
	)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(stdout.String(), "John Doe") {
		t.Errorf("expected John Doe in the output, got %q", stdout.String())
	}
}

func TestOneShotSearchJoinsQueryWords(t *testing.T) {
	client := krst_mock.New(t)
	client.Impl.FindEmployees = func(ctx context.Context, q krest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		return nil, nil, nil
	}
	client.Impl.FindTeams = func(ctx context.Context, search string) ([]apiteams.Detail, error) {
		return nil, nil
	}
	client.Impl.FindClients = func(ctx context.Context, search string) ([]apiclients.Detail, error) {
		return nil, nil
	}

	stdout := new(strings.Builder)
	err := search.Task()(
		context.Background(),
		logger.Null(),
		&session.Session{Token: "fake-token", Role: "hr"},
		client,
		commandline.MockCommandline[search.Flag]{
			Stdin_:  strings.NewReader(""),
			Stdout_: stdout,
			Stderr_: new(strings.Builder),
			Args_: map[string][]string{
				search.ARG_QUERY: {"add", "employee"},
			},
		},
		[]any{},
	)
	if err != nil {
		t.Fatal(err)
	}

	if len(client.Calls.FindEmployees) != 1 || client.Calls.FindEmployees[0].Search != "add employee" {
		t.Errorf("expected one lookup for %q, got %v", "add employee", client.Calls.FindEmployees)
	}
	if !strings.Contains(stdout.String(), "Add New Employee") {
		t.Errorf("expected the add-employee command in the output, got %q", stdout.String())
	}
}

// syncBuffer lets the test read stdout while the debounce callback is
// still writing to it.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestInteractiveSearch(t *testing.T) {
	client := krst_mock.New(t)
	client.Impl.FindEmployees = func(ctx context.Context, q krest.EmployeeQuery) ([]apiemployees.Detail, *envelope.Pagination, error) {
		return []apiemployees.Detail{
			{Id: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com", Active: true},
		}, nil, nil
	}
	client.Impl.FindTeams = func(ctx context.Context, search string) ([]apiteams.Detail, error) {
		return nil, nil
	}
	client.Impl.FindClients = func(ctx context.Context, search string) ([]apiclients.Detail, error) {
		return nil, nil
	}

	stdin, driver := io.Pipe()
	stdout := new(syncBuffer)

	done := make(chan error, 1)
	go func() {
		done <- search.Task()(
			context.Background(),
			logger.Null(),
			&session.Session{Token: "fake-token", Role: "hr"},
			client,
			commandline.MockCommandline[search.Flag]{
				Fullname_: "aritha search",
				Stdin_:    stdin,
				Stdout_:   stdout,
				Stderr_:   new(syncBuffer),
				Flags_:    search.Flag{Interactive: true, Debounce: time.Millisecond},
				Args_: map[string][]string{
					search.ARG_QUERY: {},
				},
			},
			[]any{},
		)
	}()

	if _, err := driver.Write([]byte("john\n")); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(stdout.String(), "John Doe") {
		if time.Now().After(deadline) {
			t.Fatalf("no result rendered in time. output: %q", stdout.String())
		}
		time.Sleep(time.Millisecond)
	}

	if _, err := driver.Write([]byte("quit\n")); err != nil {
		t.Fatal(err)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal(`the loop did not end on "quit"`)
	}

	if len(client.Calls.FindEmployees) != 1 || client.Calls.FindEmployees[0].Search != "john" {
		t.Errorf("expected one debounced lookup for %q, got %v", "john", client.Calls.FindEmployees)
	}
}

func TestOneShotSearchRequiresAQuery(t *testing.T) {
	client := krst_mock.New(t)

	err := search.Task()(
		context.Background(),
		logger.Null(),
		&session.Session{Token: "fake-token", Role: "hr"},
		client,
		commandline.MockCommandline[search.Flag]{
			Stdin_:  strings.NewReader(""),
			Stdout_: new(strings.Builder),
			Stderr_: new(strings.Builder),
			Args_: map[string][]string{
				search.ARG_QUERY: {},
			},
		},
		[]any{},
	)
	if !errors.Is(err, flarc.ErrUsage) {
		t.Errorf("expected a usage error, got %v", err)
	}
	if len(client.Calls.FindEmployees) != 0 {
		t.Errorf("expected no lookups, got %v", client.Calls.FindEmployees)
	}
}

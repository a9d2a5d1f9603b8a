package search

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	apiclients "github.com/arithahq/aritha/api/types/clients"
	apiemployees "github.com/arithahq/aritha/api/types/employees"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	"github.com/arithahq/aritha/cmd/aritha/rest"
	"golang.org/x/sync/errgroup"
)

// sourceLimit caps how many rows one remote source contributes.
const sourceLimit = 5

// Aggregator fans a query out to the command table and the three record
// sources, and merges their rows in a fixed order.
type Aggregator struct {
	client rest.Client
	logger *log.Logger
}

func New(client rest.Client, logger *log.Logger) *Aggregator {
	return &Aggregator{client: client, logger: logger}
}

// Search runs one federated lookup.
//
// Command matches come first and never touch the network. The employee, team
// and client lookups run concurrently; a failing source is logged and
// contributes nothing, the others are unaffected. The merge order is fixed:
// commands, employees, teams, clients.
func (a *Aggregator) Search(ctx context.Context, raw string) []Result {
	query := strings.ToLower(strings.TrimSpace(raw))
	if query == "" {
		return nil
	}

	results := CommandResults(query)

	var foundEmployees []apiemployees.Detail
	var foundTeams []apiteams.Detail
	var foundClients []apiclients.Detail

	eg := errgroup.Group{}
	eg.Go(func() error {
		found, _, err := a.client.FindEmployees(ctx, rest.EmployeeQuery{
			Search: query, Page: 1, PageSize: sourceLimit,
		})
		if err != nil {
			a.logger.Printf("employee search failed: %s", err)
			return nil
		}
		foundEmployees = found
		return nil
	})
	eg.Go(func() error {
		found, err := a.client.FindTeams(ctx, query)
		if err != nil {
			a.logger.Printf("team search failed: %s", err)
			return nil
		}
		foundTeams = found
		return nil
	})
	eg.Go(func() error {
		found, err := a.client.FindClients(ctx, query)
		if err != nil {
			a.logger.Printf("client search failed: %s", err)
			return nil
		}
		foundClients = found
		return nil
	})
	eg.Wait()

	for _, emp := range capTo(foundEmployees, sourceLimit) {
		results = append(results, employeeResult(emp))
	}
	for _, team := range capTo(foundTeams, sourceLimit) {
		results = append(results, teamResult(team))
	}
	for _, cli := range capTo(foundClients, sourceLimit) {
		results = append(results, clientResult(cli))
	}

	return results
}

func capTo[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func employeeResult(emp apiemployees.Detail) Result {
	subtitle := emp.Email
	if subtitle == "" {
		subtitle = emp.Title
	}
	if subtitle == "" {
		subtitle = "Employee"
	}
	return Result{
		Id:       "employee-" + strconv.Itoa(emp.Id),
		Kind:     KindEmployee,
		Title:    emp.Name(),
		Subtitle: subtitle,
		Icon:     "person",
		Path:     "/employees/" + strconv.Itoa(emp.Id),
	}
}

func teamResult(team apiteams.Detail) Result {
	subtitle := team.Title
	if subtitle == "" {
		members := 0
		if team.Count != nil {
			members = team.Count.Employees
		}
		subtitle = fmt.Sprintf("%d members", members)
	}
	return Result{
		Id:       "team-" + strconv.Itoa(team.Id),
		Kind:     KindTeam,
		Title:    team.Name,
		Subtitle: subtitle,
		Icon:     "groups",
		Path:     "/teams/" + strconv.Itoa(team.Id),
	}
}

func clientResult(cli apiclients.Detail) Result {
	subtitle := cli.Address
	if subtitle == "" {
		employees := 0
		if cli.Count != nil {
			employees = cli.Count.Employees
		}
		subtitle = fmt.Sprintf("%d employees", employees)
	}
	return Result{
		Id:       "client-" + strconv.Itoa(cli.Id),
		Kind:     KindClient,
		Title:    cli.Name,
		Subtitle: subtitle,
		Icon:     "business",
		Path:     "/clients/" + strconv.Itoa(cli.Id),
	}
}

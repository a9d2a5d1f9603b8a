package search

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	apiemployees "github.com/arithahq/aritha/api/types/employees"
	"github.com/arithahq/aritha/cmd/aritha/rest"
)

// ErrUnknownPath is returned when a result path has no destination here.
var ErrUnknownPath = fmt.Errorf("unknown destination")

// Navigator takes a selected Result to its destination.
//
// Record and list paths are fetched and rendered. Add paths print which
// command to run instead, since a form cannot open inside the palette loop.
type Navigator struct {
	client rest.Client
}

func NewNavigator(client rest.Client) *Navigator {
	return &Navigator{client: client}
}

// Go dispatches a route path like "/employees/7" or "/dashboard".
func (n *Navigator) Go(ctx context.Context, w io.Writer, path string) error {
	parts := strings.Split(strings.Trim(path, "/"), "/")

	switch parts[0] {
	case "dashboard":
		return n.showDashboard(ctx, w)
	case "employees":
		return n.goEmployees(ctx, w, parts[1:])
	case "teams":
		return n.goTeams(ctx, w, parts[1:])
	case "clients":
		return n.goClients(ctx, w, parts[1:])
	}
	return fmt.Errorf("%w: %s", ErrUnknownPath, path)
}

func (n *Navigator) showDashboard(ctx context.Context, w io.Writer) error {
	stats, err := n.client.GetEmployeeStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(
		w, "Employees: %d total, %d active, %d inactive\n",
		stats.Total, stats.Active, stats.Inactive,
	)
	return nil
}

func (n *Navigator) goEmployees(ctx context.Context, w io.Writer, tail []string) error {
	if len(tail) == 0 {
		found, _, err := n.client.FindEmployees(ctx, rest.EmployeeQuery{})
		if err != nil {
			return err
		}
		for _, emp := range found {
			fmt.Fprintf(w, "%d\t%s\t%s\n", emp.Id, emp.Name(), emp.Email)
		}
		return nil
	}
	if tail[0] == "add" {
		fmt.Fprintln(w, "To create an employee, run: aritha employee add")
		return nil
	}
	id, err := strconv.Atoi(tail[0])
	if err != nil {
		return fmt.Errorf("%w: /employees/%s", ErrUnknownPath, tail[0])
	}
	emp, err := n.client.GetEmployee(ctx, id)
	if err != nil {
		return err
	}
	renderEmployee(w, emp)
	return nil
}

func (n *Navigator) goTeams(ctx context.Context, w io.Writer, tail []string) error {
	if len(tail) == 0 {
		found, err := n.client.FindTeams(ctx, "")
		if err != nil {
			return err
		}
		for _, team := range found {
			fmt.Fprintf(w, "%d\t%s\t%d members\n", team.Id, team.Name, team.Members())
		}
		return nil
	}
	if tail[0] == "add" {
		fmt.Fprintln(w, "To create a team, run: aritha team add")
		return nil
	}
	id, err := strconv.Atoi(tail[0])
	if err != nil {
		return fmt.Errorf("%w: /teams/%s", ErrUnknownPath, tail[0])
	}
	team, err := n.client.GetTeam(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Team #%d: %s\n", team.Id, team.Name)
	if team.Title != "" {
		fmt.Fprintf(w, "  Title:   %s\n", team.Title)
	}
	if team.Manager.Name != "" {
		fmt.Fprintf(w, "  Manager: %s <%s>\n", team.Manager.Name, team.Manager.Email)
	}
	fmt.Fprintf(w, "  Members: %d\n", team.Members())
	return nil
}

func (n *Navigator) goClients(ctx context.Context, w io.Writer, tail []string) error {
	if len(tail) == 0 {
		found, err := n.client.FindClients(ctx, "")
		if err != nil {
			return err
		}
		for _, cli := range found {
			fmt.Fprintf(w, "%d\t%s\t%s\n", cli.Id, cli.Name, cli.Industry)
		}
		return nil
	}
	if tail[0] == "add" {
		fmt.Fprintln(w, "To create a client, run: aritha client add")
		return nil
	}
	id, err := strconv.Atoi(tail[0])
	if err != nil {
		return fmt.Errorf("%w: /clients/%s", ErrUnknownPath, tail[0])
	}
	cli, err := n.client.GetClient(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Client #%d: %s\n", cli.Id, cli.Name)
	if cli.Industry != "" {
		fmt.Fprintf(w, "  Industry: %s\n", cli.Industry)
	}
	if cli.Address != "" {
		fmt.Fprintf(w, "  Address:  %s\n", cli.Address)
	}
	return nil
}

func renderEmployee(w io.Writer, emp apiemployees.Detail) {
	fmt.Fprintf(w, "Employee #%d: %s\n", emp.Id, emp.Name())
	if emp.Email != "" {
		fmt.Fprintf(w, "  Email:  %s\n", emp.Email)
	}
	if emp.Title != "" {
		fmt.Fprintf(w, "  Title:  %s\n", emp.Title)
	}
	if emp.Team != nil {
		fmt.Fprintf(w, "  Team:   %s\n", emp.Team.Name)
	}
	if emp.Client != nil {
		fmt.Fprintf(w, "  Client: %s\n", emp.Client.Name)
	}
	status := "active"
	if !emp.Active {
		status = "inactive"
	}
	fmt.Fprintf(w, "  Status: %s\n", status)
}

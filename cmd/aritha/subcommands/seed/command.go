package seed

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	apiclients "github.com/arithahq/aritha/api/types/clients"
	apiemployees "github.com/arithahq/aritha/api/types/employees"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/brianvoe/gofakeit"
	"github.com/youta-t/flarc"
	"golang.org/x/sync/errgroup"
)

type Flag struct {
	Employees int  `flag:"employees" metavar:"N" help:"number of employees to create."`
	Teams     int  `flag:"teams" metavar:"N" help:"number of teams to create."`
	Clients   int  `flag:"clients" metavar:"N" help:"number of clients to create."`
	Yes       bool `flag:"yes" alias:"y" help:"skip the confirmation prompt."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Populate the backend with fake records.",
		Flag{Employees: 25, Teams: 5, Clients: 3},
		flarc.Args{},
		common.NewAdminTask(Task()),
		flarc.WithDescription(`
Create fake clients, teams and employees for demos and local testing.
Needs the admin role. Never point this at a production backend.

Clients are created first, then teams assigned to them, then employees
assigned round-robin to the teams.
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
		flags := cl.Flags()
		if flags.Employees < 0 || flags.Teams < 0 || flags.Clients < 0 {
			return fmt.Errorf("%w: counts should not be negative", flarc.ErrUsage)
		}

		if !flags.Yes {
			fmt.Fprintf(
				cl.Stderr(),
				"create %d clients, %d teams and %d employees? [y/N]: ",
				flags.Clients, flags.Teams, flags.Employees,
			)
			scanner := bufio.NewScanner(cl.Stdin())
			if !scanner.Scan() {
				return nil
			}
			answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
			if answer != "y" && answer != "yes" {
				logger.Println("cancelled")
				return nil
			}
		}

		gofakeit.Seed(time.Now().UnixNano())

		clientIds, err := seedClients(ctx, client, flags.Clients)
		if err != nil {
			return err
		}
		logger.Printf("created %d clients", len(clientIds))

		teamIds, err := seedTeams(ctx, client, flags.Teams, clientIds)
		if err != nil {
			return err
		}
		logger.Printf("created %d teams", len(teamIds))

		n, err := seedEmployees(ctx, client, flags.Employees, teamIds, clientIds)
		if err != nil {
			return err
		}
		logger.Printf("created %d employees", n)

		return nil
	}
}

// pick returns ids[i % len(ids)], or 0 for an empty slice.
func pick(ids []int, i int) int {
	if len(ids) == 0 {
		return 0
	}
	return ids[i%len(ids)]
}

func seedClients(ctx context.Context, client krest.Client, n int) ([]int, error) {
	ids := make([]int, 0, n)
	mu := sync.Mutex{}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			created, err := client.CreateClient(gctx, apiclients.Spec{
				Name:             gofakeit.Company(),
				Address:          gofakeit.Address().Address,
				Industry:         gofakeit.BuzzWord(),
				PocInternalName:  gofakeit.Name(),
				PocInternalEmail: gofakeit.Email(),
				PocExternalName:  gofakeit.Name(),
				PocExternalEmail: gofakeit.Email(),
			})
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			ids = append(ids, created.Id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}

func seedTeams(ctx context.Context, client krest.Client, n int, clientIds []int) ([]int, error) {
	ids := make([]int, 0, n)
	mu := sync.Mutex{}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			created, err := client.CreateTeam(gctx, apiteams.Spec{
				Name:  gofakeit.HackerNoun() + " team",
				Title: gofakeit.JobTitle(),
				Manager: apiteams.Manager{
					Name:  gofakeit.Name(),
					Email: gofakeit.Email(),
				},
				ClientId: pick(clientIds, i),
			})
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			ids = append(ids, created.Id)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}

func seedEmployees(ctx context.Context, client krest.Client, n int, teamIds []int, clientIds []int) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			joined := time.Now().AddDate(0, 0, -gofakeit.Number(0, 5*365))
			_, err := client.CreateEmployee(gctx, apiemployees.Spec{
				FirstName:                gofakeit.FirstName(),
				LastName:                 gofakeit.LastName(),
				Email:                    gofakeit.Email(),
				Phone:                    gofakeit.Phone(),
				Title:                    gofakeit.JobTitle(),
				Gender:                   gofakeit.RandString([]string{"male", "female"}),
				DateOfJoining:            joined.Format("2006-01-02"),
				ExperienceYearsAtJoining: gofakeit.Number(0, 15),
				TeamId:                   pick(teamIds, i),
				ClientId:                 pick(clientIds, i),
			})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return n, nil
}

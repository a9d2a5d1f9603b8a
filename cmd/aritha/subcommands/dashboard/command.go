package dashboard

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	apiclients "github.com/arithahq/aritha/api/types/clients"
	apiemployees "github.com/arithahq/aritha/api/types/employees"
	apiteams "github.com/arithahq/aritha/api/types/teams"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
	"golang.org/x/sync/errgroup"
)

type Flag struct {
	Months int `flag:"months" metavar:"N" help:"chart hires over the last N months."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show headline stats and recent hires.",
		Flag{
			Months: 6,
		},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Render the overview: employee totals, team and client counts, and a bar
chart of hires per month.

All widgets are best-effort. A backend endpoint that fails leaves its
widget at zero and the rest render normally.
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
		months := cl.Flags().Months
		if months <= 0 {
			months = 6
		}

		var stats apiemployees.Stats
		var teams []apiteams.Detail
		var clients []apiclients.Detail
		var hires []apiemployees.Detail

		// every widget degrades independently.
		eg := errgroup.Group{}
		eg.Go(func() error {
			s, err := client.GetEmployeeStats(ctx)
			if err != nil {
				logger.Printf("employee stats unavailable: %s", err)
				return nil
			}
			stats = s
			return nil
		})
		eg.Go(func() error {
			found, err := client.FindTeams(ctx, "")
			if err != nil {
				logger.Printf("teams unavailable: %s", err)
				return nil
			}
			teams = found
			return nil
		})
		eg.Go(func() error {
			found, err := client.FindClients(ctx, "")
			if err != nil {
				logger.Printf("clients unavailable: %s", err)
				return nil
			}
			clients = found
			return nil
		})
		eg.Go(func() error {
			found, _, err := client.FindEmployees(ctx, krest.EmployeeQuery{
				Status: "active",
				SortBy: "dateOfJoining", SortOrder: "desc", Page: 1, PageSize: 100,
			})
			if err != nil {
				logger.Printf("recent hires unavailable: %s", err)
				return nil
			}
			hires = found
			return nil
		})
		eg.Wait()

		out := cl.Stdout()

		fmt.Fprintf(out, "Welcome back, %s!\n\n", displayRole(sess))
		fmt.Fprintf(out, "Total Employees:    %d (%d active)\n", stats.Total, stats.Active)
		fmt.Fprintf(out, "Active Teams:       %d\n", len(teams))
		fmt.Fprintf(out, "Total Clients:      %d\n", len(clients))
		fmt.Fprintf(out, "Inactive Employees: %d\n", stats.Inactive)

		fmt.Fprintf(out, "\nRecent hires (last %d months):\n", months)
		renderHires(out, bucketHires(hires, time.Now(), months))

		return nil
	}
}

func displayRole(sess *session.Session) string {
	if !sess.Active() {
		return "guest"
	}
	role := sess.Role
	if strings.EqualFold(role, "hr") {
		return "HR"
	}
	if role == "" {
		return sess.Email()
	}
	return strings.ToUpper(role[:1]) + strings.ToLower(role[1:])
}

type monthBucket struct {
	Label string
	Hires int
}

// bucketHires counts employees joined per month over the trailing window.
//
// Buckets come back oldest first, one per month, zeroes included. Join dates
// that do not parse are skipped.
func bucketHires(employees []apiemployees.Detail, now time.Time, months int) []monthBucket {
	buckets := make([]monthBucket, 0, months)
	index := map[string]int{}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	first = first.AddDate(0, -(months - 1), 0)
	for nth := 0; nth < months; nth += 1 {
		month := first.AddDate(0, nth, 0)
		key := month.Format("2006-01")
		index[key] = nth
		buckets = append(buckets, monthBucket{Label: month.Format("Jan 2006")})
	}

	for _, emp := range employees {
		joined, err := parseJoinDate(emp.DateOfJoining)
		if err != nil {
			continue
		}
		if nth, ok := index[joined.Format("2006-01")]; ok {
			buckets[nth].Hires += 1
		}
	}

	return buckets
}

func parseJoinDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func renderHires(out io.Writer, buckets []monthBucket) {
	total := 0
	for _, b := range buckets {
		total += b.Hires
	}
	if total == 0 {
		fmt.Fprintln(out, "  (no hires in this window)")
		return
	}
	for _, b := range buckets {
		fmt.Fprintf(out, "  %-9s %3d %s\n", b.Label, b.Hires, strings.Repeat("#", b.Hires))
	}
}

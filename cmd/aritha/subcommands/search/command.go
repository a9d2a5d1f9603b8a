package search

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	ksearch "github.com/arithahq/aritha/cmd/aritha/search"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Interactive bool          `flag:"interactive" alias:"i" help:"read queries from stdin, debounced, until EOF or 'quit'."`
	Debounce    time.Duration `flag:"debounce" metavar:"DURATION" help:"quiet period before an interactive query fires."`
}

const ARG_QUERY = "QUERY"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Search employees, teams, clients and commands at once.",
		Flag{
			Debounce: ksearch.DefaultQuietPeriod,
		},
		flarc.Args{
			{
				Name: ARG_QUERY, Repeatable: true,
				Help: "query words. Matched against commands and all record types.",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Run one federated lookup over commands, employees, teams and clients.

Command matches (like "add employee") come first, then up to 5 employees,
5 teams and 5 clients. The three record lookups run concurrently, and a
source that fails is skipped without failing the search.

    {{ .Command }} john
    {{ .Command }} add employee

With --interactive, queries are read line by line and evaluated after a
quiet period, like a search-as-you-type box. Entering the number of a
result opens it; an empty line clears; "quit" or EOF ends the loop.
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
		agg := ksearch.New(client, logger)

		if cl.Flags().Interactive {
			return interactiveLoop(ctx, logger, client, agg, cl)
		}

		query := strings.Join(cl.Args()[ARG_QUERY], " ")
		if strings.TrimSpace(query) == "" {
			return fmt.Errorf("%w: query is required (or pass --interactive)", flarc.ErrUsage)
		}

		results := agg.Search(ctx, query)
		ksearch.Render(cl.Stdout(), query, results)
		return nil
	}
}

func interactiveLoop(
	ctx context.Context,
	logger *log.Logger,
	client krest.Client,
	agg *ksearch.Aggregator,
	cl flarc.Commandline[Flag],
) error {
	searcher := ksearch.NewSearcher(agg)
	navigator := ksearch.NewNavigator(client)

	out := cl.Stdout()

	// one mutex guards the palette state and every write to out, so the
	// debounce callback never interleaves with the loop's own rendering.
	mu := sync.Mutex{}
	current := []ksearch.Result{}

	show := func(query string, results []ksearch.Result) {
		mu.Lock()
		defer mu.Unlock()
		current = results
		ksearch.Render(out, query, results)
		fmt.Fprint(out, "> ")
	}

	debouncer := ksearch.NewDebouncer(
		cl.Flags().Debounce,
		func(query string) {
			outcome := searcher.Search(ctx, query)
			if !searcher.Accept(outcome) {
				// a newer query already answered.
				return
			}
			show(outcome.Query, outcome.Results)
		},
		func() {
			mu.Lock()
			current = nil
			mu.Unlock()
		},
	)
	defer debouncer.Stop()

	prompt := func() {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprint(out, "> ")
	}

	mu.Lock()
	fmt.Fprintln(out, `Type to search. Enter a result number to open it, "quit" to leave.`)
	mu.Unlock()
	prompt()

	scanner := bufio.NewScanner(cl.Stdin())
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "quit", "exit":
			return nil
		case "":
			debouncer.Send("")
			prompt()
			continue
		}

		if nth, err := strconv.Atoi(line); err == nil {
			mu.Lock()
			if nth < 1 || len(current) < nth {
				fmt.Fprintf(out, "no result #%d\n> ", nth)
				mu.Unlock()
				continue
			}
			selected := current[nth-1]
			if err := navigator.Go(ctx, out, selected.Path); err != nil {
				logger.Printf("cannot open %s: %s", selected.Path, err)
			}
			mu.Unlock()

			// selection clears the palette.
			debouncer.Send("")
			prompt()
			continue
		}

		debouncer.Send(line)
	}
	return scanner.Err()
}

package passwd

import (
	"bufio"
	"context"
	"fmt"
	"log"

	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Current string `flag:"current" metavar:"PASSWORD" help:"current password. Prompted for when not given."`
	New     string `flag:"new" metavar:"PASSWORD" help:"new password. Prompted for when not given."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Change the password of the logged-in account.",
		Flag{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Change your own password. The current password must be verified.
Missing flags are prompted for on stderr.
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
		scanner := bufio.NewScanner(cl.Stdin())

		current := flags.Current
		if current == "" {
			fmt.Fprint(cl.Stderr(), "current password: ")
			if !scanner.Scan() {
				return fmt.Errorf("%w: current password is required", flarc.ErrUsage)
			}
			current = scanner.Text()
		}

		next := flags.New
		if next == "" {
			fmt.Fprint(cl.Stderr(), "new password: ")
			if !scanner.Scan() {
				return fmt.Errorf("%w: new password is required", flarc.ErrUsage)
			}
			next = scanner.Text()
		}
		if next == "" {
			return fmt.Errorf("%w: new password is required", flarc.ErrUsage)
		}

		if err := client.ChangePassword(ctx, current, next); err != nil {
			return err
		}
		logger.Println("password changed")
		return nil
	}
}

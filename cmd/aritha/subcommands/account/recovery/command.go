package recovery

import (
	"context"
	"fmt"
	"log"

	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

type Flag struct {
	Current string `flag:"current" metavar:"ANSWER" help:"the answer on file, when rotating."`
	Answer  string `flag:"answer" metavar:"ANSWER" help:"the new recovery answer. Required."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Set or rotate the account recovery answer.",
		Flag{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Set the recovery answer used to reset a forgotten password.

Setting it for the first time needs only --answer. Rotating an
existing answer needs --current too, and it must match the one
on file.
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
		if flags.Answer == "" {
			return fmt.Errorf("%w: --answer is required", flarc.ErrUsage)
		}

		if flags.Current == "" {
			if err := client.SetRecoveryAnswer(ctx, flags.Answer); err != nil {
				return err
			}
			logger.Println("recovery answer is set")
			return nil
		}

		if err := client.UpdateRecoveryAnswer(ctx, flags.Current, flags.Answer); err != nil {
			return err
		}
		logger.Println("recovery answer is rotated")
		return nil
	}
}

package logout

import (
	"context"
	"log"

	"github.com/arithahq/aritha/cmd/aritha/config/session"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Destroy the stored session.",
		struct{}{},
		flarc.Args{},
		common.NewTaskWithCommonFlag(Task()),
		flarc.WithDescription(`
Remove the session file. The bearer token only lives there, so after
"{{ .Command }}" every command runs logged out until the next "aritha login".

Logging out while already logged out is not an error.
`),
	)
}

func Task() common.ArithaTaskWithCommonFlag[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag common.CommonFlags,
		cl flarc.Commandline[struct{}],
		params []any,
	) error {
		if err := session.Clear(commonFlag.Session); err != nil {
			return err
		}
		logger.Println("logged out")
		return nil
	}
}

package account

import (
	account_passwd "github.com/arithahq/aritha/cmd/aritha/subcommands/account/passwd"
	account_recovery "github.com/arithahq/aritha/cmd/aritha/subcommands/account/recovery"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	passwd, err := account_passwd.New()
	if err != nil {
		return nil, err
	}
	recovery, err := account_recovery.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manage the logged-in account.",
		struct{}{},
		flarc.WithSubcommand("passwd", passwd),
		flarc.WithSubcommand("recovery", recovery),
	)
}

package user

import (
	user_list "github.com/arithahq/aritha/cmd/aritha/subcommands/user/list"
	user_register "github.com/arithahq/aritha/cmd/aritha/subcommands/user/register"
	user_rm "github.com/arithahq/aritha/cmd/aritha/subcommands/user/rm"
	user_role "github.com/arithahq/aritha/cmd/aritha/subcommands/user/role"
	user_status "github.com/arithahq/aritha/cmd/aritha/subcommands/user/status"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	list, err := user_list.New()
	if err != nil {
		return nil, err
	}
	register, err := user_register.New()
	if err != nil {
		return nil, err
	}
	status, err := user_status.New()
	if err != nil {
		return nil, err
	}
	role, err := user_role.New()
	if err != nil {
		return nil, err
	}
	rm, err := user_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manage console accounts.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("register", register),
		flarc.WithSubcommand("status", status),
		flarc.WithSubcommand("role", role),
		flarc.WithSubcommand("rm", rm),
	)
}

package client

import (
	client_add "github.com/arithahq/aritha/cmd/aritha/subcommands/client/add"
	client_find "github.com/arithahq/aritha/cmd/aritha/subcommands/client/find"
	client_rm "github.com/arithahq/aritha/cmd/aritha/subcommands/client/rm"
	client_show "github.com/arithahq/aritha/cmd/aritha/subcommands/client/show"
	client_update "github.com/arithahq/aritha/cmd/aritha/subcommands/client/update"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := client_find.New()
	if err != nil {
		return nil, err
	}
	show, err := client_show.New()
	if err != nil {
		return nil, err
	}
	add, err := client_add.New()
	if err != nil {
		return nil, err
	}
	update, err := client_update.New()
	if err != nil {
		return nil, err
	}
	rm, err := client_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manage Clients.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
	)
}

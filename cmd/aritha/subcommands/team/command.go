package team

import (
	team_add "github.com/arithahq/aritha/cmd/aritha/subcommands/team/add"
	team_find "github.com/arithahq/aritha/cmd/aritha/subcommands/team/find"
	team_rm "github.com/arithahq/aritha/cmd/aritha/subcommands/team/rm"
	team_show "github.com/arithahq/aritha/cmd/aritha/subcommands/team/show"
	team_update "github.com/arithahq/aritha/cmd/aritha/subcommands/team/update"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := team_find.New()
	if err != nil {
		return nil, err
	}
	show, err := team_show.New()
	if err != nil {
		return nil, err
	}
	add, err := team_add.New()
	if err != nil {
		return nil, err
	}
	update, err := team_update.New()
	if err != nil {
		return nil, err
	}
	rm, err := team_rm.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manage Teams.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
	)
}

package note

import (
	note_add "github.com/arithahq/aritha/cmd/aritha/subcommands/employee/note/add"
	note_list "github.com/arithahq/aritha/cmd/aritha/subcommands/employee/note/list"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	list, err := note_list.New()
	if err != nil {
		return nil, err
	}
	add, err := note_add.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manage notes on Employees.",
		struct{}{},
		flarc.WithSubcommand("list", list),
		flarc.WithSubcommand("add", add),
	)
}

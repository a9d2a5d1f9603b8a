package employee

import (
	employee_add "github.com/arithahq/aritha/cmd/aritha/subcommands/employee/add"
	employee_export "github.com/arithahq/aritha/cmd/aritha/subcommands/employee/export"
	employee_find "github.com/arithahq/aritha/cmd/aritha/subcommands/employee/find"
	employee_note "github.com/arithahq/aritha/cmd/aritha/subcommands/employee/note"
	employee_rm "github.com/arithahq/aritha/cmd/aritha/subcommands/employee/rm"
	employee_show "github.com/arithahq/aritha/cmd/aritha/subcommands/employee/show"
	employee_toggle "github.com/arithahq/aritha/cmd/aritha/subcommands/employee/toggle"
	employee_update "github.com/arithahq/aritha/cmd/aritha/subcommands/employee/update"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := employee_find.New()
	if err != nil {
		return nil, err
	}
	show, err := employee_show.New()
	if err != nil {
		return nil, err
	}
	add, err := employee_add.New()
	if err != nil {
		return nil, err
	}
	update, err := employee_update.New()
	if err != nil {
		return nil, err
	}
	toggle, err := employee_toggle.New()
	if err != nil {
		return nil, err
	}
	rm, err := employee_rm.New()
	if err != nil {
		return nil, err
	}
	export, err := employee_export.New()
	if err != nil {
		return nil, err
	}
	note, err := employee_note.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manage Employees.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("add", add),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("toggle", toggle),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("export", export),
		flarc.WithSubcommand("note", note),
	)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	subaccount "github.com/arithahq/aritha/cmd/aritha/subcommands/account"
	subclient "github.com/arithahq/aritha/cmd/aritha/subcommands/client"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/common"
	subdashboard "github.com/arithahq/aritha/cmd/aritha/subcommands/dashboard"
	subemployee "github.com/arithahq/aritha/cmd/aritha/subcommands/employee"
	subinit "github.com/arithahq/aritha/cmd/aritha/subcommands/init"
	"github.com/arithahq/aritha/cmd/aritha/subcommands/logger"
	sublogin "github.com/arithahq/aritha/cmd/aritha/subcommands/login"
	sublogout "github.com/arithahq/aritha/cmd/aritha/subcommands/logout"
	subsearch "github.com/arithahq/aritha/cmd/aritha/subcommands/search"
	subseed "github.com/arithahq/aritha/cmd/aritha/subcommands/seed"
	subteam "github.com/arithahq/aritha/cmd/aritha/subcommands/team"
	subuser "github.com/arithahq/aritha/cmd/aritha/subcommands/user"
	subver "github.com/arithahq/aritha/cmd/aritha/subcommands/version"
	"github.com/arithahq/aritha/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags(".")).OrFatal(logger)
	init := try.To(subinit.New()).OrFatal(logger)
	login := try.To(sublogin.New()).OrFatal(logger)
	logout := try.To(sublogout.New()).OrFatal(logger)
	search := try.To(subsearch.New()).OrFatal(logger)
	dashboard := try.To(subdashboard.New()).OrFatal(logger)
	employee := try.To(subemployee.New()).OrFatal(logger)
	team := try.To(subteam.New()).OrFatal(logger)
	client := try.To(subclient.New()).OrFatal(logger)
	user := try.To(subuser.New()).OrFatal(logger)
	account := try.To(subaccount.New()).OrFatal(logger)
	seed := try.To(subseed.New()).OrFatal(logger)
	version := try.To(subver.New()).OrFatal(logger)

	aritha := try.To(
		flarc.NewCommandGroup(
			"Aritha HR administration commandline interface",
			cf,
			flarc.WithSubcommand("init", init),
			flarc.WithSubcommand("login", login),
			flarc.WithSubcommand("logout", logout),
			flarc.WithSubcommand("search", search),
			flarc.WithSubcommand("dashboard", dashboard),
			flarc.WithSubcommand("employee", employee),
			flarc.WithSubcommand("team", team),
			flarc.WithSubcommand("client", client),
			flarc.WithSubcommand("user", user),
			flarc.WithSubcommand("account", account),
			flarc.WithSubcommand("seed", seed),
			flarc.WithSubcommand("version", version),
		),
	).OrFatal(logger)

	os.Exit(flarc.Run(ctx, aritha, flarc.WithHelp(true)))
}

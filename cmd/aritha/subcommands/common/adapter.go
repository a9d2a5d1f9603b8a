package common

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/arithahq/aritha/cmd/aritha/config/profiles"
	"github.com/arithahq/aritha/cmd/aritha/config/session"
	krest "github.com/arithahq/aritha/cmd/aritha/rest"
	"github.com/youta-t/flarc"
)

// ErrAdminOnly is returned when a read-only account invokes a mutating command.
var ErrAdminOnly = errors.New("this command needs the admin role")

type ArithaTaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTaskWithCommonFlag[T any](task ArithaTaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		newpos := make([]any, 0, len(pos))
		for _, p := range pos {
			switch v := p.(type) {
			case CommonFlags:
				found = true
				commonFlag = v
			default:
				newpos = append(newpos, p)
			}
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		logger := log.New(cl.Stderr(), "", log.LstdFlags)
		logger.SetPrefix(fmt.Sprintf("[%s] ", cl.Fullname()))

		return task(
			ctx,
			logger,
			commonFlag,
			cl,
			newpos,
		)
	}
}

type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	sess *session.Session,
	client krest.Client,
	cl flarc.Commandline[T],
	params []any,
) error

// NewTask wires profile, session and rest client into a task.
//
// The session is loaded when present and its bearer token rides on every
// request. When any call answers 401 the session file is destroyed, so the
// next command starts logged out.
func NewTask[T any](task Task[T]) flarc.Task[T] {
	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		profile, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) || errors.Is(err, profiles.ErrProfileStoreNotFound) {
				return fmt.Errorf(
					"%w: arithaprofile store (%s) is not found. Please try `aritha init` first",
					err, commonFlag.ProfileStore,
				)
			}
			return fmt.Errorf(
				"%w: failed to load arithaprofile store (%s)",
				err, commonFlag.ProfileStore,
			)
		}
		prof, ok := profile[commonFlag.Profile]
		if !ok {
			return fmt.Errorf(
				"profile '%s' not found in the profile store (%s)",
				commonFlag.Profile, commonFlag.ProfileStore,
			)
		}

		sess, err := session.Load(commonFlag.Session)
		if err != nil && !errors.Is(err, session.ErrNotLoggedIn) {
			return fmt.Errorf("%w: failed to load session (%s)", err, commonFlag.Session)
		}
		if sess.Expired(time.Now()) {
			if err := session.Clear(commonFlag.Session); err != nil {
				return err
			}
			return fmt.Errorf("%w: please run `aritha login` again", session.ErrSessionExpired)
		}

		options := []krest.Option{}
		if sess.Active() {
			options = append(options, krest.WithToken(sess.Token))
		}
		client, err := krest.NewClient(prof, options...)
		if err != nil {
			return fmt.Errorf(
				"%w: failed to create client. Your arithaprofile (%s in %s) can be broken.\n\nRemove it and try `aritha init` again",
				err, commonFlag.Profile, commonFlag.ProfileStore,
			)
		}

		err = task(ctx, logger, sess, client, cl, params)
		if errors.Is(err, krest.ErrUnauthorized) {
			if cerr := session.Clear(commonFlag.Session); cerr == nil {
				logger.Println("session destroyed. Please run `aritha login` again")
			}
		}
		return err
	})
}

// NewAdminTask is NewTask plus a role check before the task runs.
//
// The check is a convenience for the console user. The backend enforces its
// own access control and its errors are surfaced either way.
func NewAdminTask[T any](task Task[T]) flarc.Task[T] {
	return NewTask(func(
		ctx context.Context,
		logger *log.Logger,
		sess *session.Session,
		client krest.Client,
		cl flarc.Commandline[T],
		params []any,
	) error {
		if !sess.Active() {
			return fmt.Errorf("%w: please run `aritha login` first", session.ErrNotLoggedIn)
		}
		if !sess.IsAdmin() {
			return fmt.Errorf("%w (your role: %s)", ErrAdminOnly, sess.Role)
		}
		return task(ctx, logger, sess, client, cl, params)
	})
}

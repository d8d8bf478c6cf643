package tenant

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/ib-77/results/pkg/rop"
	"github.com/ib-77/results/pkg/rop/core"
	"github.com/ib-77/results/pkg/rop/lite"
	"github.com/ib-77/results/pkg/rop/solo"
)

var (
	zipPattern     = regexp.MustCompile(`^\d\d\d\d[A-Z]{2}$`)
	houseNrPattern = regexp.MustCompile(`^\d+[a-z]?$`)
)

const defaultWorkers = 4

type Dependencies struct {
	Store     Store
	Publisher Publisher
	Logger    *slog.Logger
	// Workers bounds GetUsers fan-out unless the request context carries its
	// own worker option.
	Workers int
	Clock   func() time.Time
}

type Users struct {
	store   Store
	events  Publisher
	logger  *slog.Logger
	workers int
	now     func() time.Time
}

var _ Service = (*Users)(nil)

func NewUsers(deps Dependencies) *Users {
	s := &Users{
		store:   deps.Store,
		events:  deps.Publisher,
		logger:  deps.Logger,
		workers: deps.Workers,
		now:     deps.Clock,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.workers <= 0 {
		s.workers = defaultWorkers
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Users) GetUser(ctx context.Context, id int) (Result[string], error) {
	name, found, err := s.store.User(ctx, id)
	if err != nil {
		return Result[string]{}, fmt.Errorf("load user %d: %w", id, err)
	}
	if !found {
		return rop.FailError[string](UserNotFound(id)), nil
	}
	return rop.Success[string, ErrorCode](name), nil
}

func (s *Users) UpdateUser(ctx context.Context, id int, name string) (Status, error) {
	checked := solo.Validate(ctx, name, func(ctx context.Context, in string) (bool, Error) {
		return strings.TrimSpace(in) != "", InvalidUserName(in)
	})
	if checked.IsFailed() {
		return rop.Convert[rop.Unit](checked), nil
	}

	found, err := s.store.SetUser(ctx, id, name)
	if err != nil {
		return Status{}, fmt.Errorf("store user %d: %w", id, err)
	}
	if !found {
		return rop.FailedError(UserNotFound(id)), nil
	}

	if s.events != nil {
		event := UserUpdated{UserID: id, Name: name, OccurredAt: s.now().UTC()}
		if err := s.events.PublishUserUpdated(ctx, event); err != nil {
			return Status{}, fmt.Errorf("publish %s: %w", EventUserUpdated, err)
		}
	}
	s.logger.InfoContext(ctx, "user updated",
		"module", "tenant",
		"operation", "update_user",
		"outcome", "success",
		"user_id", id,
	)
	return rop.Ok[ErrorCode](), nil
}

func validZip(ctx context.Context, in address) (bool, Error) {
	return zipPattern.MatchString(in.zip), InvalidZipCode(in.zip)
}

func validHouseNr(ctx context.Context, in address) (bool, Error) {
	return houseNrPattern.MatchString(in.nr), InvalidHouseNr(in.nr)
}

type address struct{ zip, nr string }

// GetUsersAtAddress validates both parts of the address before touching the
// store and reports every invalid part.
func (s *Users) GetUsersAtAddress(ctx context.Context, zip, nr string) (Result[[]int], error) {
	checked := solo.ValidateAll(ctx, solo.Succeed[address, ErrorCode](address{zip: zip, nr: nr}), false,
		validZip, validHouseNr)
	if checked.IsFailed() {
		return rop.Convert[[]int](checked), nil
	}

	ids, err := s.store.UsersAtAddress(ctx, zip, nr)
	if err != nil {
		return Result[[]int]{}, fmt.Errorf("load users at %s: %w", Address(zip, nr), err)
	}

	b := rop.NewBuilder[[]int, ErrorCode]()
	if len(ids) == 0 {
		b.Add(NoUsersAtAddress(Address(zip, nr)))
	} else {
		b.SetValue(ids)
	}
	return b.Build(), nil
}

type lookup struct{ index, id int }

type resolved struct {
	index  int
	result Result[string]
	err    error
}

// GetUsers resolves ids concurrently. The outcomes follow the order of ids.
func (s *Users) GetUsers(ctx context.Context, ids []int) ([]Result[string], error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make([]lookup, len(ids))
	for i, id := range ids {
		jobs[i] = lookup{index: i, id: id}
	}

	out := lite.Turnout(ctx,
		core.ToChanManyResults[lookup, ErrorCode](ctx, jobs),
		lite.Map[lookup, resolved, ErrorCode](func(ctx context.Context, j lookup) resolved {
			r, err := s.GetUser(ctx, j.id)
			return resolved{index: j.index, result: r, err: err}
		}),
		core.GetWorkerMaxCount(ctx, s.workers))

	results := make([]Result[string], len(ids))
	done := 0
	for r := range out {
		v := r.Value()
		if v.err != nil {
			return nil, v.err
		}
		results[v.index] = v.result
		done++
	}
	if done != len(ids) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("resolved %d of %d users", done, len(ids))
	}
	return results, nil
}

// Package streak checks the streak freeze inventory of an account, buys more when allowed
// and reports the streak status.
package streak

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/streakfreeze/pkg/duolingo"
)

//go:generate moq -out mocks/account.go -pkg mocks -skip-ensure -fmt goimports . Account

// MaxFreezes is the service cap on streak freezes an account can hold
const MaxFreezes = 2

// Account is the remote account capability used by the workflow
type Account interface {
	UserInfo(ctx context.Context) (duolingo.UserInfo, error)
	Settings(ctx context.Context) (duolingo.UserSettings, error)
	StreakInfo(ctx context.Context) (duolingo.StreakInfo, error)
	DailyXPProgress(ctx context.Context) (duolingo.XPProgress, error)
	CurrentFreezeCount(ctx context.Context) (int, error)
	BuyStreakFreeze(ctx context.Context) (bool, error)
	BuyItem(ctx context.Context, itemID, lang string) (bool, error)
}

// Notifier delivers the status report
type Notifier interface {
	Send(ctx context.Context, r Report) error
}

// Params defines workflow behavior
type Params struct {
	BuyStreak   bool
	SendStatus  bool
	SendFriends bool
	ItemID      string // item for the generic purchase, streak_freeze by default
	Language    string // language for the generic purchase, en by default
	Logger      lgr.L
}

// Workflow performs a single check-buy-report pass
type Workflow struct {
	account  Account
	notifier Notifier
	params   Params
	logger   lgr.L
	runID    string
}

// New makes a workflow, notifier can be nil
func New(account Account, notifier Notifier, params Params) *Workflow {
	if params.ItemID == "" {
		params.ItemID = duolingo.StreakFreezeItem
	}
	if params.Language == "" {
		params.Language = "en"
	}
	if params.Logger == nil {
		params.Logger = lgr.Default()
	}
	return &Workflow{account: account, notifier: notifier, params: params, logger: params.Logger, runID: uuid.NewString()}
}

// Run checks the inventory, buys a streak freeze if needed and reports the status.
// Any error other than an already owned item is returned and should end the process.
func (w *Workflow) Run(ctx context.Context) error {
	freezes, err := w.account.CurrentFreezeCount(ctx)
	if err != nil {
		return fmt.Errorf("get freeze count: %w", err)
	}

	user, err := w.account.UserInfo(ctx)
	if err != nil {
		return fmt.Errorf("get user info: %w", err)
	}
	w.logger.Logf("[DEBUG] run %s for %s, streak freezes: %d", w.runID, user.Username, freezes)

	settings, err := w.account.Settings(ctx)
	if err != nil {
		return fmt.Errorf("get user settings: %w", err)
	}
	if settings.Deactivated {
		w.logger.Logf("[WARN] account %s is deactivated", user.Username)
	}

	streakInfo, err := w.account.StreakInfo(ctx)
	if err != nil {
		return fmt.Errorf("get streak info: %w", err)
	}
	xp, err := w.account.DailyXPProgress(ctx)
	if err != nil {
		return fmt.Errorf("get daily xp progress: %w", err)
	}
	w.logger.Logf("[DEBUG] streak %d, extended today: %v, xp %d/%d", streakInfo.SiteStreak,
		streakInfo.StreakExtendedToday, xp.XPToday, xp.XPGoal)

	if w.params.SendFriends {
		w.logger.Logf("[DEBUG] friends status is not available from the service, skipped")
	}

	switch {
	case !w.params.BuyStreak:
		w.logger.Logf("[DEBUG] buying streak freeze disabled")
	case freezes >= MaxFreezes:
		w.logger.Logf("[DEBUG] %s has %d streak freezes, nothing to buy", user.Username, freezes)
	default:
		if err := w.buy(ctx, user.Username); err != nil {
			return err
		}
	}

	if !w.params.SendStatus {
		return nil
	}
	w.logger.Logf("[DEBUG] going to send streak status information ...")
	report, err := w.Status(ctx, user.Username)
	if err != nil {
		return err
	}
	for _, line := range report.Lines() {
		w.logger.Logf("[INFO] %s", line)
	}
	if w.notifier != nil {
		if err := w.notifier.Send(ctx, report); err != nil {
			w.logger.Logf("[WARN] failed to send status report: %v", err)
		}
	}
	return nil
}

// buy tries the dedicated streak freeze purchase first and the generic item purchase
// when the first one did not buy anything. Already owned is expected and not an error.
// Both calls are made only when the first one bought nothing, a successful purchase ends the attempts.
func (w *Workflow) buy(ctx context.Context, username string) error {
	w.logger.Logf("[DEBUG] going to buy 'Streak on Ice' extension ...")

	attempts := []struct {
		name string
		buy  func() (bool, error)
	}{
		{name: "buy streak freeze", buy: func() (bool, error) { return w.account.BuyStreakFreeze(ctx) }},
		{name: "buy " + w.params.ItemID, buy: func() (bool, error) {
			return w.account.BuyItem(ctx, w.params.ItemID, w.params.Language)
		}},
	}

	for _, a := range attempts {
		outcome := classify(a.buy())
		switch outcome.Kind {
		case Purchased:
			w.logger.Logf("[INFO] bought streak extension for: %s", username)
			return nil
		case AlreadyOwned:
			w.logger.Logf("[DEBUG] %s: already owned", a.name)
		case Failed:
			return fmt.Errorf("%s: %w", a.name, outcome.Err)
		}
	}
	return nil
}

// Status fetches a fresh streak state and makes the report
func (w *Workflow) Status(ctx context.Context, username string) (Report, error) {
	streakInfo, err := w.account.StreakInfo(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("refresh streak info: %w", err)
	}
	xp, err := w.account.DailyXPProgress(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("refresh daily xp progress: %w", err)
	}
	freezes, err := w.account.CurrentFreezeCount(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("refresh freeze count: %w", err)
	}

	return Report{
		RunID:    w.runID,
		Username: username,
		State: State{
			FreezeCount:   freezes,
			ExtendedToday: streakInfo.StreakExtendedToday,
			SiteStreak:    streakInfo.SiteStreak,
			XPToday:       xp.XPToday,
			XPGoal:        xp.XPGoal,
		},
	}, nil
}

// OutcomeKind is the result kind of a purchase attempt
type OutcomeKind int

// purchase outcomes
const (
	Purchased OutcomeKind = iota
	AlreadyOwned
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Purchased:
		return "purchased"
	case AlreadyOwned:
		return "already owned"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("outcome(%d)", int(k))
}

// Outcome of a purchase attempt, Err is set for Failed only
type Outcome struct {
	Kind OutcomeKind
	Err  error
}

// classify maps a purchase call result to an outcome.
// A call which reports nothing bought without an error is treated as already owned.
func classify(bought bool, err error) Outcome {
	switch {
	case errors.Is(err, duolingo.ErrAlreadyOwned):
		return Outcome{Kind: AlreadyOwned}
	case err != nil:
		return Outcome{Kind: Failed, Err: err}
	case bought:
		return Outcome{Kind: Purchased}
	default:
		return Outcome{Kind: AlreadyOwned}
	}
}

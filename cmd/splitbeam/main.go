package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mmynk/splitbeam/internal/config"
	"github.com/mmynk/splitbeam/internal/lastseen"
	"github.com/mmynk/splitbeam/internal/metrics"
	"github.com/mmynk/splitbeam/internal/models"
	"github.com/mmynk/splitbeam/internal/provider"
	"github.com/mmynk/splitbeam/internal/state"
	"github.com/mmynk/splitbeam/internal/storage"
	"github.com/mmynk/splitbeam/internal/views"
	"github.com/mmynk/splitbeam/pkg/logging"
)

const usage = `Usage: splitbeam <command> [args]

Commands:
  circles                            list circles with balances
  circle <id>                        show one circle
  friends                            list friend balances
  activity [-scope circle|friend]    show the activity feed
  seen                               mark all activity as viewed
  invite <email>                     invite a friend
  settle <circle> <from> <to> <amt>  record a settlement in a circle
  reset                              restore the demo dataset
  metrics                            serve Prometheus metrics and /dashboard
`

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout))
}

// execute runs the command named by args[0] and returns the exit code.
// Storage is closed before it returns, whatever the outcome.
func execute(args []string, out io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	logging.Setup(cfg.LogLevel)

	if len(args) < 1 {
		fmt.Fprint(os.Stderr, usage)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv, err := cfg.OpenKV()
	if err != nil {
		slog.Error("Failed to initialize storage", "backend", cfg.Storage.Backend, "error", err)
		return 1
	}
	slog.Debug("Storage initialized", "backend", cfg.Storage.Backend)

	a := &app{
		out:      out,
		store:    state.Open(ctx, kv),
		lastSeen: lastseen.New(kv, time.Now),
		cfg:      cfg,
	}
	a.provider = provider.New(a.store)
	defer func() {
		if err := a.store.Close(); err != nil {
			slog.Error("Failed to close storage", "error", err)
		}
	}()

	if err := a.run(ctx, args[0], args[1:]); err != nil {
		slog.Error("Command failed", "command", args[0], "error", err)
		return 1
	}
	return 0
}

type app struct {
	out      io.Writer
	store    *state.Store
	provider *provider.Provider
	lastSeen *lastseen.Tracker
	cfg      *config.Config
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	now := time.Now().UTC()

	switch cmd {
	case "circles":
		st := a.store.Snapshot()
		fmt.Fprintln(a.out, views.CirclesHero(st))
		for _, c := range views.CircleCards(st, now) {
			fmt.Fprintf(a.out, "  %-10s %-20s %12s  %s · %s\n",
				c.Circle.ID, c.Circle.Name, c.BalanceText, c.SimplifyLabel, c.LastActivity)
		}
		return nil

	case "circle":
		if len(args) != 1 {
			return errors.New("usage: circle <id>")
		}
		d, err := views.BuildCircleDetail(a.store.Snapshot(), args[0], now)
		if err != nil {
			return err
		}
		a.printCircle(d)
		return nil

	case "friends":
		st := a.store.Snapshot()
		fmt.Fprintln(a.out, views.FriendsHero(st))
		for _, f := range views.FriendBalances(st) {
			fmt.Fprintf(a.out, "  %-24s %-8s %12s\n", f.Friend.Email, f.Friend.Status, f.BalanceText)
		}
		return nil

	case "activity":
		fs := flag.NewFlagSet("activity", flag.ContinueOnError)
		scope := fs.String("scope", "", "only show circle or friend activity")
		if err := fs.Parse(args); err != nil {
			return err
		}
		filter := views.FeedFilter{ScopeType: models.ScopeType(*scope)}
		if *scope != "" && (!filter.ScopeType.Valid() || filter.ScopeType == models.ScopeGlobal) {
			return fmt.Errorf("unknown scope %q", *scope)
		}
		st := a.store.Snapshot()
		lastSeen := a.lastSeen.Get(ctx)
		a.printFeed(views.ActivityFeed(st, filter, lastSeen, now), views.HasUnseen(st.Activity, lastSeen))
		return nil

	case "seen":
		ts, err := a.lastSeen.MarkAllViewed(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Marked all activity as viewed at %s\n", lastseen.Format(ts))
		return nil

	case "invite":
		if len(args) != 1 {
			return errors.New("usage: invite <email>")
		}
		f, err := a.provider.Friends.Invite(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Invited %s (%s)\n", f.Email, f.ID)
		return nil

	case "settle":
		if len(args) != 4 {
			return errors.New("usage: settle <circle> <from> <to> <amount>")
		}
		amount, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[3], err)
		}
		circle, err := a.provider.Circles.Get(ctx, args[0])
		if err != nil {
			return err
		}
		s, err := a.provider.Settlements.Create(ctx, models.SettlementInput{
			Scope:    models.CircleScope(circle.ID),
			FromUser: args[1],
			ToUser:   args[2],
			Amount:   amount,
			Currency: circle.BaseCurrency,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Recorded %s (%s)\n", views.FormatCurrency(s.Amount, s.Currency), s.ID)
		return nil

	case "reset":
		if _, err := a.store.Replace(ctx, state.Default()); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Restored the demo dataset")
		return nil

	case "metrics":
		return a.serveMetrics(ctx)

	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	}

	return fmt.Errorf("unknown command %q", cmd)
}

func (a *app) printCircle(d views.CircleDetail) {
	fmt.Fprintf(a.out, "%s (%s)\n%s\n", d.Circle.Name, d.Circle.ID, d.Hero)
	fmt.Fprintf(a.out, "Outstanding: %s\n", d.OutstandingText)

	fmt.Fprintln(a.out, "\nMembers:")
	for _, m := range d.Members {
		fmt.Fprintf(a.out, "  %-28s %-8s paid %-10s in %d expenses\n",
			m.Label, m.Status, views.FormatCurrency(m.TotalPaid, d.Circle.BaseCurrency), m.ExpensesTouched)
	}

	fmt.Fprintln(a.out, "\nExpenses:")
	for _, e := range d.Expenses {
		fmt.Fprintf(a.out, "  %-28s %12s\n", e.Title, views.FormatCurrency(e.AmountBase, e.CurrencyBase))
	}

	if len(d.Rules) > 0 {
		fmt.Fprintln(a.out, "\nRecurring:")
		for _, r := range d.Rules {
			fmt.Fprintf(a.out, "  %-28s %-12s %s, next %s\n", r.Rule.TemplateExpense.Title, r.AmountText, r.Schedule, r.NextRun)
			if len(r.Upcoming) > 1 {
				fmt.Fprintf(a.out, "  %-28s then %s\n", "", strings.Join(r.Upcoming[1:], ", "))
			}
		}
	}
}

func (a *app) printFeed(feed views.Feed, unseen bool) {
	if unseen {
		fmt.Fprint(a.out, "[new] ")
	}
	fmt.Fprintln(a.out, feed.Hero)
	for _, e := range feed.Entries {
		marker := " "
		if e.Unread {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-18s %-16s %-12s %s\n", marker, e.TypeLabel, e.ScopeLabel, e.Relative, e.Activity.Message)
	}
	if len(feed.AvailableTypes) > 0 {
		labels := make([]string, len(feed.AvailableTypes))
		for i, t := range feed.AvailableTypes {
			labels[i] = t.Label()
		}
		fmt.Fprintf(a.out, "\nKinds: %s\n", strings.Join(labels, ", "))
	}
}

func (a *app) serveMetrics(ctx context.Context) error {
	live := views.NewLive(a.store, time.Now)
	defer live.Close()

	srv := &http.Server{Addr: a.cfg.MetricsAddr, Handler: a.handler(live)}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Metrics server starting", "address", a.cfg.MetricsAddr, "state_key", storage.StateKey)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handler serves Prometheus metrics and the live dashboard as JSON.
func (a *app) handler(live *views.Live) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/dashboard", func(w http.ResponseWriter, r *http.Request) {
		d, version := live.Dashboard()
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Dashboard-Version", strconv.Itoa(version))
		if err := json.NewEncoder(w).Encode(d); err != nil {
			slog.Error("Failed to encode dashboard", "error", err)
		}
	})
	return mux
}

package journal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradedesk/journal"
	"github.com/rustyeddy/tradedesk/market"
	"github.com/rustyeddy/tradedesk/pkg/id"
)

// Shell is a line-oriented front end over a journal Store. It owns the
// selected date, the calendar month on display, the session filter and the
// pending draft.
type Shell struct {
	store    journal.Store
	draft    *journal.Draft
	sessions []string

	date   time.Time
	month  time.Time // first day of the month shown by cal
	filter string

	out io.Writer
	log *zap.Logger

	// Prompt prints "journal DATE> " before each read.
	Prompt bool
	// Color enables ANSI markers in the calendar.
	Color bool
	// Today supplies the date for "date today".
	Today func() time.Time
}

func NewShell(store journal.Store, defaults journal.Defaults, sessions []string, date time.Time, out io.Writer, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Shell{
		store:    store,
		draft:    journal.NewDraft(defaults),
		sessions: sessions,
		filter:   journal.AllSessions,
		out:      out,
		log:      log,
		Today:    time.Now,
	}
	s.setDate(date)
	return s
}

// Run reads commands from in until EOF, quit, or ctx is cancelled.
// Command errors are printed and do not stop the loop. Lines are read on a
// separate goroutine so cancellation is seen while a read is blocked; that
// goroutine exits once in returns.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		if s.Prompt {
			fmt.Fprintf(s.out, "journal %s> ", s.Date())
		}

		var line string
		select {
		case <-ctx.Done():
			s.log.Debug("journal shell interrupted")
			return nil
		case l, ok := <-lines:
			if !ok {
				return <-readErr
			}
			line = l
		}

		quit, err := s.Exec(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Date is the selected day as a bucket key.
func (s *Shell) Date() string {
	return journal.DateKey(s.date)
}

func (s *Shell) setDate(t time.Time) {
	s.date = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	s.month = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Exec runs one command line.
func (s *Shell) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	s.log.Debug("shell", zap.String("cmd", cmd), zap.Strings("args", args))

	switch cmd {
	case "quit", "exit", "q":
		return true, nil
	case "help", "?":
		s.help()
	case "date":
		err = s.cmdDate(args)
	case "set":
		err = s.cmdSet(args)
	case "bias":
		err = s.cmdBias(args)
	case "conf", "confluence":
		err = s.cmdConf(args)
	case "draft":
		s.printEntry(s.draft.Entry())
	case "reset":
		s.draft.Reset()
		fmt.Fprintln(s.out, "draft reset")
	case "save":
		err = s.cmdSave()
	case "rm", "remove":
		err = s.cmdRemove(args)
	case "ls", "list":
		err = s.cmdList()
	case "filter":
		err = s.cmdFilter(args)
	case "cal", "calendar":
		err = s.cmdCal(args)
	case "show":
		err = s.cmdShow(args)
	case "options":
		s.options()
	default:
		err = fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return false, err
}

func (s *Shell) cmdDate(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(s.out, s.Date())
		return nil
	}

	arg := args[0]
	switch {
	case arg == "today":
		s.setDate(s.Today())
	case strings.HasPrefix(arg, "+") || strings.HasPrefix(arg, "-"):
		n, err := decimalInt(arg)
		if err != nil {
			return fmt.Errorf("bad day offset %q", arg)
		}
		s.setDate(s.date.AddDate(0, 0, n))
	default:
		t, err := time.Parse(journal.DateLayout, arg)
		if err != nil {
			return fmt.Errorf("bad date %q: want YYYY-MM-DD", arg)
		}
		s.setDate(t)
	}
	fmt.Fprintln(s.out, s.Date())
	return nil
}

func (s *Shell) cmdSet(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: set <pair|tf|session|fib|comments|mistakes> <value>")
	}
	field, value := strings.ToLower(args[0]), strings.Join(args[1:], " ")

	switch field {
	case "pair":
		meta, err := market.Lookup(value)
		if err != nil {
			return err
		}
		value = meta.Name
	case "timeframe", "tf":
		v, ok := pick(journal.Timeframes, value)
		if !ok {
			return fmt.Errorf("unknown timeframe %q", value)
		}
		value = v
	case "session":
		v, ok := pick(s.sessions, value)
		if !ok {
			return fmt.Errorf("unknown session %q", value)
		}
		value = v
	case "fib", "fiblevel", "fib_level":
		v, ok := pick(journal.FibLevels, value)
		if !ok {
			v, ok = pick(journal.FibLevels, "FIB "+value)
		}
		if !ok {
			return fmt.Errorf("unknown fib level %q", value)
		}
		value = v
	}
	return s.draft.Set(field, value)
}

func (s *Shell) cmdBias(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: bias buy|sell")
	}
	b, err := journal.ParseBias(args[0])
	if err != nil {
		return err
	}
	s.draft.ToggleBias(b)
	fmt.Fprintf(s.out, "bias: %s\n", joinBias(s.draft.Entry().Bias))
	return nil
}

func (s *Shell) cmdConf(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: conf <number|name> (see options)")
	}

	arg := strings.Join(args, " ")
	name, ok := pick(journal.Confluences, arg)
	if !ok {
		n, err := decimalInt(arg)
		if err != nil || n < 1 || n > len(journal.Confluences) {
			return fmt.Errorf("unknown confluence %q", arg)
		}
		name = journal.Confluences[n-1]
	}
	s.draft.ToggleConfluence(name)
	fmt.Fprintf(s.out, "confluences: %s\n", strings.Join(s.draft.Entry().Confluences, ", "))
	return nil
}

func (s *Shell) cmdSave() error {
	e, err := s.store.Add(s.Date(), s.draft.Entry())
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	s.draft.Reset()
	fmt.Fprintf(s.out, "saved %s on %s\n", id.Short(e.ID), e.Date)
	return nil
}

func (s *Shell) cmdRemove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rm <id>")
	}
	e, err := s.find(args[0])
	if err != nil {
		return err
	}
	if err := s.store.Remove(s.Date(), e.ID); err != nil {
		return fmt.Errorf("remove: %w", err)
	}
	fmt.Fprintf(s.out, "removed %s\n", id.Short(e.ID))
	return nil
}

// find resolves a full or short id among the selected day's entries.
func (s *Shell) find(ref string) (journal.TradeEntry, error) {
	entries, err := s.store.List(s.Date(), journal.AllSessions)
	if err != nil {
		return journal.TradeEntry{}, err
	}

	var hits []journal.TradeEntry
	for _, e := range entries {
		if strings.EqualFold(e.ID, ref) || strings.EqualFold(id.Short(e.ID), ref) {
			hits = append(hits, e)
		}
	}
	switch len(hits) {
	case 0:
		return journal.TradeEntry{}, fmt.Errorf("no entry %s on %s", ref, s.Date())
	case 1:
		return hits[0], nil
	}
	return journal.TradeEntry{}, fmt.Errorf("%s matches %d entries; use the full id", ref, len(hits))
}

func (s *Shell) cmdList() error {
	entries, err := s.store.List(s.Date(), s.filter)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(s.out, "no entries for %s (%s)\n", s.Date(), s.filter)
		return nil
	}

	fmt.Fprintf(s.out, "%s (%s): %d\n", s.Date(), s.filter, len(entries))
	for _, e := range entries {
		fmt.Fprintf(s.out, "  %s  %-7s %-4s %-9s %-9s %s\n",
			id.Short(e.ID), e.Pair, e.Timeframe, e.Session, joinBias(e.Bias), strings.Join(e.Confluences, ", "))
	}
	return nil
}

func (s *Shell) cmdFilter(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "filter: %s\n", s.filter)
		return nil
	}
	arg := strings.Join(args, " ")
	if strings.EqualFold(arg, journal.AllSessions) {
		s.filter = journal.AllSessions
	} else {
		v, ok := pick(s.sessions, arg)
		if !ok {
			return fmt.Errorf("unknown session %q", arg)
		}
		s.filter = v
	}
	fmt.Fprintf(s.out, "filter: %s\n", s.filter)
	return nil
}

func (s *Shell) cmdShow(args []string) error {
	if len(args) == 1 {
		e, err := s.find(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, journal.FormatEntryOrg(e))
		return nil
	}

	entries, err := s.store.List(s.Date(), s.filter)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(s.out, "no entries for %s (%s)\n", s.Date(), s.filter)
		return nil
	}
	fmt.Fprintln(s.out, journal.FormatEntriesOrg(entries))
	return nil
}

func (s *Shell) printEntry(e journal.TradeEntry) {
	fmt.Fprintf(s.out, "pair:        %s\n", e.Pair)
	fmt.Fprintf(s.out, "timeframe:   %s\n", e.Timeframe)
	fmt.Fprintf(s.out, "session:     %s\n", e.Session)
	fmt.Fprintf(s.out, "fib:         %s\n", e.FibLevel)
	fmt.Fprintf(s.out, "bias:        %s\n", joinBias(e.Bias))
	fmt.Fprintf(s.out, "confluences: %s\n", strings.Join(e.Confluences, ", "))
	fmt.Fprintf(s.out, "comments:    %s\n", e.Comments)
	fmt.Fprintf(s.out, "mistakes:    %s\n", e.Mistakes)
}

func (s *Shell) options() {
	fmt.Fprintf(s.out, "pairs:       %s\n", strings.Join(market.Pairs, " "))
	fmt.Fprintf(s.out, "timeframes:  %s\n", strings.Join(journal.Timeframes, " "))
	fmt.Fprintf(s.out, "sessions:    %s\n", strings.Join(s.sessions, ", "))
	fmt.Fprintf(s.out, "fib levels:  %s\n", strings.Join(journal.FibLevels, ", "))
	fmt.Fprintln(s.out, "confluences:")
	for i, c := range journal.Confluences {
		fmt.Fprintf(s.out, "  %2d  %s\n", i+1, c)
	}
}

func (s *Shell) help() {
	fmt.Fprint(s.out, `commands:
  date [YYYY-MM-DD|today|+N|-N]   show or select the day
  set <field> <value>             pair, tf, session, fib, comments, mistakes
  bias buy|sell                   toggle a bias on the draft
  conf <number|name>              toggle a confluence on the draft
  draft | reset                   show or discard the draft
  save                            add the draft to the selected day
  rm <id>                         remove an entry from the selected day
  ls | show [id]                  list the day's entries, or print them as Org
  filter <session|All>            restrict ls and show to one session
  cal [YYYY-MM|next|prev]         month calendar with B/S markers
  options                         list the choices for each field
  quit
`)
}

// decimalInt parses a signed base-10 integer. Leading zeros are ignored
// rather than selecting octal.
func decimalInt(v string) (int, error) {
	sign := ""
	if strings.HasPrefix(v, "+") || strings.HasPrefix(v, "-") {
		sign, v = v[:1], v[1:]
	}
	if v == "" {
		return 0, fmt.Errorf("missing digits")
	}
	digits := strings.TrimLeft(v, "0")
	if digits == "" {
		digits = "0"
	}
	return cast.ToIntE(sign + digits)
}

// pick finds v in choices case-insensitively and returns the canonical form.
func pick(choices []string, v string) (string, bool) {
	for _, c := range choices {
		if strings.EqualFold(c, v) {
			return c, true
		}
	}
	return "", false
}

func joinBias(bs []journal.Bias) string {
	if len(bs) == 0 {
		return "-"
	}
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, string(b))
	}
	return strings.Join(out, "+")
}

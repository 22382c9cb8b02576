package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/assessment"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/domain/theme"
	"github.com/Lekopien/ideal-waddle-lekopien-portfolio/internal/preferences"
)

var errAborted = errors.New("assessment aborted before the last question")

type options struct {
	api       string
	store     string
	path      string
	redisAddr string
	submit    bool
	reset     bool
	theme     string
	show      bool
}

func openStorage(ctx context.Context, opts options) (preferences.Storage, func(), error) {
	noop := func() {}
	switch strings.ToLower(strings.TrimSpace(opts.store)) {
	case "memory":
		return preferences.NewMemoryStorage(), noop, nil
	case "redis":
		rs, err := preferences.NewRedisStorage(ctx, preferences.RedisOptions{Addr: opts.redisAddr})
		if err != nil {
			return nil, noop, err
		}
		return rs, func() { _ = rs.Close() }, nil
	case "file", "":
		fs, err := preferences.NewFileStorage(opts.path)
		if err != nil {
			return nil, noop, err
		}
		return fs, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown storage %q (want file, redis or memory)", opts.store)
	}
}

func run(ctx context.Context, opts options, store *preferences.Store, fwd *preferences.Forwarder, in io.Reader, out io.Writer) error {
	store.Init(ctx)

	switch {
	case opts.reset:
		store.Reset(ctx)
		fmt.Fprintln(out, "Preferences reset.")
		printSnapshot(out, store.Snapshot())
		return nil
	case strings.TrimSpace(opts.theme) != "":
		key, ok := theme.ParseKey(opts.theme)
		if !ok {
			return fmt.Errorf("unknown theme %q", opts.theme)
		}
		if err := store.SetTheme(ctx, key); err != nil {
			return err
		}
		printSnapshot(out, store.Snapshot())
		return nil
	case opts.show:
		printSnapshot(out, store.Snapshot())
		return nil
	}

	// A finished assessment pins the theme, so a retake starts from scratch.
	if store.Snapshot().AssessmentComplete {
		store.Reset(ctx)
	}
	score, err := runAssessment(bufio.NewScanner(in), out)
	if err != nil {
		return err
	}
	if err := store.SetScore(ctx, score); err != nil {
		return err
	}
	store.CompleteAssessment(ctx)

	snap := store.Snapshot()
	t := theme.Default().Lookup(snap.CurrentTheme)
	content := theme.CopyFor(score)
	fmt.Fprintf(out, "\nYour personality score: %.0f%% (%s)\n", score*100, content.Label)
	fmt.Fprintf(out, "Theme: %s\n\n", t.Name)
	fmt.Fprintf(out, "%s\n%s\n%s\n", content.Hero.Title, content.Hero.Subtitle, content.Hero.Description)

	if !opts.submit {
		return nil
	}
	rec, err := fwd.Submit(ctx, snap)
	if err != nil {
		return fmt.Errorf("submit preferences: %w", err)
	}
	fmt.Fprintf(out, "\nSaved as preference #%d (%s, %s)\n", rec.ID, rec.Theme, rec.PersonalityCategory)
	return nil
}

// runAssessment walks the session over line input. A question only advances
// once a valid option number has been entered.
func runAssessment(sc *bufio.Scanner, out io.Writer) (float64, error) {
	session := assessment.NewSession()
	for !session.Finished() {
		q := session.Current()
		fmt.Fprintf(out, "\nQuestion %d of %d (%.0f%%)\n%s\n", session.Index()+1, assessment.QuestionCount(), session.Progress(), q.Prompt)
		for i, a := range q.Answers {
			fmt.Fprintf(out, "  %d) %s\n", i+1, a.Text)
		}
		for {
			fmt.Fprint(out, "> ")
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return 0, err
				}
				return 0, errAborted
			}
			n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
			if err != nil {
				fmt.Fprintf(out, "Enter a number between 1 and %d.\n", len(q.Answers))
				continue
			}
			if err := session.Select(n - 1); err != nil {
				fmt.Fprintf(out, "Enter a number between 1 and %d.\n", len(q.Answers))
				continue
			}
			break
		}
		if _, err := session.Next(); err != nil {
			return 0, err
		}
	}
	return session.Score()
}

func printSnapshot(out io.Writer, snap preferences.Snapshot) {
	fmt.Fprintf(out, "theme:               %s\n", snap.CurrentTheme)
	fmt.Fprintf(out, "personality score:   %.2f\n", snap.PersonalityScore)
	fmt.Fprintf(out, "assessment complete: %t\n", snap.AssessmentComplete)
	if snap.Timestamp > 0 {
		fmt.Fprintf(out, "saved at:            %s\n", snap.WrittenAt().Format(time.RFC3339))
	}
}

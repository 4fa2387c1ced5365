// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command dashboard drives the course editing widgets against a running API.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load dashboard configuration from environment variables.
//  3. Build the API client.
//  4. Wire the host bus, notifier, confirmer and celebrator.
//  5. Load the category options.
//  6. Run the requested widget action.
//
// # Usage
//
//	dashboard categories
//	dashboard -course <id> show
//	dashboard -course <id> publish
//	dashboard -course <id> [-yes] delete
//	dashboard -course <id> category <categoryId>
//	dashboard -course <id> chapter <title>
//	dashboard -course <id> reorder <chapterId> [<chapterId> ...]
//	dashboard -course <id> edit <chapterId>
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/taibuivan/coursedesk/internal/dashboard"
	"github.com/taibuivan/coursedesk/internal/platform/config"
	"github.com/taibuivan/coursedesk/internal/platform/constants"
	"github.com/taibuivan/coursedesk/pkg/pointer"
)

// errUsage is returned for unknown commands or missing arguments.
var errUsage = errors.New("dashboard: invalid usage")

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("app", constants.AppName+"-dashboard"))
	slog.SetDefault(log)

	courseID := flag.String("course", "", "course id the widgets operate on")
	assumeYes := flag.Bool("yes", false, "confirm destructive actions without prompting")
	flag.Parse()

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.LoadDashboard()
	if err != nil {
		log.Error("startup failure", slog.String("context", "load configuration"), slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	session := newSession(cfg, log, os.Stdin, os.Stdout, *assumeYes)
	if err := session.run(ctx, *courseID, flag.Args()); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		log.Error("dashboard_command_failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// session holds the wired widget collaborators for one invocation.
type session struct {
	client *dashboard.Client
	deps   dashboard.Deps
	log    *slog.Logger
	out    io.Writer
}

func newSession(cfg *config.DashboardConfig, log *slog.Logger, in io.Reader, out io.Writer, assumeYes bool) *session {
	// ── 3. API Client ─────────────────────────────────────────────────────
	client := dashboard.NewClient(cfg)

	// ── 4. Host Wiring ────────────────────────────────────────────────────
	bus := dashboard.NewBus(func(path string) {
		log.Info("navigate", slog.String("path", path))
	})

	s := &session{client: client, log: log, out: out}
	s.deps = dashboard.Deps{
		API:        client,
		Notifier:   dashboard.NewLogNotifier(log),
		Host:       bus,
		Celebrator: logCelebrator{log: log},
		Confirmer:  &promptConfirmer{in: bufio.NewReader(in), out: out, assumeYes: assumeYes},
		Logger:     log,
	}

	// The page refetches after every mutation except a deletion.
	bus.SubscribeAll(func(mutation dashboard.Mutation) {
		if mutation.Kind == dashboard.MutationCourseDeleted {
			return
		}
		s.refresh(context.Background(), mutation)
	})

	return s
}

func (s *session) run(ctx context.Context, courseID string, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	// ── 5. Category Options ───────────────────────────────────────────────
	if args[0] == "categories" {
		options, err := dashboard.LoadCategoryOptions(ctx, s.client)
		if err != nil {
			return err
		}
		for _, option := range options {
			fmt.Fprintf(s.out, "%s\t%s\n", option.Value, option.Label)
		}
		return nil
	}

	if courseID == "" {
		return errUsage
	}

	loaded, err := s.client.GetCourse(ctx, courseID)
	if err != nil {
		return err
	}

	// ── 6. Widget Action ──────────────────────────────────────────────────
	switch args[0] {
	case "show":
		options, err := dashboard.LoadCategoryOptions(ctx, s.client)
		if err != nil {
			return err
		}
		selector := dashboard.NewCategorySelector(courseID, pointer.Val(loaded.CategoryID), options, s.deps)
		view := dashboard.NewChapterEditor(courseID, loaded.Chapters, s.deps).View()

		fmt.Fprintf(s.out, "title\t%s\npublished\t%t\ncategory\t%s\n", loaded.Title, loaded.IsPublished, selector.Display().Label)
		for _, item := range view.Items {
			fmt.Fprintf(s.out, "chapter\t%d\t%s\t%s\tpublished=%t\n", item.Position, item.ID, item.Title, item.IsPublished)
		}
		if view.Notice != dashboard.NoticeNone {
			fmt.Fprintf(s.out, "notice\t%s\n", view.Notice.Message())
		}
		return nil

	case "publish":
		actions := dashboard.NewCourseActions(courseID, s.deps)
		_, err := actions.TogglePublish(ctx, loaded.IsPublished, dashboard.PublishDisabled(loaded))
		return err

	case "delete":
		return dashboard.NewCourseActions(courseID, s.deps).Delete(ctx)

	case "category":
		if len(args) != 2 {
			return errUsage
		}
		options, err := dashboard.LoadCategoryOptions(ctx, s.client)
		if err != nil {
			return err
		}
		selector := dashboard.NewCategorySelector(courseID, pointer.Val(loaded.CategoryID), options, s.deps)
		if err := selector.ToggleEdit(); err != nil {
			return err
		}
		_, err = selector.Submit(ctx, args[1])
		return err

	case "chapter":
		if len(args) < 2 {
			return errUsage
		}
		editor := dashboard.NewChapterEditor(courseID, loaded.Chapters, s.deps)
		if err := editor.ToggleCreating(); err != nil {
			return err
		}
		_, err := editor.CreateChapter(ctx, strings.Join(args[1:], " "))
		return err

	case "reorder":
		if len(args) < 2 {
			return errUsage
		}
		return dashboard.NewChapterEditor(courseID, loaded.Chapters, s.deps).Reorder(ctx, args[1:])

	case "edit":
		if len(args) != 2 {
			return errUsage
		}
		return dashboard.NewChapterEditor(courseID, loaded.Chapters, s.deps).BeginEdit(args[1])
	}

	return errUsage
}

// refresh reloads the course after a mutation, as the host page would.
func (s *session) refresh(ctx context.Context, mutation dashboard.Mutation) {
	loaded, err := s.client.GetCourse(ctx, mutation.CourseID)
	if err != nil {
		s.log.Warn("course_refresh_failed", slog.String("course_id", mutation.CourseID), slog.Any("error", err))
		return
	}

	s.log.Info("course_refreshed",
		slog.String("mutation", string(mutation.Kind)),
		slog.String("course_id", loaded.ID),
		slog.Bool("is_published", loaded.IsPublished),
		slog.Int("chapters", len(loaded.Chapters)),
	)
}

// promptConfirmer asks on the terminal. assumeYes skips the prompt.
type promptConfirmer struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func (confirmer *promptConfirmer) Confirm(_ context.Context, prompt string) bool {
	if confirmer.assumeYes {
		return true
	}

	fmt.Fprintf(confirmer.out, "%s Continue? [y/N]: ", prompt)
	answer, err := confirmer.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// logCelebrator records the publish celebration.
type logCelebrator struct {
	log *slog.Logger
}

func (celebrator logCelebrator) Celebrate() {
	celebrator.log.Info("course_celebrated")
}

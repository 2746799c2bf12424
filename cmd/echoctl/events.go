package main

import (
	"errors"
	"fmt"
	"strings"

	"echo-journal/internal/domain/events"

	"github.com/spf13/cobra"
)

var errBlankText = errors.New("text cannot be empty")

func newAddCmd(a *app) *cobra.Command {
	var (
		typ       string
		audioURL  string
		audioText string
	)
	cmd := &cobra.Command{
		Use:   "add <text...>",
		Short: "Record an event for today",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errBlankText
			}
			t := events.EventType(typ)
			if t != "" && !t.Valid() {
				return fmt.Errorf("unknown type %q (event|interview)", typ)
			}

			ctx, cancel := a.ctx(cmd)
			defer cancel()
			e, err := a.j.AddEvent(ctx, events.CreateInput{
				Text:      text,
				Type:      t,
				AudioURL:  strings.TrimSpace(audioURL),
				AudioText: strings.TrimSpace(audioText),
			})
			if err != nil {
				return err
			}
			return a.printEvent(cmd.OutOrStdout(), e)
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "event|interview (default event)")
	cmd.Flags().StringVar(&audioURL, "audio-url", "", "recording URL")
	cmd.Flags().StringVar(&audioText, "audio-text", "", "recording transcript")
	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all events, or those of one day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.ctx(cmd)
			defer cancel()

			var (
				list []events.Event
				err  error
			)
			if date = strings.TrimSpace(date); date != "" {
				if !events.ValidDate(date) {
					return fmt.Errorf("date must be YYYY-MM-DD, got %q", date)
				}
				list, err = a.j.EventsByDate(ctx, date)
			} else {
				list, err = a.j.Events(ctx)
			}
			if err != nil {
				return err
			}
			return a.printEvents(cmd.OutOrStdout(), list)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day YYYY-MM-DD")
	return cmd
}

func newTodayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "List today's events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			list, err := a.j.TodayEvents(ctx)
			if err != nil {
				return err
			}
			return a.printEvents(cmd.OutOrStdout(), list)
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			e, ok, err := a.j.GetEvent(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return notFound(args[0])
			}
			return a.printEvent(cmd.OutOrStdout(), e)
		},
	}
}

func newEditCmd(a *app) *cobra.Command {
	var text, audioURL, audioText string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the text or audio of an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in events.UpdateInput
			if cmd.Flags().Changed("text") {
				t := strings.TrimSpace(text)
				if t == "" {
					return errBlankText
				}
				in.Text = &t
			}
			if cmd.Flags().Changed("audio-url") {
				in.AudioURL = &audioURL
			}
			if cmd.Flags().Changed("audio-text") {
				in.AudioText = &audioText
			}
			if in.Empty() {
				return errors.New("nothing to change: use --text, --audio-url or --audio-text")
			}

			ctx, cancel := a.ctx(cmd)
			defer cancel()
			e, ok, err := a.j.UpdateEvent(ctx, args[0], in)
			if err != nil {
				return err
			}
			if !ok {
				return notFound(args[0])
			}
			return a.printEvent(cmd.OutOrStdout(), e)
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "new text")
	cmd.Flags().StringVar(&audioURL, "audio-url", "", "new recording URL")
	cmd.Flags().StringVar(&audioText, "audio-text", "", "new transcript")
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete an event",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			ok, err := a.j.DeleteEvent(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return notFound(args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func newClearTodayCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear-today",
		Short: "Delete every event recorded today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to clear today's events without --yes")
			}
			ctx, cancel := a.ctx(cmd)
			defer cancel()
			if err := a.j.ClearTodayEvents(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "today's events cleared")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm")
	return cmd
}

func notFound(id string) error {
	return fmt.Errorf("event %s not found", id)
}

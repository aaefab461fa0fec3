package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"speakup/generator"
	"speakup/store"
)

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "Manage saved messages",
	Long: `List, show, delete and export saved messages.

Subcommands:
  list    - List saved messages, newest first
  show    - Print one message
  delete  - Delete one message
  export  - Export all messages as JSON`,
	RunE: runSavedList,
}

var savedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved messages, newest first",
	Args:  cobra.NoArgs,
	RunE:  runSavedList,
}

var savedShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved message",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedShow,
}

var savedDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a saved message",
	Args:  cobra.ExactArgs(1),
	RunE:  runSavedDelete,
}

var savedExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all saved messages as JSON",
	Args:  cobra.NoArgs,
	RunE:  runSavedExport,
}

var (
	listFilter           store.Filter
	listFormat, listTone string
	exportOut            string
)

func init() {
	f := savedListCmd.Flags()
	f.StringVar(&listFilter.Search, "search", "", "case-insensitive search over prompt and text")
	f.StringVar(&listFormat, "format", "", "only this format")
	f.StringVar(&listTone, "tone", "", "only this tone")
	f.IntVar(&listFilter.Limit, "limit", 0, "maximum number of messages (0 = all)")

	savedExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")

	savedCmd.AddCommand(savedListCmd)
	savedCmd.AddCommand(savedShowCmd)
	savedCmd.AddCommand(savedDeleteCmd)
	savedCmd.AddCommand(savedExportCmd)
}

func runSavedList(cmd *cobra.Command, args []string) error {
	listFilter.Format = generator.Format(strings.ToLower(listFormat))
	listFilter.Tone = generator.Tone(strings.ToLower(listTone))
	return withStore(func(s store.Store) error {
		msgs, err := s.List(cmd.Context(), listFilter)
		if err != nil {
			return fmt.Errorf("failed to list messages: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(msgs) == 0 {
			fmt.Fprintln(out, "No saved messages found.")
			return nil
		}
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tSAVED\tFORMAT\tTONE\tWORDS\tPREVIEW")
		for _, m := range msgs {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n",
				m.ID, m.CreatedAt.Local().Format("2006-01-02 15:04"), m.Format, m.Tone, m.WordCount, generator.Digest(m.Text, 48))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nTotal: %d messages\n", len(msgs))
		return nil
	})
}

func runSavedShow(cmd *cobra.Command, args []string) error {
	return withStore(func(s store.Store) error {
		m, err := s.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get message %s: %w", args[0], err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Prompt: %s\n", m.Prompt)
		fmt.Fprintf(out, "Format: %s  Tone: %s  Duration: %s  Words: %d\n", m.Format, m.Tone, m.Duration, m.WordCount)
		if m.SubjectLine != "" {
			fmt.Fprintf(out, "Subject: %s\n", m.SubjectLine)
		}
		fmt.Fprintln(out, strings.Repeat("─", 50))
		fmt.Fprintln(out, m.Text)
		return nil
	})
}

func runSavedDelete(cmd *cobra.Command, args []string) error {
	return withStore(func(s store.Store) error {
		if err := s.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete message %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	})
}

func runSavedExport(cmd *cobra.Command, args []string) error {
	return withStore(func(s store.Store) error {
		var w io.Writer = cmd.OutOrStdout()
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", exportOut, err)
			}
			defer f.Close()
			w = f
		}
		return store.ExportJSON(cmd.Context(), s, w)
	})
}

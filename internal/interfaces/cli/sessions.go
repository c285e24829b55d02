package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewSessionsCmd creates the sessions command group.
func NewSessionsCmd() *cobra.Command {
	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage diagnosis conversations",
	}

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new conversation",
		RunE:  runSessionsNew,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List your conversations, newest first",
		RunE:  runSessionsList,
	}

	historyCmd := &cobra.Command{
		Use:   "history <session-id>",
		Short: "Show the full message log of a conversation",
		Args:  cobra.ExactArgs(1),
		RunE:  runSessionsHistory,
	}

	clearCmd := &cobra.Command{
		Use:   "clear <session-id>",
		Short: "Delete a conversation's history and collected symptoms",
		Args:  cobra.ExactArgs(1),
		RunE:  runSessionsClear,
	}

	sessionsCmd.AddCommand(newCmd, listCmd, historyCmd, clearCmd)
	return sessionsCmd
}

func runSessionsNew(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	session, err := cliCtx.Client.Chat().CreateSession(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, session)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, session.Welcome)
	fmt.Fprintf(out, "\nSession: %s\n", session.ID)
	return nil
}

func runSessionsList(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	sessions, err := cliCtx.Client.Chat().ListSessions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, sessions)
	}

	if len(sessions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No conversations yet.")
		return nil
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"ID", "Title", "Messages", "Updated"})
	for _, s := range sessions {
		table.Append([]string{
			s.ID,
			s.Title,
			fmt.Sprintf("%d", s.MessageCount),
			formatUnixSeconds(s.UpdatedAt),
		})
	}
	table.Render()
	return nil
}

func runSessionsHistory(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	messages, err := cliCtx.Client.Chat().History(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}

	if strings.EqualFold(cliCtx.OutputFormat, "json") {
		return printJSON(cmd, messages)
	}

	out := cmd.OutOrStdout()
	if len(messages) == 0 {
		fmt.Fprintln(out, "Conversation is empty.")
		return nil
	}
	for _, msg := range messages {
		fmt.Fprintf(out, "%s %s\n", roleTag(msg.Role), msg.Content)
	}
	return nil
}

func runSessionsClear(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	if err := cliCtx.Client.Chat().ClearSession(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleared session %s\n", args[0])
	return nil
}

// formatUnixSeconds renders a float epoch-seconds timestamp, or "-" when zero.
func formatUnixSeconds(ts float64) string {
	if ts == 0 {
		return "-"
	}
	return time.Unix(int64(ts), 0).Format("2006-01-02 15:04")
}

//Personal.AI order the ending

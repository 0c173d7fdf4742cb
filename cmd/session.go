package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/pyme-segmenter/internal/domain"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the host session (credentials and user)",
	}

	cmd.AddCommand(
		newSessionInitCmd(app),
		newSessionCheckCmd(app),
	)

	return cmd
}

func newSessionInitCmd(app *app) *cobra.Command {
	var session domain.HostSession
	var secretRef string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the session file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(session.Credentials.ClientSecret) == "" && strings.TrimSpace(secretRef) == "" {
				return errors.New("set --client-secret or --client-secret-ref")
			}
			if session.Credentials.ClientSecret != "" && secretRef != "" {
				return errors.New("--client-secret and --client-secret-ref are mutually exclusive")
			}

			path := app.sessions.Path()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("session file %s already exists (use --force to overwrite)", path)
			}

			if err := app.sessions.Save(cmd.Context(), session, secretRef); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Session written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&session.Credentials.URL, "url", "", "Oracle Field Service instance URL")
	cmd.Flags().StringVar(&session.Credentials.ClientID, "client-id", "", "API client id")
	cmd.Flags().StringVar(&session.Credentials.ClientSecret, "client-secret", "", "API client secret, stored in the session file")
	cmd.Flags().StringVar(&secretRef, "client-secret-ref", "", "Secret reference such as pass:ofs/client_secret or env:OFS_SECRET")
	cmd.Flags().StringVar(&session.Login, "login", "", "Login of the operator")
	cmd.Flags().StringVar(&session.AllowedUsers, "allowed-users", "", "Semicolon-delimited logins allowed to run transitions")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing session file")
	_ = cmd.MarkFlagRequired("url")
	_ = cmd.MarkFlagRequired("client-id")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("allowed-users")

	return cmd
}

func newSessionCheckCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Authorize the session and load both pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.start(cmd); err != nil {
				return err
			}

			vm := app.engine.ViewModel()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "today: %s\n", vm.Today)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "residential: %d\n", domain.CountNodes(vm.ResidentialTree))
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "pyme: %d\n", len(vm.Pyme))
			return nil
		},
	}
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/wansing/blog/core"
	"golang.org/x/crypto/ssh/terminal"
)

// readPassword prompts for a password without echoing it.
var readPassword = func(cmd *cobra.Command, prompt string) ([]byte, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	defer fmt.Fprintln(cmd.ErrOrStderr())
	return terminal.ReadPassword(int(os.Stdin.Fd()))
}

func newUseraddCmd() *cobra.Command {

	var useraddCmd = &cobra.Command{
		Use:   "useradd <username>",
		Short: "Create an account, asking for its password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			var form = &core.SignupForm{Username: args[0]}
			form.Email, _ = cmd.Flags().GetString("email")
			form.FirstName, _ = cmd.Flags().GetString("first-name")
			form.LastName, _ = cmd.Flags().GetString("last-name")

			pass1, err := readPassword(cmd, fmt.Sprintf("password for user %s: ", form.Username))
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			pass2, err := readPassword(cmd, "repeat password: ")
			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}
			if !bytes.Equal(pass1, pass2) {
				return errors.New("passwords don't match")
			}
			form.Password1 = string(pass1)
			form.Password2 = string(pass2)

			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.db.Signup(cmd.Context(), nil, form)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}

	useraddCmd.Flags().String("email", "", "email address of the account")
	useraddCmd.Flags().String("first-name", "", "first name of the account holder")
	useraddCmd.Flags().String("last-name", "", "last name of the account holder")
	return useraddCmd
}

func newUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List all accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			accounts, err := a.db.GetAllAccounts(cmd.Context())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Username", "Name", "Email", "Joined"})
			for _, account := range accounts {
				t.AppendRow(table.Row{account.ID, account.Username, account.Name(), account.Email, account.Joined.Format("2006-01-02 15:04")})
			}
			t.AppendFooter(table.Row{"", "", "", "Total", len(accounts)})
			t.Render()
			return nil
		},
	}
}

func newProfileCmd() *cobra.Command {

	var profileCmd = &cobra.Command{
		Use:   "profile <username>",
		Short: "Set bio and avatar url of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			account, err := a.accounts.GetAccountByUsername(cmd.Context(), args[0])
			if err != nil {
				if core.IsNotFound(err) {
					return fmt.Errorf("user %s not found", args[0])
				}
				return err
			}

			profile, err := a.db.GetProfile(cmd.Context(), account.ID)
			if err != nil {
				return err
			}

			// keep the fields which are not given
			var form = &core.ProfileForm{Bio: profile.Bio, AvatarURL: profile.AvatarURL}
			if cmd.Flags().Changed("bio") {
				form.Bio, _ = cmd.Flags().GetString("bio")
			}
			if cmd.Flags().Changed("avatar") {
				form.AvatarURL, _ = cmd.Flags().GetString("avatar")
			}

			result, err := a.db.EditProfile(cmd.Context(), account, form)
			if err != nil {
				return err
			}
			return printResult(cmd, result)
		},
	}

	profileCmd.Flags().String("bio", "", "short biography, up to 500 characters")
	profileCmd.Flags().String("avatar", "", "http or https url of the avatar image")
	return profileCmd
}

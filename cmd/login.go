// Package cmd implements the command-line interface for literal.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/conatus/literal-tools/color"
	"github.com/conatus/literal-tools/icon"
	"github.com/conatus/literal-tools/literal"
	"github.com/conatus/literal-tools/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.SetOut(os.Stdout)
}

// loginCmd always asks for credentials and replaces the cached token.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to Literal.club and cache the session token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client := literal.NewFromConfig()
		authenticator, err := newAuthenticator(client)
		handleErr(err)

		token, err := authenticator.Login(cmd.Context())
		handleErr(err)

		user, err := client.Me(cmd.Context(), token)
		handleErr(err)

		cmd.Printf(
			"%s signed in as %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(displayName(user)),
		)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.SetOut(os.Stdout)
}

// logoutCmd forgets the cached token. It does not contact the API.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the cached session token",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		authenticator, err := newAuthenticator(literal.NewFromConfig())
		handleErr(err)
		handleErr(authenticator.Logout())

		cmd.Printf("%s signed out\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolP("json", "j", false, "Print the account as JSON")
	whoamiCmd.SetOut(os.Stdout)
}

// whoamiCmd shows the account the cached token belongs to.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the account you are signed in with",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		client, token, err := session(cmd.Context())
		handleErr(err)

		user, err := client.Me(cmd.Context(), token)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(user))
			return
		}

		headerStyle := style.New().Bold(true).Foreground(color.HiPurple).Render
		cmd.Printf("%s %s\n", headerStyle("Name"), displayName(user))
		cmd.Printf("%s %s\n", headerStyle("Handle"), "@"+user.Profile.Handle)
		cmd.Printf("%s %s\n", headerStyle("Email"), user.Email)
	},
}

func displayName(user *literal.User) string {
	return lo.CoalesceOrEmpty(user.Profile.Name, user.Profile.Handle, user.Email)
}

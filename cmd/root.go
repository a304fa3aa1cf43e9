// Package cmd implements the command-line interface for literal.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/conatus/literal-tools/color"
	"github.com/conatus/literal-tools/constant"
	"github.com/conatus/literal-tools/icon"
	"github.com/conatus/literal-tools/key"
	"github.com/conatus/literal-tools/literal"
	"github.com/conatus/literal-tools/log"
	"github.com/conatus/literal-tools/style"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("json", "j", false, "Print the reading list as JSON")

	rootCmd.PersistentFlags().Bool("debug", false, "Log every GraphQL request and response to stderr")
	lo.Must0(viper.BindPFlag(key.LogsDebug, rootCmd.PersistentFlags().Lookup("debug")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd lists the books the user is currently reading.
var rootCmd = &cobra.Command{
	Use:   constant.Literal,
	Short: "List what you are reading on Literal.club and add new books",
	Long: style.Bold(constant.Literal) + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - List what you are reading on Literal.club and add new books"),
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Setup()
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		asJson := lo.Must(cmd.Flags().GetBool("json"))
		handleErr(listReading(cmd.Context(), cmd.OutOrStdout(), asJson))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		handleErr(err)
	}
}

func handleErr(err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.Trim(err.Error(), " \n"))

	if errors.Is(err, literal.ErrAuthentication) {
		_, _ = fmt.Fprintf(os.Stderr, "%s Run %s to sign in again\n", icon.Get(icon.Key), style.Bold(constant.Literal+" login"))
	}

	os.Exit(1)
}

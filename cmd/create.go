// Package cmd implements the command-line interface for literal.
package cmd

import (
	"os"

	"github.com/conatus/literal-tools/color"
	"github.com/conatus/literal-tools/icon"
	"github.com/conatus/literal-tools/literal"
	"github.com/conatus/literal-tools/open"
	"github.com/conatus/literal-tools/prompt"
	"github.com/conatus/literal-tools/style"
	"github.com/conatus/literal-tools/util"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(createBookCmd)

	createBookCmd.Flags().StringP("title", "t", "", "Title of the book")
	createBookCmd.Flags().StringSliceP("author", "a", nil, "Author of the book, repeat for several authors")
	createBookCmd.Flags().String("subtitle", "", "Subtitle of the book")
	createBookCmd.Flags().StringP("description", "d", "", "Short description of the book")
	createBookCmd.Flags().String("isbn", "", "ISBN-13 of the book")
	createBookCmd.Flags().IntP("pages", "p", 0, "Number of pages")
	createBookCmd.Flags().StringP("cover", "c", "", "Path to a cover image (jpg, png, gif, webp)")
	createBookCmd.Flags().Bool("no-cover", false, "Do not ask for a cover image")
	createBookCmd.Flags().BoolP("open", "o", false, "Open the new book page in the browser")

	createBookCmd.MarkFlagsMutuallyExclusive("cover", "no-cover")
	lo.Must0(createBookCmd.MarkFlagFilename("cover", "jpg", "jpeg", "png", "gif", "webp"))

	createBookCmd.SetOut(os.Stdout)
}

// createBookCmd adds a new book record, optionally uploading a cover image first.
var createBookCmd = &cobra.Command{
	Use:     "create-book",
	Short:   "Create a new book on Literal.club",
	Aliases: []string{"create", "add"},
	Args:    cobra.NoArgs,
	Example: `  literal create-book --title "Piranesi" --author "Susanna Clarke" --cover ~/covers/piranesi.jpg
  literal create-book --title "Good Omens" -a "Terry Pratchett" -a "Neil Gaiman" --no-cover`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			flags    = cmd.Flags()
			prompter = prompt.New()
			input    = literal.BookInput{
				Title:       lo.Must(flags.GetString("title")),
				Authors:     lo.Must(flags.GetStringSlice("author")),
				Subtitle:    lo.Must(flags.GetString("subtitle")),
				Description: lo.Must(flags.GetString("description")),
				ISBN13:      lo.Must(flags.GetString("isbn")),
				PageCount:   lo.Must(flags.GetInt("pages")),
			}
		)

		// without a terminal, missing metadata falls through to validation below
		if prompter.Interactive() {
			handleErr(prompter.BookMetadata(&input))
		}

		input = input.Normalize()
		handleErr(input.Validate())

		cover := mo.None[string]()
		switch {
		case flags.Changed("cover"):
			cover = mo.Some(prompt.ExpandHome(lo.Must(flags.GetString("cover"))))
		case !lo.Must(flags.GetBool("no-cover")) && prompter.Interactive():
			var err error
			cover, err = prompter.CoverPath()
			handleErr(err)
		}

		if path, ok := cover.Get(); ok {
			handleErr(literal.CheckCover(path))
		}

		client, token, err := session(cmd.Context())
		handleErr(err)

		status := icon.Get(icon.Progress) + " Creating book..."
		if cover.IsPresent() {
			status = icon.Get(icon.Cover) + " Uploading cover and creating book..."
		}

		erase := util.PrintErasable(status)
		book, err := client.CreateBook(cmd.Context(), token, input, cover)
		erase()
		handleErr(err)

		cmd.Printf(
			"%s created %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(book.Title),
		)

		if url := book.URL(); url != "" {
			cmd.Println(style.Fg(color.Blue)(url))

			if lo.Must(flags.GetBool("open")) {
				handleErr(open.Browser(url))
			}
		}
	},
}

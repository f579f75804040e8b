package main

import (
	"errors"

	"github.com/spf13/cobra"

	"readingsoundtrack/internal/book"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Searches the book catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := book.Filters{}
		f.Search, _ = cmd.Flags().GetString("search")
		f.Genre, _ = cmd.Flags().GetString("genre")
		f.Page, _ = cmd.Flags().GetInt("page")
		if cmd.Flags().Changed("top-rated") {
			topRated, _ := cmd.Flags().GetBool("top-rated")
			f.TopRated = &topRated
		}

		books, err := application.Books.List(cmd.Context(), f)
		if err != nil {
			return err
		}
		return renderBooks(cmd.OutOrStdout(), books)
	},
}

var bookCmd = &cobra.Command{
	Use:   "book [id]",
	Short: "Shows one book by id or exact title",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")

		var (
			b   *book.Book
			err error
		)
		switch {
		case len(args) == 1:
			b, err = application.Books.GetByID(cmd.Context(), args[0])
			if err == nil && b == nil {
				err = book.NotFoundByID(args[0])
			}
		case title != "":
			b, err = application.Books.GetByTitle(cmd.Context(), title)
		default:
			return errors.New("either an id argument or --title is required")
		}
		if err != nil {
			return err
		}
		return renderBook(cmd.OutOrStdout(), b)
	},
}

func init() {
	booksCmd.Flags().StringP("search", "s", "", "keyword to search for")
	booksCmd.Flags().StringP("genre", "g", "", "restrict to a genre")
	booksCmd.Flags().Int("page", 1, "result page")
	booksCmd.Flags().Bool("top-rated", false, "only top rated books")
	rootCmd.AddCommand(booksCmd)

	bookCmd.Flags().StringP("title", "t", "", "exact title to look up")
	rootCmd.AddCommand(bookCmd)
}

package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newPostsCmd() *cobra.Command {

	var postsCmd = &cobra.Command{
		Use:   "posts",
		Short: "List posts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			a, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			drafts, _ := cmd.Flags().GetBool("drafts")

			var list = a.db.GetPublishedPosts
			if drafts {
				list = a.db.GetAllPosts
			}
			posts, err := list(cmd.Context())
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Title", "Author", "Created", "Published", "Views"})
			for _, post := range posts {
				t.AppendRow(table.Row{post.ID, post.Title, post.AuthorUsername, post.Created.Format("2006-01-02 15:04"), post.Published, post.Views})
			}
			t.Render()
			return nil
		},
	}

	postsCmd.Flags().Bool("drafts", false, "include unpublished posts")
	return postsCmd
}

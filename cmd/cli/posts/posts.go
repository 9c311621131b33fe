package posts

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/crucial707/postboard/cmd/cli/output"
	"github.com/crucial707/postboard/cmd/cli/root"
	"github.com/crucial707/postboard/internal/forms"
	"github.com/crucial707/postboard/internal/repo"
	"github.com/spf13/cobra"
)

// ==========================
// Init Posts
// ==========================
func InitPosts(rootCmd *cobra.Command) {
	postsCmd := &cobra.Command{
		Use:   "posts",
		Short: "Manage posts",
	}

	postsCmd.AddCommand(
		listPostsCmd(),
		createPostCmd(),
	)

	rootCmd.AddCommand(postsCmd)
}

// ==========================
// LIST
// ==========================
func listPostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List posts",
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := root.OpenDB(cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			posts, err := repo.NewPostRepo(pool).List(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([][]any, 0, len(posts))
			for _, p := range posts {
				rows = append(rows, []any{p.ID, p.Title, p.UserID})
			}
			output.Listing{Headers: []string{"ID", "Title", "User ID"}, Rows: rows, Noun: "post"}.Print(cmd.OutOrStdout())
			return nil
		},
	}
}

// ==========================
// CREATE
// ==========================
func createPostCmd() *cobra.Command {
	var title, content string
	var userID int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, errs := forms.ParseNewPost(url.Values{
				"title":   {title},
				"content": {content},
				"user_id": {strconv.Itoa(userID)},
			})
			if errs != nil {
				return errs
			}

			pool, err := root.OpenDB(cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			post, err := repo.NewPostRepo(pool).Create(cmd.Context(), input.Title, input.Content, input.UserID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created post %d for user %d\n", post.ID, post.UserID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post body")
	cmd.Flags().IntVar(&userID, "user-id", 0, "id of the authoring user")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/crucial707/postboard/cmd/cli/migrate"
	"github.com/crucial707/postboard/cmd/cli/posts"
	"github.com/crucial707/postboard/cmd/cli/root"
	"github.com/crucial707/postboard/cmd/cli/users"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := root.GetRoot()
	users.InitUsers(rootCmd)
	posts.InitPosts(rootCmd)
	migrate.InitMigrate(rootCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

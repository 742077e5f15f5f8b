package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AI2HU/sitekit/internal/models"
)

var (
	seedCount int
	seedReset bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample posts",
	Long:  `Insert sample posts so paginated pages have something to show.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 50, "Number of posts to create")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Delete existing posts first")
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedCount < 0 {
		return fmt.Errorf("count must not be negative")
	}

	ctx := context.Background()
	app, err := bootApplication(ctx)
	if err != nil {
		return err
	}
	defer app.Shutdown(ctx)

	store, err := postStore(app)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if seedReset {
		deleted, err := store.DeleteAllPosts(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "🗑️  Deleted %d posts\n", deleted)
	}

	for i := 1; i <= seedCount; i++ {
		post := &models.Post{
			Title: fmt.Sprintf("Sample post %d", i),
			Body:  fmt.Sprintf("Body of sample post %d.", i),
		}
		if err := store.CreatePost(ctx, post); err != nil {
			return fmt.Errorf("failed to seed post %d: %w", i, err)
		}
	}

	total, err := store.CountPosts(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, FormatSuccess(fmt.Sprintf("✅ Created %d posts (%d total)", seedCount, total)))
	return nil
}

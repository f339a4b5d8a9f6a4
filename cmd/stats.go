package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kioku-app/kioku/internal/srs"
	"github.com/kioku-app/kioku/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		now := time.Now()
		byStage, err := s.MemoryStates().CountByStage(ctx)
		if err != nil {
			return fmt.Errorf("count stages: %w", err)
		}
		dueNow, err := s.MemoryStates().DueUnitIDs(ctx, now, 0)
		if err != nil {
			return fmt.Errorf("query due units: %w", err)
		}
		dueSoon, err := s.MemoryStates().DueUnitIDs(ctx, now.Add(24*time.Hour), 0)
		if err != nil {
			return fmt.Errorf("query upcoming units: %w", err)
		}
		passed, totalReviews, err := s.Events().ReviewAccuracy(ctx)
		if err != nil {
			return fmt.Errorf("count reviews: %w", err)
		}
		recent, err := s.Batches().Recent(ctx, 10)
		if err != nil {
			return fmt.Errorf("query batches: %w", err)
		}

		fmt.Println("Facets by Stage")
		fmt.Println(strings.Repeat("─", 40))
		for _, st := range []srs.Stage{srs.StageNew, srs.StageLearning, srs.StageReview, srs.StageBurned} {
			fmt.Printf("%-10s  %d\n", st, byStage[st])
		}
		fmt.Println()
		fmt.Printf("Due now:          %d units\n", len(dueNow))
		fmt.Printf("Due within 24h:   %d units\n", len(dueSoon))
		fmt.Printf("Reviews all time: %d\n", totalReviews)
		if totalReviews > 0 {
			fmt.Printf("Accuracy:         %.0f%%\n", 100*float64(passed)/float64(totalReviews))
		}

		if len(recent) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Recent Batches")
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-18s  %-12s  %-7s  %s\n", "Created", "Status", "Items", "Mistakes")
		for _, b := range recent {
			fmt.Printf("%-18s  %-12s  %2d/%-4d  %d\n",
				b.CreatedAt.Local().Format("2006-01-02 15:04"),
				b.Status,
				b.CompletedCount,
				b.TotalCount,
				b.Mistakes,
			)
		}
		return nil
	},
}

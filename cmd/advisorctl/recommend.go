package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pageza/nutristack/backend/config"
	"github.com/pageza/nutristack/backend/internal/server"
	"github.com/pageza/nutristack/backend/internal/types"
)

var (
	recommendUser string
	recommendMax  int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print ranked supplement recommendations for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseUUIDFlag("user", recommendUser)
		if err != nil {
			return err
		}
		return withDB(func(cfg *config.Config, db *gorm.DB) error {
			svcs := server.NewServices(cfg, db, nil)
			recs, err := svcs.Recommendations.GetRecommendations(cmd.Context(), userID, types.RecommendationOptions{MaxProducts: recommendMax})
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recommendations")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "SCORE\tTYPE\tPRODUCT\tNOTES")
			for _, r := range recs {
				notes := append(append([]string{}, r.Reasons...), r.Warnings...)
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", r.Score, r.Product.Type, r.Product.Name, strings.Join(notes, "; "))
			}
			return nil
		})
	},
}

func init() {
	recommendCmd.Flags().StringVar(&recommendUser, "user", "", "User id")
	recommendCmd.Flags().IntVar(&recommendMax, "max", 0, "Maximum number of products (default 10)")
	_ = recommendCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(recommendCmd)
}

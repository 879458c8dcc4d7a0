package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/pageza/nutristack/backend/config"
	"github.com/pageza/nutristack/backend/internal/server"
)

var (
	pricesProduct string
	pricesPackage string
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Compare a product's prices across active stores",
	RunE: func(cmd *cobra.Command, args []string) error {
		productID, err := parseUUIDFlag("product", pricesProduct)
		if err != nil {
			return err
		}
		var packageID *uuid.UUID
		if pricesPackage != "" {
			id, err := parseUUIDFlag("package", pricesPackage)
			if err != nil {
				return err
			}
			packageID = &id
		}

		return withDB(func(cfg *config.Config, db *gorm.DB) error {
			svcs := server.NewServices(cfg, db, nil)
			comparisons, err := svcs.Shopping.CompareProductPrices(cmd.Context(), productID, packageID)
			if err != nil {
				return err
			}
			if len(comparisons) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No prices found")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "STORE\tPRICE\tDELIVERY\tTOTAL")
			for _, c := range comparisons {
				price := c.Price
				if c.DiscountPrice != nil {
					price = *c.DiscountPrice
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.2f\t%.2f\t%.2f\n", c.Store.Name, price, c.Store.DeliveryFeeOrZero(), c.FinalCost)
			}
			return nil
		})
	},
}

func init() {
	pricesCmd.Flags().StringVar(&pricesProduct, "product", "", "Product id")
	pricesCmd.Flags().StringVar(&pricesPackage, "package", "", "Only compare prices for this package id")
	_ = pricesCmd.MarkFlagRequired("product")
	rootCmd.AddCommand(pricesCmd)
}

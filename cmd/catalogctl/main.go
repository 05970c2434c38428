package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kbdigital/ytselleradda/internal/config"
	"github.com/kbdigital/ytselleradda/internal/db"
	"github.com/kbdigital/ytselleradda/internal/middleware"
	"github.com/kbdigital/ytselleradda/internal/model"
	"github.com/kbdigital/ytselleradda/internal/repository"
	"github.com/kbdigital/ytselleradda/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	root := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Inspect the channel catalog and compose inquiries",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("catalog", cfg.CatalogPath, "YAML catalog file (default: built-in seed)")
	root.PersistentFlags().String("database-url", cfg.DatabaseURL, "Postgres URL to read the catalog from")
	_ = viper.BindPFlag("CATALOG_PATH", root.PersistentFlags().Lookup("catalog"))
	_ = viper.BindPFlag("DATABASE_URL", root.PersistentFlags().Lookup("database-url"))

	root.AddCommand(newListCmd(), newComposeCmd(cfg))
	return root
}

// loadRepo reads the catalog from the source selected by flags or environment.
func loadRepo(ctx context.Context) (*repository.ListingRepo, error) {
	var q repository.Querier
	if url := viper.GetString("DATABASE_URL"); url != "" {
		pool, err := db.NewPool(ctx, url)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		q = pool
	}
	listings, _, err := repository.LoadCatalog(ctx, q, viper.GetString("CATALOG_PATH"))
	if err != nil {
		return nil, err
	}
	return repository.NewListingRepo(listings)
}

func newListCmd() *cobra.Command {
	var (
		niche     string
		minSubs   int64
		maxPrice  int64
		monetized string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings matching the given filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			crit := model.FilterCriteria{MinSubs: minSubs, MaxPrice: maxPrice}
			var msg string
			if crit.Niche, msg = middleware.ParseNiche(niche); msg != "" {
				return fmt.Errorf("--niche: %s", msg)
			}
			if crit.Monetized, msg = middleware.ParseMonetized(monetized); msg != "" {
				return fmt.Errorf("--monetized: %s", msg)
			}
			if msg = middleware.ValidateFilterCriteria(&crit); msg != "" {
				return fmt.Errorf("invalid filter: %s", msg)
			}

			repo, err := loadRepo(cmd.Context())
			if err != nil {
				return err
			}
			listings := service.Apply(repo.All(), crit)

			switch strings.ToLower(output) {
			case "json":
				return renderJSON(cmd.OutOrStdout(), listings)
			case "table", "":
				renderTable(cmd.OutOrStdout(), listings)
				return nil
			default:
				return fmt.Errorf("unknown output %q (want table or json)", output)
			}
		},
	}

	cmd.Flags().StringVar(&niche, "niche", string(model.NicheAll), "niche to show, or All")
	cmd.Flags().Int64Var(&minSubs, "min-subs", 0, "minimum subscribers")
	cmd.Flags().Int64Var(&maxPrice, "max-price", model.DefaultMaxPrice, "maximum asking price in rupees")
	cmd.Flags().StringVar(&monetized, "monetized", string(model.MonetizedAll), "All, Yes or No")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "table or json")
	return cmd
}

func newComposeCmd(cfg *config.Config) *cobra.Command {
	links := service.ChatLinks{WhatsAppNumber: cfg.WhatsAppNumber, Email: cfg.ContactEmail}

	compose := &cobra.Command{
		Use:   "compose",
		Short: "Compose a buy inquiry, sell submission or course enquiry and print its chat link",
	}

	buy := &cobra.Command{
		Use:   "buy <listing-id> [message...]",
		Short: "Compose a buyer's inquiry about a listing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := loadRepo(cmd.Context())
			if err != nil {
				return err
			}
			listing, err := repo.FindByID(args[0])
			if err != nil {
				return fmt.Errorf("listing %s: %w", args[0], err)
			}
			msg := service.ComposeBuyInquiry(listing, strings.Join(args[1:], " "))
			printInquiry(cmd, msg, links.Chat(msg))
			return nil
		},
	}

	var sub model.SellSubmission
	sell := &cobra.Command{
		Use:   "sell",
		Short: "Compose a seller's listing request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if msg := middleware.ValidateSellSubmission(&sub); msg != "" {
				return fmt.Errorf("invalid submission: %s", msg)
			}
			msg := service.ComposeSellSubmission(sub)
			printInquiry(cmd, msg, links.Chat(msg))
			return nil
		},
	}
	f := sell.Flags()
	f.StringVar(&sub.Name, "name", "", "channel name")
	f.StringVar(&sub.ChannelLink, "link", "", "channel URL")
	f.StringVar(&sub.Niche, "niche", "", "channel niche")
	f.StringVar(&sub.Subscribers, "subscribers", "", "subscriber count")
	f.StringVar(&sub.WatchHours, "watch-hours", "", "public watch hours")
	f.StringVar(&sub.Monetized, "monetized", "", "monetization status")
	f.StringVar(&sub.MonthlyRevenue, "monthly-revenue", "", "monthly revenue in rupees")
	f.StringVar(&sub.AskingPrice, "asking-price", "", "asking price in rupees")
	f.StringVar(&sub.Phone, "phone", "", "contact number")
	f.StringVar(&sub.Description, "description", "", "free-text description")

	course := &cobra.Command{
		Use:   "course <course-id>",
		Short: "Compose an enquiry about a learning course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := config.FindCourse(config.DefaultSite, args[0])
			if !ok {
				return fmt.Errorf("course %s: %w", args[0], service.ErrCourseNotFound)
			}
			msg := service.ComposeCourseInquiry(c)
			printInquiry(cmd, msg, links.Chat(msg))
			return nil
		},
	}

	compose.AddCommand(buy, sell, course)
	return compose
}

func printInquiry(cmd *cobra.Command, msg, chatURL string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, msg)
	fmt.Fprintln(out)
	fmt.Fprintln(out, chatURL)
}

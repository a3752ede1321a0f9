package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/armory/battlenet"
	"github.com/s0up4200/armory/filter"
	"github.com/s0up4200/armory/format"
)

// maxRegionRequests bounds the calls in flight at once
const maxRegionRequests = 4

var (
	realmRegions []string
	realmWhere   string
)

// realmsCmd represents the realms command
var realmsCmd = &cobra.Command{
	Use:   "realms",
	Short: "Show realm status across regions",
	Long: `Fetch the realm status list of several regions concurrently and print it.

Examples:
  armory realms
  armory realms --regions eu --where 'population == "high"'
  armory realms --where 'not status' -o yaml`,
	Args:    cobra.NoArgs,
	PreRunE: initializeApp,
	RunE:    runRealms,
}

func init() {
	rootCmd.AddCommand(realmsCmd)

	realmsCmd.Flags().StringSliceVar(&realmRegions, "regions", nil, "regions to query (default from config)")
	realmsCmd.Flags().StringVarP(&realmWhere, "where", "w", "", "filter expression applied to each realm")
}

func runRealms(cmd *cobra.Command, args []string) error {
	regions := realmRegions
	if len(regions) == 0 {
		regions = cfg.BattleNet.Regions
	}
	if len(regions) == 0 {
		regions = []string{string(client.Region())}
	}

	var f filter.Filter
	if realmWhere != "" {
		compiled, err := filters.Compile(realmWhere)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		f = compiled
	}

	groups := fetchRealmGroups(cmd.Context(), client, regions, f)

	if cmd.Flags().Changed("output") {
		return writeOutput(os.Stdout, groups)
	}
	fmt.Print(format.NewConsoleFormatter().FormatRealmStatus(groups))
	return nil
}

// fetchRealmGroups queries every region concurrently. A failing region is
// reported in its group and does not cancel the others.
func fetchRealmGroups(ctx context.Context, api battlenet.API, regions []string, f filter.Filter) []format.RegionRealms {
	groups := make([]format.RegionRealms, len(regions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxRegionRequests)

	for i, region := range regions {
		g.Go(func() error {
			group := format.RegionRealms{Region: battlenet.Region(region)}
			group.Realms, group.Err = fetchRealms(ctx, api, group.Region, f)
			if group.Err != nil {
				group.Error = battlenet.RedactError(group.Err)
				logger.Warn().Str("error", group.Error).Str("region", region).Msg("Failed to fetch realm status")
			}
			groups[i] = group
			return nil
		})
	}

	_ = g.Wait()
	return groups
}

func fetchRealms(ctx context.Context, api battlenet.API, region battlenet.Region, f filter.Filter) ([]battlenet.Realm, error) {
	resp, err := api.Realm(ctx, battlenet.Params{battlenet.ParamRegion: string(region)})
	if err != nil {
		return nil, err
	}

	records, err := filter.Select(resp.Data, "realms")
	if err != nil {
		return nil, err
	}
	records = filter.Apply(f, records)

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode realms: %w", err)
	}
	var realms []battlenet.Realm
	if err := json.Unmarshal(raw, &realms); err != nil {
		return nil, fmt.Errorf("failed to decode realms: %w", err)
	}
	return realms, nil
}

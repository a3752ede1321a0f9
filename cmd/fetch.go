package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/armory/battlenet"
	"github.com/s0up4200/armory/filter"
)

var (
	fetchRegion string
	fetchLocale string
	selectPath  string
	whereExpr   string
	preset      string
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch <resource> [key=value ...]",
	Short: "Fetch a resource from the Battle.net API",
	Long: `Fetch any catalog resource. Path parameters and extra query parameters are
given as key=value pairs, for example:

  armory fetch item id=72096
  armory fetch character realm=medivh name=yufa fields=guild,feed
  armory fetch realm --select realms --where 'population == "high" and not queue'

Use 'armory resources' to list the catalog and the parameters each resource needs.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: initializeApp,
	RunE:    runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchRegion, "region", "r", "", "region for this call (default from config)")
	fetchCmd.Flags().StringVarP(&fetchLocale, "locale", "l", "", "response locale (default en_US)")
	fetchCmd.Flags().StringVarP(&selectPath, "select", "s", "", "dotted path to a list inside the response, e.g. realms")
	fetchCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression applied to the selected records")
	fetchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runFetch(cmd *cobra.Command, args []string) error {
	resource, ok := battlenet.ParseResource(args[0])
	if !ok {
		return fmt.Errorf("unknown resource '%s' (see 'armory resources')", args[0])
	}

	params, err := parseParams(args[1:])
	if err != nil {
		return err
	}
	if fetchRegion != "" {
		params[battlenet.ParamRegion] = fetchRegion
	}
	if fetchLocale != "" {
		params[battlenet.ParamLocale] = fetchLocale
	}

	f, path, err := resolveFilter()
	if err != nil {
		return err
	}

	logger.Info().Str("resource", string(resource)).Msg("Fetching resource")

	resp, err := client.Call(cmd.Context(), resource, params)
	if err != nil {
		return describeError(resource, err)
	}

	out, err := narrow(resp.Data, path, f)
	if err != nil {
		return err
	}

	return writeOutput(os.Stdout, out)
}

// parseParams turns key=value arguments into call parameters
func parseParams(args []string) (battlenet.Params, error) {
	params := make(battlenet.Params, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter '%s' (expected key=value)", arg)
		}
		params[key] = value
	}
	return params, nil
}

// resolveFilter picks the filter and selector from --where, --preset and --select.
// --where and --select take priority over the preset's own values.
func resolveFilter() (filter.Filter, string, error) {
	path := selectPath
	if whereExpr != "" {
		f, err := filters.Compile(whereExpr)
		if err != nil {
			return nil, "", fmt.Errorf("invalid filter expression: %w", err)
		}
		return f, path, nil
	}

	if preset != "" {
		p, ok := cfg.Filter.Presets[preset]
		if !ok {
			return nil, "", fmt.Errorf("preset '%s' not found in config", preset)
		}
		f, _ := filters.GetFilter(preset)
		if path == "" {
			path = p.Select
		}
		return f, path, nil
	}

	return nil, path, nil
}

// narrow selects records from data and keeps those matching f.
// Without a selector or filter data is returned as is.
func narrow(data any, path string, f filter.Filter) (any, error) {
	if path == "" && f == nil {
		return data, nil
	}

	records, err := filter.Select(data, path)
	if err != nil {
		return nil, err
	}

	matched := filter.Apply(f, records)
	logger.Debug().
		Int("selected", len(records)).
		Int("matched", len(matched)).
		Msg("Filtered response")
	return matched, nil
}

// describeError adds context for the error kinds a user can act on
func describeError(resource battlenet.Resource, err error) error {
	var apiErr *battlenet.APIError
	switch {
	case errors.Is(err, battlenet.ErrMissingPathParam):
		return fmt.Errorf("%w (required: %s)", err, strings.Join(battlenet.Placeholders(resource.Template()), ", "))
	case errors.As(err, &apiErr) && apiErr.IsUnauthorized():
		return fmt.Errorf("API key rejected: %w", err)
	default:
		return fmt.Errorf("failed to fetch %s: %w", resource, err)
	}
}

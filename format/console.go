package format

import (
	"fmt"
	"strings"

	"github.com/s0up4200/armory/battlenet"
)

// ConsoleFormatter provides console output for catalog and realm listings
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatResources lists the catalog with the parameters each resource needs
func (f *ConsoleFormatter) FormatResources(resources []battlenet.Resource) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nResources (%d):\n\n", len(resources))
	for _, r := range resources {
		fmt.Fprintf(&sb, "  %-18s %s", r, r.Template())
		if params := battlenet.Placeholders(r.Template()); len(params) > 0 {
			fmt.Fprintf(&sb, "  [requires: %s]", strings.Join(params, ", "))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// RegionRealms groups the realm listing of one region
type RegionRealms struct {
	Region battlenet.Region  `json:"region" yaml:"region"`
	Realms []battlenet.Realm `json:"realms" yaml:"realms"`
	// Error is Err's message, for encoded output
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	Err   error  `json:"-" yaml:"-"`
}

// FormatRealmStatus renders realm status per region
func (f *ConsoleFormatter) FormatRealmStatus(groups []RegionRealms) string {
	var sb strings.Builder

	for _, g := range groups {
		fmt.Fprintf(&sb, "\n%s\n", strings.ToUpper(string(g.Region)))
		sb.WriteString(strings.Repeat("━", 50))
		sb.WriteString("\n")

		if g.Err != nil {
			fmt.Fprintf(&sb, "✗ %v\n", g.Err)
			continue
		}
		if len(g.Realms) == 0 {
			sb.WriteString("No realms found\n")
			continue
		}

		var online int
		for i, realm := range g.Realms {
			f.formatRealm(&sb, realm, i == len(g.Realms)-1)
			if realm.IsOnline() {
				online++
			}
		}
		fmt.Fprintf(&sb, "\n%d of %d realm", online, len(g.Realms))
		if len(g.Realms) != 1 {
			sb.WriteString("s")
		}
		sb.WriteString(" online\n")
	}

	return sb.String()
}

func (f *ConsoleFormatter) formatRealm(sb *strings.Builder, realm battlenet.Realm, isLast bool) {
	branch := "├─"
	if isLast {
		branch = "└─"
	}

	status := "✓"
	if !realm.IsOnline() {
		status = "✗"
	}

	fmt.Fprintf(sb, "%s %s %s", branch, status, realm.Name)
	var details []string
	if realm.Type != "" {
		details = append(details, strings.ToUpper(realm.Type))
	}
	if realm.Population != "" {
		details = append(details, realm.Population)
	}
	if realm.Queue {
		details = append(details, "queue")
	}
	if len(details) > 0 {
		fmt.Fprintf(sb, " (%s)", strings.Join(details, ", "))
	}
	sb.WriteString("\n")
}

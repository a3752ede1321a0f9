package battlenet

import (
	"regexp"
	"strings"
)

// Resource names a remote endpoint of the WoW community API
type Resource string

const (
	ResourceAchievement       Resource = "achievement"
	ResourceAuction           Resource = "auction"
	ResourceBattlePetAbility  Resource = "battlePetAbility"
	ResourceBattlePetSpecies  Resource = "battlePetSpecies"
	ResourceBattlePetStats    Resource = "battlePetStats"
	ResourceChallengeRealm    Resource = "challengeRealm"
	ResourceChallengeRegion   Resource = "challengeRegion"
	ResourceCharacter         Resource = "character"
	ResourceItem              Resource = "item"
	ResourceItemSet           Resource = "itemSet"
	ResourceGuild             Resource = "guild"
	ResourcePvPLeaderboards   Resource = "pvpLeaderboards"
	ResourceQuest             Resource = "quest"
	ResourceRealm             Resource = "realm"
	ResourceRecipe            Resource = "recipe"
	ResourceSpell             Resource = "spell"
	ResourceBattlegroups      Resource = "battlegroups"
	ResourceRaces             Resource = "races"
	ResourceClasses           Resource = "classes"
	ResourceAchievements      Resource = "achievements"
	ResourceGuildRewards      Resource = "guildRewards"
	ResourceGuildPerks        Resource = "guildPerks"
	ResourceGuildAchievements Resource = "guildAchievements"
	ResourceItemClasses       Resource = "itemClasses"
	ResourceTalents           Resource = "talents"
	ResourcePetTypes          Resource = "petTypes"
)

// Region identifies a regional API deployment
type Region string

const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
)

// DefaultRegion is used when neither the client nor the call names a region
const DefaultRegion = RegionUS

// DefaultLocale is sent with every call that does not carry its own locale
const DefaultLocale = "en_US"

// catalog keeps the resources in a stable order for listing
var catalog = []struct {
	resource Resource
	template string
}{
	{ResourceAchievement, "/wow/achievement/:id"},
	{ResourceAuction, "/wow/auction/data/:realm"},
	{ResourceBattlePetAbility, "/wow/battlePet/ability/:id"},
	{ResourceBattlePetSpecies, "/wow/battlePet/species/:id"},
	{ResourceBattlePetStats, "/wow/battlePet/stats/:id"},
	{ResourceChallengeRealm, "/wow/challenge/:realm"},
	{ResourceChallengeRegion, "/wow/challenge/region"},
	{ResourceCharacter, "/wow/character/:realm/:name"},
	{ResourceItem, "/wow/item/:id"},
	{ResourceItemSet, "/wow/item/set/:id"},
	{ResourceGuild, "/wow/guild/:realm/:name"},
	{ResourcePvPLeaderboards, "/wow/leaderboard/:bracket"},
	{ResourceQuest, "/wow/quest/:id"},
	{ResourceRealm, "/wow/realm/status"},
	{ResourceRecipe, "/wow/recipe/:id"},
	{ResourceSpell, "/wow/spell/:id"},
	{ResourceBattlegroups, "/wow/data/battlegroups/"},
	{ResourceRaces, "/wow/data/character/races"},
	{ResourceClasses, "/wow/data/character/classes"},
	{ResourceAchievements, "/wow/data/character/achievements"},
	{ResourceGuildRewards, "/wow/data/guild/rewards"},
	{ResourceGuildPerks, "/wow/data/guild/perks"},
	{ResourceGuildAchievements, "/wow/data/guild/achievements"},
	{ResourceItemClasses, "/wow/data/item/classes"},
	{ResourceTalents, "/wow/data/talents"},
	{ResourcePetTypes, "/wow/data/pet/types"},
}

var paths = func() map[Resource]string {
	m := make(map[Resource]string, len(catalog))
	for _, e := range catalog {
		m[e.resource] = e.template
	}
	return m
}()

// hosts is the single source of truth for which regions are live.
var hosts = map[Region]string{
	RegionUS: "us.api.battle.net",
	RegionEU: "eu.api.battle.net",
}

var placeholderRe = regexp.MustCompile(`:([A-Za-z0-9_]+)`)

// Resources returns every catalog resource in declaration order
func Resources() []Resource {
	out := make([]Resource, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, e.resource)
	}
	return out
}

// ParseResource looks up a resource by name, ignoring case
func ParseResource(name string) (Resource, bool) {
	for _, e := range catalog {
		if strings.EqualFold(string(e.resource), name) {
			return e.resource, true
		}
	}
	return "", false
}

// Regions returns the supported regions sorted by code
func Regions() []Region {
	return []Region{RegionEU, RegionUS}
}

// ResolvePath returns the path template of a resource
func ResolvePath(r Resource) (string, error) {
	tmpl, ok := paths[r]
	if !ok {
		return "", &ConfigError{Field: "resource", Reason: string(r), Err: ErrUnknownResource}
	}
	return tmpl, nil
}

// ResolveHost returns the API host of a region
func ResolveHost(region Region) (string, error) {
	return resolveHost(hosts, region)
}

func resolveHost(table map[Region]string, region Region) (string, error) {
	host, ok := table[region]
	if !ok {
		return "", &ConfigError{Field: "region", Reason: string(region), Err: ErrUnsupportedRegion}
	}
	return host, nil
}

// Template returns the path template, or an empty string for unknown resources
func (r Resource) Template() string {
	return paths[r]
}

// Placeholders lists the :name tokens of a template in order of appearance
func Placeholders(template string) []string {
	matches := placeholderRe.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

package battlenet

import "context"

// Achievement returns a single achievement. Requires id.
func (c *Client) Achievement(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceAchievement, params)
}

// Auction returns the auction data file listing of a realm. Requires realm.
func (c *Client) Auction(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceAuction, params)
}

// BattlePetAbility returns a battle pet ability. Requires id.
func (c *Client) BattlePetAbility(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceBattlePetAbility, params)
}

// BattlePetSpecies returns a battle pet species. Requires id.
func (c *Client) BattlePetSpecies(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceBattlePetSpecies, params)
}

// BattlePetStats returns the stats of a battle pet species. Requires id; level, breedId and qualityId go to the query.
func (c *Client) BattlePetStats(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceBattlePetStats, params)
}

// ChallengeRealm returns the challenge mode leaderboard of a realm. Requires realm.
func (c *Client) ChallengeRealm(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceChallengeRealm, params)
}

// ChallengeRegion returns the region wide challenge mode leaderboard.
func (c *Client) ChallengeRegion(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceChallengeRegion, params)
}

// Character returns a character profile. Requires realm and name; pass fields to expand it.
func (c *Client) Character(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceCharacter, params)
}

// Item returns a single item. Requires id.
func (c *Client) Item(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceItem, params)
}

// ItemSet returns an item set. Requires id.
func (c *Client) ItemSet(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceItemSet, params)
}

// Guild returns a guild profile. Requires realm and name; pass fields to expand it.
func (c *Client) Guild(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceGuild, params)
}

// PvPLeaderboards returns a PvP leaderboard. Requires bracket (2v2, 3v3, 5v5 or rbg).
func (c *Client) PvPLeaderboards(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourcePvPLeaderboards, params)
}

// Quest returns a quest. Requires id.
func (c *Client) Quest(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceQuest, params)
}

// Realm returns the realm status list.
func (c *Client) Realm(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceRealm, params)
}

// Recipe returns a recipe. Requires id.
func (c *Client) Recipe(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceRecipe, params)
}

// Spell returns a spell. Requires id.
func (c *Client) Spell(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceSpell, params)
}

// Battlegroups returns the battlegroups of the region.
func (c *Client) Battlegroups(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceBattlegroups, params)
}

// Races returns the playable races.
func (c *Client) Races(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceRaces, params)
}

// Classes returns the playable classes.
func (c *Client) Classes(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceClasses, params)
}

// Achievements returns the character achievement catalog.
func (c *Client) Achievements(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceAchievements, params)
}

// GuildRewards returns the guild rewards.
func (c *Client) GuildRewards(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceGuildRewards, params)
}

// GuildPerks returns the guild perks.
func (c *Client) GuildPerks(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceGuildPerks, params)
}

// GuildAchievements returns the guild achievement catalog.
func (c *Client) GuildAchievements(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceGuildAchievements, params)
}

// ItemClasses returns the item classes.
func (c *Client) ItemClasses(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceItemClasses, params)
}

// Talents returns the talent trees of every class.
func (c *Client) Talents(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourceTalents, params)
}

// PetTypes returns the battle pet types.
func (c *Client) PetTypes(ctx context.Context, params Params) (*Response, error) {
	return c.Call(ctx, ResourcePetTypes, params)
}

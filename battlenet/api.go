package battlenet

import (
	"context"
)

// API defines the per-resource surface of the Battle.net client
type API interface {
	// Call performs a GET against any catalog resource
	Call(ctx context.Context, resource Resource, params Params) (*Response, error)

	// Ping verifies the client can reach the API with its key
	Ping(ctx context.Context) error

	Achievement(ctx context.Context, params Params) (*Response, error)
	Auction(ctx context.Context, params Params) (*Response, error)
	BattlePetAbility(ctx context.Context, params Params) (*Response, error)
	BattlePetSpecies(ctx context.Context, params Params) (*Response, error)
	BattlePetStats(ctx context.Context, params Params) (*Response, error)
	ChallengeRealm(ctx context.Context, params Params) (*Response, error)
	ChallengeRegion(ctx context.Context, params Params) (*Response, error)
	Character(ctx context.Context, params Params) (*Response, error)
	Item(ctx context.Context, params Params) (*Response, error)
	ItemSet(ctx context.Context, params Params) (*Response, error)
	Guild(ctx context.Context, params Params) (*Response, error)
	PvPLeaderboards(ctx context.Context, params Params) (*Response, error)
	Quest(ctx context.Context, params Params) (*Response, error)
	Realm(ctx context.Context, params Params) (*Response, error)
	Recipe(ctx context.Context, params Params) (*Response, error)
	Spell(ctx context.Context, params Params) (*Response, error)
	Battlegroups(ctx context.Context, params Params) (*Response, error)
	Races(ctx context.Context, params Params) (*Response, error)
	Classes(ctx context.Context, params Params) (*Response, error)
	Achievements(ctx context.Context, params Params) (*Response, error)
	GuildRewards(ctx context.Context, params Params) (*Response, error)
	GuildPerks(ctx context.Context, params Params) (*Response, error)
	GuildAchievements(ctx context.Context, params Params) (*Response, error)
	ItemClasses(ctx context.Context, params Params) (*Response, error)
	Talents(ctx context.Context, params Params) (*Response, error)
	PetTypes(ctx context.Context, params Params) (*Response, error)
}

var _ API = (*Client)(nil)

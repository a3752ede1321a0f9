package battlenet

import (
	"context"
	"fmt"
	"time"
)

// Realm is one entry of the realm status resource
type Realm struct {
	Type        string   `json:"type"`
	Population  string   `json:"population"`
	Queue       bool     `json:"queue"`
	Status      bool     `json:"status"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Battlegroup string   `json:"battlegroup"`
	Locale      string   `json:"locale"`
	Timezone    string   `json:"timezone"`
	ConnectedTo []string `json:"connected_realms,omitempty"`
}

// IsOnline reports whether the realm is up
func (r Realm) IsOnline() bool {
	return r.Status
}

// RealmStatus is the body of the realm status resource
type RealmStatus struct {
	Realms []Realm `json:"realms"`
}

// AuctionFile points at a downloadable auction house dump
type AuctionFile struct {
	URL          string `json:"url"`
	LastModified int64  `json:"lastModified"`
}

// Modified returns LastModified as a time; the API reports milliseconds
func (f AuctionFile) Modified() time.Time {
	return time.UnixMilli(f.LastModified)
}

// AuctionData is the body of the auction resource
type AuctionData struct {
	Files []AuctionFile `json:"files"`
}

// Item is a subset of the item resource
type Item struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	ItemLevel     int    `json:"itemLevel"`
	Quality       int    `json:"quality"`
	RequiredLevel int    `json:"requiredLevel"`
	Stackable     int    `json:"stackable"`
}

// Character is a subset of the character profile
type Character struct {
	LastModified      int64  `json:"lastModified"`
	Name              string `json:"name"`
	Realm             string `json:"realm"`
	Battlegroup       string `json:"battlegroup"`
	Class             int    `json:"class"`
	Race              int    `json:"race"`
	Gender            int    `json:"gender"`
	Level             int    `json:"level"`
	AchievementPoints int    `json:"achievementPoints"`
	Thumbnail         string `json:"thumbnail"`
	Faction           int    `json:"faction"`
}

// GetRealmStatus fetches the realm status list of a region.
// An empty region uses the client default.
func (c *Client) GetRealmStatus(ctx context.Context, region Region) (*RealmStatus, error) {
	params := Params{}
	if region != "" {
		params[ParamRegion] = string(region)
	}
	resp, err := c.Realm(ctx, params)
	if err != nil {
		return nil, err
	}

	var status RealmStatus
	if err := resp.Decode(&status); err != nil {
		return nil, err
	}
	c.logger.Debug().
		Str("region", string(region)).
		Int("count", len(status.Realms)).
		Msg("Retrieved realm status from Battle.net")
	return &status, nil
}

// GetAuctionData fetches the auction file listing of a realm
func (c *Client) GetAuctionData(ctx context.Context, realm string) (*AuctionData, error) {
	resp, err := c.Auction(ctx, Params{"realm": realm})
	if err != nil {
		return nil, err
	}

	var data AuctionData
	if err := resp.Decode(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetItem fetches an item by id
func (c *Client) GetItem(ctx context.Context, id int) (*Item, error) {
	resp, err := c.Item(ctx, Params{"id": id})
	if err != nil {
		return nil, err
	}

	var item Item
	if err := resp.Decode(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetCharacter fetches a character profile; fields selects optional sections
func (c *Client) GetCharacter(ctx context.Context, realm, name string, fields ...string) (*Character, error) {
	params := Params{"realm": realm, "name": name}
	if len(fields) > 0 {
		params["fields"] = fields
	}
	resp, err := c.Character(ctx, params)
	if err != nil {
		return nil, err
	}

	var ch Character
	if err := resp.Decode(&ch); err != nil {
		return nil, fmt.Errorf("character %s-%s: %w", name, realm, err)
	}
	return &ch, nil
}

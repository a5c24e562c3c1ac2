package models

// LootRequest is the JSON payload POSTed to the n8n webhook for one lookup.
// All values are strings; optional fields are omitted when empty.
type LootRequest struct {
	Content   string `json:"content"`
	ChannelID string `json:"channel_id"`
	AuthorID  string `json:"author_id"`
	Username  string `json:"username"`
	GuildID   string `json:"guild_id,omitempty"`
	GuildName string `json:"guild_name,omitempty"`
	Item      string `json:"item,omitempty"`
}

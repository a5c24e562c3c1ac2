package models

type DiscordMessageEvent struct {
	GuildID   string
	ChannelID string
	MessageID string
	UserID    string
	Username  string
	Content   string
	// FromBot is true when the message was authored by a bot (including ourselves)
	FromBot bool
}

type DiscordCommandEvent struct {
	// GuildID is empty when the command was invoked from a DM
	GuildID   string
	ChannelID string
	UserID    string
	Username  string
	// Item is the parsed value of the command's item argument
	Item string
}

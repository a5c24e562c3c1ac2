package clients

// DiscordGuild represents Discord guild information
type DiscordGuild struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

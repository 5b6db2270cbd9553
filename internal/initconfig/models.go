// filepath: internal/initconfig/models.go
package initconfig

// SeedConfig is the root struct for parsing the TOML seed file.
type SeedConfig struct {
	Lists []SeedList `toml:"list"`
}

// SeedList represents a todo list entry in the TOML seed file.
type SeedList struct {
	Title string     `toml:"title"`
	Items []SeedItem `toml:"item"`
}

// SeedItem represents an item of a seeded list.
type SeedItem struct {
	Title   string `toml:"title"`
	Checked bool   `toml:"checked"`
}

// Report summarises what a seed run changed.
type Report struct {
	ListsCreated int
	ListsSkipped int
	ItemsCreated int
	ItemsChecked int
	Failures     int
}

package entity

// StandupEntry is a committed standup status for one author on one date.
type StandupEntry struct {
	ID        int64
	Date      string // YYYY-MM-DD
	Yesterday string
	Today     string
	Blockers  string
	Author    string
}

// TimezoneGroup pairs an IANA timezone name with the users living in it.
// Groups are loaded from configuration and read-only at runtime.
type TimezoneGroup struct {
	Timezone string   `mapstructure:"timezone"`
	Users    []string `mapstructure:"users"`
}

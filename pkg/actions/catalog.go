// Package actions holds the fixed catalog of operations the dashboard offers.
package actions

import "strings"

// Prompt describes the value an action asks for before it can run.
type Prompt struct {
	Label           string // shown above the inline prompt
	Required        bool   // an empty value with no previous value is rejected
	RequiredMessage string // status shown when a required value is missing
	StripPrefix     string // removed from the front of the committed value, e.g. "@"
}

// Action is a single selectable catalog entry.
type Action struct {
	Key      string
	Label    string
	Aliases  []string
	Hint     string
	Summary  string
	Example  string
	CostHint string

	Prompt *Prompt // nil when the action runs without a value
	Quit   bool    // selecting the action closes the dashboard
}

// Catalog is an ordered, read-only list of actions. Its order is the
// navigation order of the dashboard menu.
type Catalog []Action

// Default is the xint action catalog.
var Default = Catalog{
	{
		Key:      "1",
		Label:    "Search",
		Aliases:  []string{"search", "s"},
		Hint:     "keyword, topic, or boolean query",
		Summary:  "Discover relevant posts with ranked result quality.",
		Example:  `xint search "open-source ai agents"`,
		CostHint: "Low-medium (depends on query depth)",
		Prompt:   &Prompt{Label: "Search query", Required: true, RequiredMessage: "query is required"},
	},
	{
		Key:      "2",
		Label:    "Trends",
		Aliases:  []string{"trends", "trend", "t"},
		Hint:     "location name or blank for global",
		Summary:  "Surface current trend clusters globally or by location.",
		Example:  `xint trends "San Francisco"`,
		CostHint: "Low",
		Prompt:   &Prompt{Label: "Location (blank for worldwide)"},
	},
	{
		Key:      "3",
		Label:    "Profile",
		Aliases:  []string{"profile", "user", "p"},
		Hint:     "username (without @)",
		Summary:  "Inspect profile metadata and recent activity context.",
		Example:  "xint profile 0xNyk",
		CostHint: "Low",
		Prompt:   &Prompt{Label: "Username (@optional)", Required: true, RequiredMessage: "username is required", StripPrefix: "@"},
	},
	{
		Key:      "4",
		Label:    "Thread",
		Aliases:  []string{"thread", "th"},
		Hint:     "tweet id or tweet url",
		Summary:  "Expand a tweet into threaded conversation context.",
		Example:  "xint thread https://x.com/.../status/...",
		CostHint: "Medium",
		Prompt:   &Prompt{Label: "Tweet ID or URL", Required: true, RequiredMessage: "tweet id/url is required"},
	},
	{
		Key:      "5",
		Label:    "Article",
		Aliases:  []string{"article", "a"},
		Hint:     "article url or tweet url",
		Summary:  "Fetch article content from URL or tweet-linked article.",
		Example:  "xint article https://x.com/.../status/...",
		CostHint: "Medium-high (fetch + parse)",
		Prompt:   &Prompt{Label: "Article URL or Tweet URL", Required: true, RequiredMessage: "article url is required"},
	},
	{
		Key:      "6",
		Label:    "Help",
		Aliases:  []string{"help", "h", "?"},
		Hint:     "show full CLI help",
		Summary:  "Display full command reference and flags.",
		Example:  "xint --help",
		CostHint: "None",
	},
	{
		Key:      "0",
		Label:    "Exit",
		Aliases:  []string{"exit", "quit", "q"},
		Hint:     "close interactive mode",
		Summary:  "Exit interactive dashboard.",
		Example:  "q",
		CostHint: "None",
		Quit:     true,
	},
}

// Normalize resolves a key or alias, in any case, to the action key.
// It returns "" when nothing matches.
func (c Catalog) Normalize(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return ""
	}
	for _, action := range c {
		if action.Key == value {
			return action.Key
		}
	}
	for _, action := range c {
		for _, alias := range action.Aliases {
			if strings.EqualFold(alias, value) {
				return action.Key
			}
		}
	}
	return ""
}

// Lookup returns the action a key or alias resolves to.
func (c Catalog) Lookup(raw string) (Action, bool) {
	idx := c.Index(c.Normalize(raw))
	if idx < 0 {
		return Action{}, false
	}
	return c[idx], true
}

// Index returns the catalog position of the action with the given key, or -1.
func (c Catalog) Index(key string) int {
	if key == "" {
		return -1
	}
	for i, action := range c {
		if action.Key == key {
			return i
		}
	}
	return -1
}

// At returns the action at a catalog position, wrapping out-of-range indexes
// into the catalog.
func (c Catalog) At(index int) Action {
	if len(c) == 0 {
		return Action{}
	}
	return c[Wrap(index, len(c))]
}

// Wrap maps any integer onto [0, n) using modular arithmetic.
func Wrap(index, n int) int {
	if n <= 0 {
		return 0
	}
	index %= n
	if index < 0 {
		index += n
	}
	return index
}

package model

// Channel is the top level of a feed. Optional strings are empty when
// unset, optional structs are nil.
type Channel struct {
	Title         string    `yaml:"title" validate:"required"`
	Description   string    `yaml:"description" validate:"required"`
	Link          string    `yaml:"link" validate:"required,url"`
	LastBuildDate Timestamp `yaml:"lastBuildDate"`
	Generator     string    `yaml:"generator,omitempty"`
	// SiteURL is joined with each Item.Path to form item links.
	SiteURL   string    `yaml:"siteURL" validate:"required,url"`
	Locked    bool      `yaml:"locked"`
	LockOwner string    `yaml:"lockOwner" validate:"required,email"`
	Funding   []Funding `yaml:"funding,omitempty" validate:"dive"`
	Persons   []Person  `yaml:"persons,omitempty" validate:"dive"`
	Location  *Location `yaml:"location,omitempty"`
	License   License   `yaml:"license"`
	Value     Value     `yaml:"value"`
	Items     []Item    `yaml:"items" validate:"dive"`
}

// ContainsItem returns the index of the item with path p in the
// Items slice or -1 if there is no such item.
func (c *Channel) ContainsItem(p string) int {
	for idx := range c.Items {
		if c.Items[idx].Path == p {
			return idx
		}
	}
	return -1
}

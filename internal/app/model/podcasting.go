package model

// Types below map to elements of the Podcasting 2.0 namespace
// (https://podcastindex.org/namespace/1.0) shared by channels and
// items.

type Person struct {
	Name  string `yaml:"name" validate:"required"`
	Role  string `yaml:"role,omitempty"`
	Group string `yaml:"group,omitempty"`
	Img   string `yaml:"img,omitempty" validate:"omitempty,url"`
	Href  string `yaml:"href,omitempty" validate:"omitempty,url"`
}

type Funding struct {
	URL  string `yaml:"url" validate:"required,url"`
	Text string `yaml:"text"`
}

type Location struct {
	Name string `yaml:"name" validate:"required"`
	Geo  string `yaml:"geo,omitempty"`
	OSM  string `yaml:"osm,omitempty"`
}

type License struct {
	Name string `yaml:"name" validate:"required"`
	URL  string `yaml:"url" validate:"required,url"`
}

// Value configures streaming payments, usually type "lightning" and
// method "keysend". Splits are relative weights, nothing checks that
// they add up to 100.
type Value struct {
	Type       string           `yaml:"type" validate:"required"`
	Method     string           `yaml:"method" validate:"required"`
	Recipients []ValueRecipient `yaml:"recipients" validate:"dive"`
}

type ValueRecipient struct {
	Name    string `yaml:"name" validate:"required"`
	Type    string `yaml:"type" validate:"required"`
	Address string `yaml:"address" validate:"required"`
	Split   int    `yaml:"split" validate:"gte=0"`
}

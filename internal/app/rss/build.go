package rss

import (
	"github.com/sa6mwa/podfeed/internal/app/model"
	"github.com/sa6mwa/podfeed/internal/app/xmltree"
)

// Namespace URIs declared on the rss element.
const (
	NamespaceDC      = "http://purl.org/dc/elements/1.1/"
	NamespaceContent = "http://purl.org/rss/1.0/modules/content/"
	NamespaceAtom    = "http://www.w3.org/2005/Atom"
	NamespacePodcast = "https://podcastindex.org/namespace/1.0"
)

// Child order in every builder below is fixed.

type attr = xmltree.Attr

func a(name, value string) attr { return xmltree.A(name, value) }

func required(attrs ...attr) []attr { return attrs }

// BuildRSS returns the rss root element of c.
func BuildRSS(c *model.Channel) *xmltree.Node {
	return xmltree.Element("rss",
		a("xmlns:dc", NamespaceDC),
		a("xmlns:content", NamespaceContent),
		a("xmlns:atom", NamespaceAtom),
		a("xmlns:podcast", NamespacePodcast),
		a("version", "2.0"),
	).Append(BuildChannel(c))
}

func BuildChannel(c *model.Channel) *xmltree.Node {
	n := xmltree.Element("channel").Append(
		xmltree.TextElement("title", c.Title),
		xmltree.TextElement("description", c.Description),
		xmltree.TextElement("link", c.Link),
		xmltree.TextElement("lastBuildDate", FormatDateTime(c.LastBuildDate.Time)),
		BuildLocked(c.Locked, c.LockOwner),
		BuildLicense(c.License),
		BuildValue(c.Value),
	)
	if c.Generator != "" {
		n.Append(xmltree.TextElement("generator", c.Generator))
	}
	for _, f := range c.Funding {
		n.Append(BuildFunding(f))
	}
	for _, p := range c.Persons {
		n.Append(BuildPerson(p))
	}
	if c.Location != nil {
		n.Append(BuildLocation(*c.Location))
	}
	for i := range c.Items {
		n.Append(BuildItem(c.SiteURL, &c.Items[i]))
	}
	return n
}

// BuildItem returns the item element of it. Link and guid are both
// siteURL joined with the item path.
func BuildItem(siteURL string, it *model.Item) *xmltree.Node {
	link := JoinURL(siteURL, it.Path)
	n := xmltree.Element("item").Append(
		xmltree.TextElement("title", it.Title),
		xmltree.TextElement("description", it.Description),
		xmltree.TextElement("link", link),
		xmltree.TextElement("guid", link),
		xmltree.TextElement("pubDate", FormatDateOrTime(it.PubDate.DateOrTime)),
		BuildChapters(it.Chapters),
		BuildSeason(it.Season),
		BuildEpisode(it.Episode),
	)
	for _, t := range it.Transcripts {
		n.Append(BuildTranscript(t))
	}
	for _, c := range it.Categories {
		n.Append(BuildCategory(c))
	}
	for _, p := range it.Persons {
		n.Append(BuildPerson(p))
	}
	for _, s := range it.Soundbites {
		n.Append(BuildSoundbite(s))
	}
	for _, ae := range it.AlternateEnclosures {
		n.Append(BuildAlternateEnclosure(ae))
	}
	if it.Content != "" {
		n.Append(xmltree.TextElement("content", it.Content))
	}
	if it.ContentEncoded != "" {
		n.Append(xmltree.CDATAElement("content:encoded", it.ContentEncoded))
	}
	if it.Enclosure != nil {
		n.Append(BuildEnclosure(*it.Enclosure))
	}
	if it.Location != nil {
		n.Append(BuildLocation(*it.Location))
	}
	return n
}

func BuildFunding(f model.Funding) *xmltree.Node {
	return xmltree.TextElement("podcast:funding", f.Text, a("url", f.URL))
}

func BuildLicense(l model.License) *xmltree.Node {
	return xmltree.TextElement("podcast:license", l.Name, a("url", l.URL))
}

func BuildLocked(locked bool, owner string) *xmltree.Node {
	return xmltree.TextElement("podcast:locked", yesNo(locked), a("owner", owner))
}

func BuildLocation(l model.Location) *xmltree.Node {
	return xmltree.TextElement("podcast:location", l.Name,
		xmltree.Attrs(nil, a("geo", l.Geo), a("osm", l.OSM))...)
}

func BuildPerson(p model.Person) *xmltree.Node {
	return xmltree.TextElement("podcast:person", p.Name,
		xmltree.Attrs(nil,
			a("role", p.Role),
			a("group", p.Group),
			a("img", p.Img),
			a("href", p.Href),
		)...)
}

func BuildValue(v model.Value) *xmltree.Node {
	n := xmltree.Element("podcast:value", a("type", v.Type), a("method", v.Method))
	for _, r := range v.Recipients {
		n.Append(BuildValueRecipient(r))
	}
	return n
}

func BuildValueRecipient(r model.ValueRecipient) *xmltree.Node {
	return xmltree.Element("podcast:valueRecipient",
		a("name", r.Name),
		a("type", r.Type),
		a("address", r.Address),
		a("split", FormatInt(int64(r.Split))),
	)
}

// BuildTranscript maps Language to the lang attribute.
func BuildTranscript(t model.Transcript) *xmltree.Node {
	return xmltree.Element("podcast:transcript",
		xmltree.Attrs(required(a("url", t.URL), a("type", t.Type)),
			a("rel", t.Rel),
			a("lang", t.Language),
		)...)
}

// BuildSoundbite puts the duration in the endTime attribute.
func BuildSoundbite(s model.Soundbite) *xmltree.Node {
	return xmltree.TextElement("podcast:soundbite", s.Title,
		a("startTime", FormatFloat(s.StartTime)),
		a("endTime", FormatFloat(s.Duration)),
	)
}

func BuildSeason(s model.Season) *xmltree.Node {
	return xmltree.TextElement("podcast:season", FormatInt(int64(s.Number)), a("name", s.Name))
}

func BuildEpisode(e model.Episode) *xmltree.Node {
	return xmltree.TextElement("podcast:episode", FormatFloat(e.Number), a("display", e.Display))
}

func BuildChapters(c model.Chapters) *xmltree.Node {
	return xmltree.Element("podcast:chapters", a("url", c.URL), a("type", c.Type))
}

func BuildAlternateEnclosure(ae model.AlternateEnclosure) *xmltree.Node {
	n := xmltree.Element("podcast:alternateEnclosure",
		a("type", ae.Type),
		a("length", FormatInt(ae.Length)),
		a("title", ae.Title),
	)
	for _, uri := range ae.Sources {
		n.Append(xmltree.Element("podcast:source", a("uri", uri)))
	}
	return n
}

// BuildEnclosure always renders length as "0", Enclosure.Length is
// not used.
func BuildEnclosure(e model.Enclosure) *xmltree.Node {
	return xmltree.Element("enclosure",
		a("url", e.URL),
		a("length", "0"),
		a("type", e.Type),
	)
}

func BuildCategory(c string) *xmltree.Node {
	return xmltree.TextElement("category", c)
}

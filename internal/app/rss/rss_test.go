package rss

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sa6mwa/podfeed/internal/app/model"
	"github.com/sa6mwa/podfeed/internal/app/xmltree"
)

func encode(n *xmltree.Node) string { return xmltree.Encode(n) }

func int64p(i int64) *int64 { return &i }

func minimalChannel() *model.Channel {
	return &model.Channel{
		Title:         "Radio & Friends",
		Description:   "A show",
		Link:          "https://example.com",
		LastBuildDate: model.Timestamp{Time: time.UnixMilli(1591330166000)},
		SiteURL:       "https://example.com/",
		Locked:        true,
		LockOwner:     "owner@example.com",
		License:       model.License{Name: "cc-by-4.0", URL: "https://creativecommons.org/licenses/by/4.0/"},
		Value: model.Value{
			Type:   "lightning",
			Method: "keysend",
			Recipients: []model.ValueRecipient{
				{Name: "Host", Type: "node", Address: "02abc", Split: 100},
			},
		},
		Items: []model.Item{
			{
				Title:       "Pilot",
				Description: "First <episode>",
				Path:        "/episodes/1",
				PubDate:     model.PubDate{DateOrTime: model.NewDate(2020, time.June, 1)},
				Chapters:    model.Chapters{URL: "https://example.com/1.json", Type: "application/json+chapters"},
				Season:      model.Season{Number: 1, Name: "One"},
				Episode:     model.Episode{Number: 1, Display: "Pilot"},
				Enclosure:   &model.Enclosure{URL: "https://example.com/1.mp3", Type: "audio/mpeg", Length: int64p(1234)},
			},
		},
	}
}

func fullChannel() *model.Channel {
	c := minimalChannel()
	c.Generator = "podfeed"
	c.Funding = []model.Funding{
		{URL: "https://example.com/donate", Text: "Support us"},
		{URL: "https://example.com/patron", Text: "Become a patron"},
	}
	c.Persons = []model.Person{{Name: "Alice", Role: "host"}}
	c.Location = &model.Location{Name: "Stockholm", Geo: "geo:59.33,18.06"}
	c.Items = append(c.Items, model.Item{
		Title:          "Trailer",
		Description:    "Between the episodes",
		Path:           "episodes/1.5",
		Categories:     []string{"Technology", "News"},
		PubDate:        model.PubDate{DateOrTime: model.DateTime{Time: time.Date(2020, time.June, 2, 12, 34, 56, 0, time.UTC)}},
		Content:        "Plain text",
		ContentEncoded: "<h1>X</h1>",
		Transcripts: []model.Transcript{
			{URL: "https://example.com/1.5.vtt", Type: "text/vtt", Language: "en"},
			{URL: "https://example.com/1.5.srt", Type: "application/srt", Rel: "captions"},
		},
		Chapters:   model.Chapters{URL: "https://example.com/1.5.json", Type: "application/json+chapters"},
		Persons:    []model.Person{{Name: "Bob", Group: "cast", Img: "https://example.com/bob.jpg", Href: "https://bob.example.com"}},
		Soundbites: []model.Soundbite{{Title: "Best bit", StartTime: 5.15, Duration: 30}},
		Season:     model.Season{Number: 1, Name: "One"},
		Episode:    model.Episode{Number: 1.5, Display: "Trailer"},
		Location:   &model.Location{Name: "Studio", OSM: "R123"},
		AlternateEnclosures: []model.AlternateEnclosure{
			{Type: "audio/opus", Length: 5678, Title: "Opus", Sources: []string{"https://example.com/1.5.opus", "ipfs://abc"}},
		},
	})
	return c
}

func TestGenerateMinimal(t *testing.T) {
	expected := `<rss xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom" xmlns:podcast="https://podcastindex.org/namespace/1.0" version="2.0">
  <channel>
    <title>Radio &amp; Friends</title>
    <description>A show</description>
    <link>https://example.com</link>
    <lastBuildDate>Fri, 05 Jun 2020 04:09:26 GMT</lastBuildDate>
    <podcast:locked owner="owner@example.com">yes</podcast:locked>
    <podcast:license url="https://creativecommons.org/licenses/by/4.0/">cc-by-4.0</podcast:license>
    <podcast:value type="lightning" method="keysend">
      <podcast:valueRecipient name="Host" type="node" address="02abc" split="100"></podcast:valueRecipient>
    </podcast:value>
    <item>
      <title>Pilot</title>
      <description>First &lt;episode&gt;</description>
      <link>https://example.com/episodes/1</link>
      <guid>https://example.com/episodes/1</guid>
      <pubDate>Mon, 01 Jun 2020 00:00:00 GMT</pubDate>
      <podcast:chapters url="https://example.com/1.json" type="application/json+chapters"></podcast:chapters>
      <podcast:season name="One">1</podcast:season>
      <podcast:episode display="Pilot">1</podcast:episode>
      <enclosure url="https://example.com/1.mp3" length="0" type="audio/mpeg"></enclosure>
    </item>
  </channel>
</rss>`
	if got := Generate(minimalChannel()); got != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, got)
	}
}

func TestGenerateFullItem(t *testing.T) {
	expected := `    <item>
      <title>Trailer</title>
      <description>Between the episodes</description>
      <link>https://example.com/episodes/1.5</link>
      <guid>https://example.com/episodes/1.5</guid>
      <pubDate>Tue, 02 Jun 2020 12:34:56 GMT</pubDate>
      <podcast:chapters url="https://example.com/1.5.json" type="application/json+chapters"></podcast:chapters>
      <podcast:season name="One">1</podcast:season>
      <podcast:episode display="Trailer">1.5</podcast:episode>
      <podcast:transcript url="https://example.com/1.5.vtt" type="text/vtt" lang="en"></podcast:transcript>
      <podcast:transcript url="https://example.com/1.5.srt" type="application/srt" rel="captions"></podcast:transcript>
      <category>Technology</category>
      <category>News</category>
      <podcast:person group="cast" img="https://example.com/bob.jpg" href="https://bob.example.com">Bob</podcast:person>
      <podcast:soundbite startTime="5.15" endTime="30">Best bit</podcast:soundbite>
      <podcast:alternateEnclosure type="audio/opus" length="5678" title="Opus">
        <podcast:source uri="https://example.com/1.5.opus"></podcast:source>
        <podcast:source uri="ipfs://abc"></podcast:source>
      </podcast:alternateEnclosure>
      <content>Plain text</content>
      <content:encoded><![CDATA[<h1>X</h1>]]></content:encoded>
      <podcast:location osm="R123">Studio</podcast:location>
    </item>
  </channel>
</rss>`
	if got := Generate(fullChannel()); !strings.HasSuffix(got, expected) {
		t.Errorf("expected suffix:\n%s\ngot:\n%s", expected, got)
	}
}

func TestChannelChildOrder(t *testing.T) {
	var names []string
	for _, n := range BuildChannel(fullChannel()).Children {
		names = append(names, n.Name)
	}
	expected := []string{
		"title", "description", "link", "lastBuildDate",
		"podcast:locked", "podcast:license", "podcast:value",
		"generator", "podcast:funding", "podcast:funding",
		"podcast:person", "podcast:location", "item", "item",
	}
	if got := strings.Join(names, ","); got != strings.Join(expected, ",") {
		t.Errorf("expected: %v\ngot: %v", expected, names)
	}
}

func TestChannelElements(t *testing.T) {
	tables := []struct {
		n    *xmltree.Node
		want string
	}{
		{BuildFunding(model.Funding{URL: "https://example.com/donate", Text: "Support us"}), `<podcast:funding url="https://example.com/donate">Support us</podcast:funding>`},
		{BuildFunding(model.Funding{URL: "https://e/?a=1&b=2", Text: "Tip & thanks"}), `<podcast:funding url="https://e/?a=1&amp;b=2">Tip &amp; thanks</podcast:funding>`},
		{BuildLocked(false, "owner@example.com"), `<podcast:locked owner="owner@example.com">no</podcast:locked>`},
		{BuildLocked(true, "owner@example.com"), `<podcast:locked owner="owner@example.com">yes</podcast:locked>`},
		{BuildLicense(model.License{Name: "cc-by-4.0", URL: "https://l"}), `<podcast:license url="https://l">cc-by-4.0</podcast:license>`},
	}
	for _, table := range tables {
		if got := encode(table.n); got != table.want {
			t.Errorf("got: %s, want: %s", got, table.want)
		}
	}
}

func TestGenerator(t *testing.T) {
	c := minimalChannel()
	c.Items = nil
	c.Generator = "podfeed"
	want := "    <podcast:value type=\"lightning\" method=\"keysend\">"
	got := Generate(c)
	if !strings.Contains(got, "\n    <generator>podfeed</generator>\n") {
		t.Errorf("generator element missing:\n%s", got)
	}
	if i, j := strings.Index(got, want), strings.Index(got, "<generator>"); i < 0 || j < i {
		t.Errorf("generator should follow podcast:value:\n%s", got)
	}
	c.Generator = ""
	if got := Generate(c); strings.Contains(got, "<generator>") {
		t.Errorf("empty generator should be omitted:\n%s", got)
	}
}

func TestGenerateIsWellFormed(t *testing.T) {
	for _, c := range []*model.Channel{minimalChannel(), fullChannel()} {
		d := xml.NewDecoder(bytes.NewBufferString(Generate(c)))
		var root *xml.StartElement
		depth := 0
		for {
			tok, err := d.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("not well-formed: %v", err)
			}
			switch v := tok.(type) {
			case xml.StartElement:
				if depth == 0 {
					if root != nil {
						t.Fatal("more than one root element")
					}
					e := v.Copy()
					root = &e
				}
				depth++
			case xml.EndElement:
				depth--
			}
		}
		if root == nil || root.Name.Local != "rss" {
			t.Fatalf("expected rss root, got %+v", root)
		}
		attrs := map[string]string{}
		for _, a := range root.Attr {
			key := a.Name.Local
			if a.Name.Space == "xmlns" {
				key = "xmlns:" + key
			}
			attrs[key] = a.Value
		}
		for k, v := range map[string]string{
			"xmlns:dc":      NamespaceDC,
			"xmlns:content": NamespaceContent,
			"xmlns:atom":    NamespaceAtom,
			"xmlns:podcast": NamespacePodcast,
			"version":       "2.0",
		} {
			if attrs[k] != v {
				t.Errorf("root attribute %s = %q, want %q", k, attrs[k], v)
			}
		}
	}
}

func TestGuidEqualsLink(t *testing.T) {
	for _, base := range []string{"https://example.com", "https://example.com/", "https://example.com//"} {
		for _, p := range []string{"ep/1", "/ep/1", "//ep/1"} {
			item := BuildItem(base, &model.Item{
				Path:    p,
				PubDate: model.PubDate{DateOrTime: model.NewDate(2020, time.January, 1)},
			})
			link, guid := item.Children[2], item.Children[3]
			if link.Name != "link" || guid.Name != "guid" {
				t.Fatalf("unexpected child order %s, %s", link.Name, guid.Name)
			}
			if link.Text != guid.Text {
				t.Errorf("guid %q differs from link %q", guid.Text, link.Text)
			}
			if link.Text != "https://example.com/ep/1" {
				t.Errorf("JoinURL(%q, %q) = %q", base, p, link.Text)
			}
		}
	}
}

func TestPersonOptionalAttributes(t *testing.T) {
	tables := []struct {
		p    model.Person
		want string
	}{
		{model.Person{Name: "A"}, `<podcast:person>A</podcast:person>`},
		{model.Person{Name: "A", Role: "host"}, `<podcast:person role="host">A</podcast:person>`},
		{model.Person{Name: "A", Group: "crew", Href: "https://a"}, `<podcast:person group="crew" href="https://a">A</podcast:person>`},
		{model.Person{Name: "A", Img: "https://i"}, `<podcast:person img="https://i">A</podcast:person>`},
		{
			model.Person{Name: "A", Role: "r", Group: "g", Img: "https://i", Href: "https://h"},
			`<podcast:person role="r" group="g" img="https://i" href="https://h">A</podcast:person>`,
		},
	}
	for _, table := range tables {
		if got := encode(BuildPerson(table.p)); got != table.want {
			t.Errorf("BuildPerson(%+v) was incorrect, got: %s, want: %s", table.p, got, table.want)
		}
	}
}

func TestLocationOptionalAttributes(t *testing.T) {
	if got, want := encode(BuildLocation(model.Location{Name: "Home"})), `<podcast:location>Home</podcast:location>`; got != want {
		t.Errorf("got: %s, want: %s", got, want)
	}
	if got, want := encode(BuildLocation(model.Location{Name: "Home", Geo: "geo:1,2", OSM: "W1"})), `<podcast:location geo="geo:1,2" osm="W1">Home</podcast:location>`; got != want {
		t.Errorf("got: %s, want: %s", got, want)
	}
}

func TestContentEncodedIsCDATA(t *testing.T) {
	it := fullChannel().Items[1]
	got := encode(BuildItem("https://example.com", &it))
	if !strings.Contains(got, "<content:encoded><![CDATA[<h1>X</h1>]]></content:encoded>") {
		t.Errorf("content:encoded not wrapped verbatim in CDATA:\n%s", got)
	}
}

func TestOptionalItemElementsOmitted(t *testing.T) {
	it := minimalChannel().Items[0]
	it.Enclosure = nil
	got := encode(BuildItem("https://example.com", &it))
	for _, name := range []string{"<content>", "<content:encoded>", "<enclosure", "<podcast:location", "<category>", "<podcast:transcript", "<podcast:person"} {
		if strings.Contains(got, name) {
			t.Errorf("unexpected %s in:\n%s", name, got)
		}
	}
}

// The enclosure length is always "0", even when a length is known.
func TestEnclosureLengthIsAlwaysZero(t *testing.T) {
	for _, l := range []*int64{nil, int64p(0), int64p(1234567)} {
		got := encode(BuildEnclosure(model.Enclosure{URL: "https://e/x.mp3", Type: "audio/mpeg", Length: l}))
		if want := `<enclosure url="https://e/x.mp3" length="0" type="audio/mpeg"></enclosure>`; got != want {
			t.Errorf("got: %s, want: %s", got, want)
		}
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	c := fullChannel()
	if Generate(c) != Generate(c) {
		t.Error("two calls with the same channel differ")
	}
}

func ExampleBuildEpisode() {
	fmt.Println(encode(BuildEpisode(model.Episode{Number: 1, Display: "Ep 1"})))
	fmt.Println(encode(BuildEpisode(model.Episode{Number: 1.5, Display: "Trailer"})))
	fmt.Println(encode(BuildSeason(model.Season{Number: 1, Name: "First"})))
	// Output:
	// <podcast:episode display="Ep 1">1</podcast:episode>
	// <podcast:episode display="Trailer">1.5</podcast:episode>
	// <podcast:season name="First">1</podcast:season>
}

func ExampleBuildSoundbite() {
	fmt.Println(encode(BuildSoundbite(model.Soundbite{Title: "Hook", StartTime: 73.5, Duration: 60})))
	// Output: <podcast:soundbite startTime="73.5" endTime="60">Hook</podcast:soundbite>
}

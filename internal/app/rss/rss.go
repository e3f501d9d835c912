// rss turns a model.Channel into an RSS 2.0 document with the
// Podcasting 2.0 namespace. Everything in this package is pure, the
// same channel always renders to the same string.
package rss

import (
	"github.com/sa6mwa/podfeed/internal/app/model"
	"github.com/sa6mwa/podfeed/internal/app/xmltree"
)

// Generate renders c as an indented RSS document starting with the
// rss element. There is no XML declaration and no trailing newline.
func Generate(c *model.Channel) string {
	return xmltree.Encode(BuildRSS(c))
}

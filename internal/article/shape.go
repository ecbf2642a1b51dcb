package article

import (
	"strings"

	"github.com/starford/ansuz/internal/notion"
)

// FieldMapping names the page properties the shaper reads. Databases name
// their schema properties freely, so the mapping is injectable; the zero
// value is replaced with DefaultFieldMapping.
type FieldMapping struct {
	// TitleProperties is tried in order; the first property present on the
	// page wins, even if its title runs are empty.
	TitleProperties []string
	// TagsProperty is the multi-select property holding tags.
	TagsProperty string
}

// DefaultFieldMapping matches the common Notion schema: a "title" (or
// "Name") title property and a "Tags" multi-select.
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{
		TitleProperties: []string{"title", "Name"},
		TagsProperty:    "Tags",
	}
}

// extractTitle concatenates the plain text of the first matching title
// property's runs. Missing properties yield "".
func extractTitle(props map[string]notion.Property, fields FieldMapping) string {
	for _, key := range fields.TitleProperties {
		prop, ok := props[key]
		if !ok {
			continue
		}
		var sb strings.Builder
		for _, run := range prop.Title {
			sb.WriteString(run.PlainText)
		}
		return sb.String()
	}
	return ""
}

// extractTags returns the ordered option names of the tags property, or an
// empty slice when the property is absent or not a multi-select.
func extractTags(props map[string]notion.Property, fields FieldMapping) []string {
	tags := []string{}
	if prop, ok := props[fields.TagsProperty]; ok {
		for _, opt := range prop.MultiSelect {
			tags = append(tags, opt.Name)
		}
	}
	return tags
}

// extractBlocks shapes raw blocks into ContentBlocks, preserving order.
// Blocks of unsupported types are dropped, not errored. A supported block
// with a missing or empty payload still appears, with empty text.
func extractBlocks(raw []notion.Block) []ContentBlock {
	blocks := []ContentBlock{}
	for _, b := range raw {
		if !supportedBlockType(b.Type) {
			continue
		}
		var sb strings.Builder
		if content := b.Content(); content != nil {
			for _, run := range content.RichText {
				sb.WriteString(run.PlainText)
			}
		}
		blocks = append(blocks, ContentBlock{ID: b.ID, Type: b.Type, Text: sb.String()})
	}
	return blocks
}

func supportedBlockType(t string) bool {
	switch t {
	case "paragraph", "heading_1", "heading_2", "heading_3",
		"bulleted_list_item", "numbered_list_item", "quote", "code":
		return true
	}
	return false
}

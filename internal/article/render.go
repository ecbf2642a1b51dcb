package article

import (
	"fmt"
	"strings"
)

// Markdown renders an article as Markdown: a title heading, an optional
// tags line with backtick-quoted tags, then the blocks in order.
//
// Numbered items all carry a literal "1." marker and text-mode rendering
// swaps the list glyphs relative to this mapping. Both behaviors are part
// of the output contract consumers already parse; do not normalize them.
func Markdown(d *ArticleDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Title)

	if len(d.Tags) > 0 {
		quoted := make([]string, len(d.Tags))
		for i, tag := range d.Tags {
			quoted[i] = "`" + tag + "`"
		}
		fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(quoted, ", "))
	}

	for _, blk := range d.Content {
		switch blk.Type {
		case "paragraph":
			fmt.Fprintf(&b, "%s\n\n", blk.Text)
		case "heading_1":
			fmt.Fprintf(&b, "# %s\n\n", blk.Text)
		case "heading_2":
			fmt.Fprintf(&b, "## %s\n\n", blk.Text)
		case "heading_3":
			fmt.Fprintf(&b, "### %s\n\n", blk.Text)
		case "bulleted_list_item":
			fmt.Fprintf(&b, "- %s\n", blk.Text)
		case "numbered_list_item":
			fmt.Fprintf(&b, "1. %s\n", blk.Text)
		case "quote":
			fmt.Fprintf(&b, "> %s\n\n", blk.Text)
		case "code":
			fmt.Fprintf(&b, "```\n%s\n```\n\n", blk.Text)
		}
	}

	return b.String()
}

// Text renders an article as plain text: unmarked title line, optional
// tags line, then the blocks. All heading levels collapse to uppercased
// text since plain text carries no structural markers.
func Text(d *ArticleDetail) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", d.Title)

	if len(d.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(d.Tags, ", "))
	}

	for _, blk := range d.Content {
		switch blk.Type {
		case "paragraph", "quote", "code":
			fmt.Fprintf(&b, "%s\n\n", blk.Text)
		case "heading_1", "heading_2", "heading_3":
			fmt.Fprintf(&b, "%s\n\n", strings.ToUpper(blk.Text))
		case "bulleted_list_item":
			fmt.Fprintf(&b, "* %s\n", blk.Text)
		case "numbered_list_item":
			fmt.Fprintf(&b, "- %s\n", blk.Text)
		}
	}

	return b.String()
}

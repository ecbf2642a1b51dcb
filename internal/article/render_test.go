package article

import (
	"strings"
	"testing"
)

func TestMarkdown_FullDocument(t *testing.T) {
	d := &ArticleDetail{
		ArticleSummary: ArticleSummary{
			Title: "Roadmap",
			Tags:  []string{"plan", "q3"},
		},
		Content: []ContentBlock{
			{ID: "b1", Type: "heading_2", Text: "Goals"},
			{ID: "b2", Type: "paragraph", Text: "Ship it."},
			{ID: "b3", Type: "bulleted_list_item", Text: "alpha"},
			{ID: "b4", Type: "quote", Text: "onwards"},
			{ID: "b5", Type: "code", Text: "make build"},
		},
	}

	want := "# Roadmap\n\n" +
		"Tags: `plan`, `q3`\n\n" +
		"## Goals\n\n" +
		"Ship it.\n\n" +
		"- alpha\n" +
		"> onwards\n\n" +
		"```\nmake build\n```\n\n"

	if got := Markdown(d); got != want {
		t.Errorf("Markdown() =\n%q\nwant\n%q", got, want)
	}
}

func TestMarkdown_NumberedItemsAllLiteralOne(t *testing.T) {
	d := &ArticleDetail{
		ArticleSummary: ArticleSummary{Title: "List"},
		Content: []ContentBlock{
			{ID: "b1", Type: "numbered_list_item", Text: "Buy milk"},
			{ID: "b2", Type: "numbered_list_item", Text: "Drink milk"},
		},
	}
	got := Markdown(d)
	if !strings.Contains(got, "1. Buy milk\n1. Drink milk\n") {
		t.Errorf("every numbered item must carry a literal \"1.\" marker, got:\n%q", got)
	}
	if strings.Contains(got, "2. ") {
		t.Errorf("markers must not increment, got:\n%q", got)
	}
}

func TestMarkdown_NoTagsLineWhenEmpty(t *testing.T) {
	d := &ArticleDetail{ArticleSummary: ArticleSummary{Title: "Bare", Tags: []string{}}}
	if got := Markdown(d); strings.Contains(got, "Tags:") {
		t.Errorf("no tags line expected, got:\n%q", got)
	}
}

func TestMarkdown_VerbatimText(t *testing.T) {
	d := &ArticleDetail{
		ArticleSummary: ArticleSummary{Title: "Esc"},
		Content: []ContentBlock{
			{ID: "b1", Type: "paragraph", Text: "*not emphasized* <b>raw</b>"},
		},
	}
	if got := Markdown(d); !strings.Contains(got, "*not emphasized* <b>raw</b>\n\n") {
		t.Errorf("text must be emitted verbatim, got:\n%q", got)
	}
}

func TestText_HeadingsUppercasedAndFlattened(t *testing.T) {
	d := &ArticleDetail{
		ArticleSummary: ArticleSummary{Title: "Doc"},
		Content: []ContentBlock{
			{ID: "b1", Type: "heading_1", Text: "intro"},
			{ID: "b2", Type: "heading_3", Text: "details"},
		},
	}
	got := Text(d)
	// All heading levels render identically in plain text.
	if !strings.Contains(got, "INTRO\n\n") || !strings.Contains(got, "DETAILS\n\n") {
		t.Errorf("headings must be uppercased, got:\n%q", got)
	}
	if strings.Contains(got, "#") {
		t.Errorf("plain text must not carry markup, got:\n%q", got)
	}
}

func TestText_SwappedListGlyphs(t *testing.T) {
	d := &ArticleDetail{
		ArticleSummary: ArticleSummary{Title: "List"},
		Content: []ContentBlock{
			{ID: "b1", Type: "bulleted_list_item", Text: "bullet"},
			{ID: "b2", Type: "numbered_list_item", Text: "numbered"},
		},
	}
	got := Text(d)
	// Text mode uses "*" for bullets and "-" for numbered items, the
	// inverse of markdown mode. Pinned for output compatibility.
	if !strings.Contains(got, "* bullet\n") {
		t.Errorf("bulleted item glyph, got:\n%q", got)
	}
	if !strings.Contains(got, "- numbered\n") {
		t.Errorf("numbered item glyph, got:\n%q", got)
	}
}

func TestText_TagsLinePlain(t *testing.T) {
	d := &ArticleDetail{ArticleSummary: ArticleSummary{Title: "T", Tags: []string{"a", "b"}}}
	want := "T\n\nTags: a, b\n\n"
	if got := Text(d); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

func TestText_CodeRendersBare(t *testing.T) {
	d := &ArticleDetail{
		ArticleSummary: ArticleSummary{Title: "C"},
		Content:        []ContentBlock{{ID: "b1", Type: "code", Text: "x := 1"}},
	}
	want := "C\n\nx := 1\n\n"
	if got := Text(d); got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}
}

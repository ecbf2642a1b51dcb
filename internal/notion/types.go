package notion

// Raw wire shapes for the subset of the Notion API this bridge consumes.
// Fields not used by the adapter are intentionally not modelled.

// RichText is a single rich-text run. Only the resolved plain text matters here.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// SelectOption is one option of a select or multi-select property.
type SelectOption struct {
	Name string `json:"name"`
}

// Property is a page property value. A title property carries rich-text
// runs; a multi-select property carries options. Everything else decodes
// to a Property with both slices empty.
type Property struct {
	Title       []RichText     `json:"title,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
}

// Page is a page object as returned by the search and pages endpoints.
type Page struct {
	Object         string              `json:"object"`
	ID             string              `json:"id"`
	CreatedTime    string              `json:"created_time"`
	LastEditedTime string              `json:"last_edited_time"`
	URL            string              `json:"url"`
	Properties     map[string]Property `json:"properties"`
}

// RichTextContent is the per-type payload of a content block.
type RichTextContent struct {
	RichText []RichText `json:"rich_text"`
}

// Block is a content block. The payload lives under a key named after the
// block type; the eight kinds this bridge understands are modelled
// explicitly, anything else is left nil and skipped downstream.
type Block struct {
	Object           string           `json:"object"`
	ID               string           `json:"id"`
	Type             string           `json:"type"`
	Paragraph        *RichTextContent `json:"paragraph,omitempty"`
	Heading1         *RichTextContent `json:"heading_1,omitempty"`
	Heading2         *RichTextContent `json:"heading_2,omitempty"`
	Heading3         *RichTextContent `json:"heading_3,omitempty"`
	BulletedListItem *RichTextContent `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextContent `json:"numbered_list_item,omitempty"`
	Quote            *RichTextContent `json:"quote,omitempty"`
	Code             *RichTextContent `json:"code,omitempty"`
}

// Content returns the payload matching the block's declared type, or nil
// for unsupported types.
func (b *Block) Content() *RichTextContent {
	switch b.Type {
	case "paragraph":
		return b.Paragraph
	case "heading_1":
		return b.Heading1
	case "heading_2":
		return b.Heading2
	case "heading_3":
		return b.Heading3
	case "bulleted_list_item":
		return b.BulletedListItem
	case "numbered_list_item":
		return b.NumberedListItem
	case "quote":
		return b.Quote
	case "code":
		return b.Code
	default:
		return nil
	}
}

// SearchSort is the sort clause of a search request. The upstream API only
// supports sorting on last_edited_time.
type SearchSort struct {
	Timestamp string `json:"timestamp"`
	Direction string `json:"direction"`
}

// SearchFilter restricts search results to one object kind.
type SearchFilter struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// SearchRequest is the POST /search body.
type SearchRequest struct {
	Query    string       `json:"query"`
	PageSize int          `json:"page_size"`
	Sort     SearchSort   `json:"sort"`
	Filter   SearchFilter `json:"filter"`
}

// SearchResponse is the POST /search result envelope.
type SearchResponse struct {
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// BlockChildrenResponse is the GET /blocks/{id}/children result envelope.
type BlockChildrenResponse struct {
	Results []Block `json:"results"`
	HasMore bool    `json:"has_more"`
}

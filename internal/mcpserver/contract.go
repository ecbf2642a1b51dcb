package mcpserver

// OutputFormatContract describes the article schema and rendering rules so
// LLM consumers know exactly what notion_get_article returns.
const OutputFormatContract = "# Notion Article Output Format\n\n" +
	"## JSON format (default)\n\n" +
	"```json\n" +
	"{\n" +
	"  \"id\": \"page id\",\n" +
	"  \"title\": \"concatenated title runs ('' when the page has no title property)\",\n" +
	"  \"created_time\": \"ISO-8601 timestamp from Notion\",\n" +
	"  \"last_edited_time\": \"ISO-8601 timestamp from Notion\",\n" +
	"  \"tags\": [\"multi-select option names, in order; [] when absent\"],\n" +
	"  \"url\": \"page URL\",\n" +
	"  \"content\": [\n" +
	"    { \"id\": \"block id\", \"type\": \"block type\", \"text\": \"concatenated plain text\" }\n" +
	"  ]\n" +
	"}\n" +
	"```\n\n" +
	"Supported block types: paragraph, heading_1, heading_2, heading_3,\n" +
	"bulleted_list_item, numbered_list_item, quote, code. Blocks of any other\n" +
	"type are silently dropped. Block order matches the Notion API order. Only\n" +
	"the first 100 top-level blocks are included; nested children are not\n" +
	"fetched.\n\n" +
	"## Markdown format\n\n" +
	"Title as `# Title`, then a ``Tags: `a`, `b` `` line when tags exist, then\n" +
	"the blocks: headings with #/##/###, bullets as `- text`, quotes as\n" +
	"`> text`, code in triple-backtick fences. Numbered items all render with\n" +
	"a literal `1.` marker; Markdown renderers renumber on display and\n" +
	"existing consumers depend on this exact output.\n\n" +
	"## Text format\n\n" +
	"Title as a plain line, then `Tags: a, b`, then the blocks: all heading\n" +
	"levels render as UPPERCASED text (plain text has no structural markers),\n" +
	"bullets as `* text`, numbered items as `- text`. The bullet and number\n" +
	"glyphs are intentionally swapped relative to Markdown mode; do not\n" +
	"\"correct\" output that looks inconsistent between the two modes.\n\n" +
	"## General rules\n\n" +
	"- Text is emitted verbatim; no escaping of Markdown special characters.\n" +
	"- Rendering is lossy: block ids are dropped and text-mode headings lose\n" +
	"  their level. Re-parsing rendered output does not recover the\n" +
	"  structure; request the JSON format when structure matters.\n" +
	"- Errors are returned as a tool error with a single human-readable\n" +
	"  message, e.g. `HTTP error: 404 - ...` or `Request error: ...`.\n"

package markdown

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := New()

	out := r.Render("## Koramangala\n\n* **Zolo Stays** - shared rooms\n* [Site](https://example.com)\n")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(out)))
	require.NoError(t, err)

	assert.Equal(t, "Koramangala", doc.Find("h2").Text())
	assert.Equal(t, 2, doc.Find("li").Length())
	assert.Equal(t, "Zolo Stays", doc.Find("li strong").Text())

	link := doc.Find("a")
	href, _ := link.Attr("href")
	target, _ := link.Attr("target")
	assert.Equal(t, "https://example.com", href)
	assert.Equal(t, "_blank", target)
}

func TestRender_Sanitizes(t *testing.T) {
	r := New()

	out := string(r.Render("Hello <script>alert(1)</script> <a href=\"javascript:alert(1)\">x</a>"))
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
}

func TestRender_Empty(t *testing.T) {
	assert.Equal(t, "", strings.TrimSpace(string(New().Render(""))))
}

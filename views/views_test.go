package views

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/catalog"
	"storefront/models"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC) }
	return r
}

func TestDisplayPrice(t *testing.T) {
	assert.Equal(t, "$240", DisplayPrice(models.TextPrice("$240")))
	assert.Equal(t, "$100", DisplayPrice(models.NumericPrice(100)))
	assert.Equal(t, "$99.5", DisplayPrice(models.NumericPrice(99.5)))
	assert.Equal(t, "$1234", DisplayPrice(models.NumericPrice(1234)))
	assert.Equal(t, "$19.9999", DisplayPrice(models.NumericPrice(19.9999)))
	assert.Equal(t, "$0.0005", DisplayPrice(models.NumericPrice(0.0005)))
	assert.Equal(t, "Price on request", DisplayPrice(models.Price{}))
}

func TestNewCardPlaceholders(t *testing.T) {
	c := NewCard(models.Product{Price: models.NumericPrice(50)}, 4)

	assert.Equal(t, "item-4", c.ID)
	assert.Equal(t, "Untitled", c.Name)
	assert.Equal(t, PlaceholderImage, c.ImageURL)
	assert.Equal(t, "$50", c.Price)
	assert.True(t, c.Incomplete)
}

func TestNewCardStockAndRating(t *testing.T) {
	items := catalog.Shop()
	midnight := NewCard(items[4], 4)
	assert.True(t, midnight.LowStock)
	assert.Equal(t, 3, midnight.StockLeft)
	assert.Equal(t, "4.7", midnight.Rating)

	zero := 0.0
	c := NewCard(models.Product{StarRating: &zero}, 0)
	assert.Empty(t, c.Rating)
}

func TestNav(t *testing.T) {
	links := Nav("/products")
	require.Len(t, links, 5)
	for _, l := range links {
		assert.Equal(t, l.Path == "/products", l.Active, l.Path)
	}
	assert.False(t, Nav("/")[2].Active, "Nav must not mutate the shared list")
}

func TestRenderProducts(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer

	err := r.Render(&buf, Page{
		Name:    PageProducts,
		Title:   "Shop",
		Nav:     Nav("/products"),
		Content: ProductsContent{Cards: Cards(catalog.Shop())},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Shop | POSH</title>")
	assert.Contains(t, html, "Stealth Runner")
	assert.Contains(t, html, "Only 3 left")
	assert.NotContains(t, html, "Only 5 left")
	assert.Contains(t, html, `action="/checkout"`)
	assert.Contains(t, html, `name="model_name" value="Midnight Pro"`)
	assert.Contains(t, html, "&copy; 2026 POSH")
	assert.Equal(t, 6, strings.Count(html, `<article class="card`))
}

func TestRenderEscapesRemoteText(t *testing.T) {
	r := newRenderer(t)
	var buf bytes.Buffer

	err := r.Render(&buf, Page{
		Name: PageHome,
		Content: HomeContent{Cards: Cards([]models.Product{{
			ID:        models.IntID(1),
			ModelName: `<script>alert(1)</script>`,
			Price:     models.TextPrice("$1"),
			ImageURL:  "javascript:alert(1)",
		}})},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.NotContains(t, html, `src="javascript:`)
}

func TestRenderStaticPages(t *testing.T) {
	r := newRenderer(t)
	pages := []Page{
		{Name: PageExplore, Content: ExploreContent{Collections: catalog.Collections()}},
		{Name: PageAbout, Content: About()},
		{Name: PageTerms, Content: Terms()},
		{Name: PageError, Content: ErrorContent{Status: 404, Message: "not found"}},
		{Name: PageHome, Content: HomeContent{}},
	}
	want := []string{"Series 01", "Steps / Pair", "5. Limitation of Liability", "not found", "New drops are on their way."}
	for i, page := range pages {
		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, page), page.Name)
		assert.Contains(t, buf.String(), want[i], page.Name)
	}
}

func TestRenderUnknownPage(t *testing.T) {
	var buf bytes.Buffer
	err := newRenderer(t).Render(&buf, Page{Name: "checkout"})
	require.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestStatic(t *testing.T) {
	_, err := fs.Stat(Static(), "styles.css")
	require.NoError(t, err)
	_, err = fs.Stat(Static(), "placeholder.svg")
	require.NoError(t, err)
}

package detail

import (
	"strings"
	"testing"

	"github.com/vijayaragavan-dev/storefront/internal/client"
)

func TestViewNil(t *testing.T) {
	if New(nil).View() != "" {
		t.Error("nil product should render nothing")
	}
}

func TestViewProduct(t *testing.T) {
	p := client.SampleProducts()[1]
	p.Description = "A **smart** watch with *heart rate* tracking."
	p.StockQuantity = 3

	v := New(&p).View()
	for _, want := range []string{"Smart Watch Pro", "Electronics", "$299.99", "3 in stock", "heart", "tracking", "add to cart"} {
		if !strings.Contains(v, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
	if strings.Contains(v, "**smart**") {
		t.Error("markdown should be rendered, not shown raw")
	}
}

func TestRenderDescriptionEmpty(t *testing.T) {
	if !strings.Contains(RenderDescription("  ", 40), "No description") {
		t.Error("empty description should show placeholder")
	}
}

func TestOutOfStock(t *testing.T) {
	p := client.Product{Name: "Gone", Price: 5}
	if !strings.Contains(New(&p).View(), "Out of stock") {
		t.Error("zero stock should render as out of stock")
	}
}

package products

import (
	"strings"
	"testing"

	"github.com/vijayaragavan-dev/storefront/internal/client"
)

func ptr(v float64) *float64 { return &v }

func TestStars(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{0, "☆☆☆☆☆"},
		{3, "★★★☆☆"},
		{4.5, "★★★★⯪"},
		{4.4, "★★★★☆"},
		{4.8, "★★★★⯪"},
		{5, "★★★★★"},
		{7, "★★★★★"},
		{-1, "☆☆☆☆☆"},
	}
	for _, tt := range tests {
		if got := Stars(tt.rating); got != tt.want {
			t.Errorf("Stars(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestBadgeAndPrice(t *testing.T) {
	p := client.Product{Name: "Smart Watch Pro", Price: 349.99, DiscountPrice: ptr(299.99)}
	if b := Badge(p); !strings.Contains(b, "-14%") {
		t.Errorf("Badge() = %q, want -14%%", b)
	}
	line := PriceLine(p)
	if !strings.Contains(line, "$299.99") || !strings.Contains(line, "$349.99") {
		t.Errorf("PriceLine() = %q", line)
	}

	plain := client.Product{Price: 10}
	if Badge(plain) != "" {
		t.Error("undiscounted product should have no badge")
	}
	if strings.Contains(PriceLine(plain), "$0.00") {
		t.Error("undiscounted product should show only its price")
	}
}

func TestCardContents(t *testing.T) {
	p := client.SampleProducts()[0]
	v := Card(p, false)
	for _, want := range []string{"Electronics", "$199.99", "(128)"} {
		if !strings.Contains(v, want) {
			t.Errorf("card missing %q:\n%s", want, v)
		}
	}
	if !strings.Contains(Card(client.Product{Name: "x"}, true), "General") {
		t.Error("card should fall back to the General category")
	}
}

func TestGridCursor(t *testing.T) {
	g := NewGrid("Featured")
	if _, ok := g.Current(); ok {
		t.Fatal("empty grid should have no current product")
	}
	g.SetProducts(client.SampleFeatured(), false)
	g.Prev()
	if cur, _ := g.Current(); cur.ID != 4 {
		t.Errorf("Prev from 0 should wrap to last, got %d", cur.ID)
	}
	g.Next()
	if cur, _ := g.Current(); cur.ID != 1 {
		t.Errorf("Next should wrap to first, got %d", cur.ID)
	}

	g.Selected = 3
	g.SetProducts(client.SampleFeatured()[:2], false)
	if g.Selected != 0 {
		t.Error("cursor should be clamped when the grid shrinks")
	}
}

func TestGridView(t *testing.T) {
	g := NewGrid("Bestsellers")
	if !strings.Contains(g.View(120, true), "Loading") {
		t.Error("new grid should render loading")
	}
	g.SetProducts(nil, false)
	if !strings.Contains(g.View(120, true), "No products found") {
		t.Error("empty grid should say so")
	}
	g.SetProducts(client.SampleBestsellers(), true)
	v := g.View(120, true)
	if !strings.Contains(v, "offline sample") || !strings.Contains(v, "Leather Laptop Bag") {
		t.Errorf("unexpected grid view:\n%s", v)
	}
}

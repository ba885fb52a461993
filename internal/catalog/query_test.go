package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fixture() []Product {
	return []Product{
		{ID: "1", Title: "iPhone 14 Pro", Price: 600, Category: CategoryPhones, Condition: ConditionLikeNew, Brand: "Apple"},
		{ID: "2", Title: "Galaxy S23 Ultra", Price: 300, Category: CategoryPhones, Condition: ConditionUsed, Brand: "Samsung"},
		{ID: "3", Title: "MacBook Air M2", Price: 150, Category: CategoryLaptops, Condition: ConditionNew, Brand: "Apple"},
		{ID: "4", Title: "ThinkPad X1 Carbon", Price: 50, Category: CategoryLaptops, Condition: ConditionUsed, Brand: "Lenovo"},
		{ID: "5", Title: "Handmade laptop stand", Price: 150, Category: CategoryLaptops, Condition: ConditionNew},
	}
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestQueryDefaultFilterIsIdentity(t *testing.T) {
	t.Parallel()
	products := fixture()
	got := Query(products, DefaultFilter(5000))
	require.Equal(t, ids(products), ids(got))
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	products := fixture()
	spec := DefaultFilter(5000)
	spec.Sort = SortPriceLow
	_ = Query(products, spec)
	require.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(products))
}

func TestQueryCategory(t *testing.T) {
	t.Parallel()
	spec := DefaultFilter(5000)
	spec.Category = CategoryPhones
	got := Query(fixture(), spec)
	require.Equal(t, []string{"1", "2"}, ids(got))

	spec.Category = CategoryLaptops
	got = Query(fixture(), spec)
	require.Len(t, got, 3)

	spec.Category = CategoryCameras
	require.Empty(t, Query(fixture(), spec))
}

func TestQueryPriceRangeInclusive(t *testing.T) {
	t.Parallel()
	products := []Product{
		{ID: "a", Price: 50},
		{ID: "b", Price: 150},
		{ID: "c", Price: 300},
		{ID: "d", Price: 600},
	}
	spec := DefaultFilter(5000)
	spec.PriceMin = 100
	spec.PriceMax = 500
	require.Equal(t, []string{"b", "c"}, ids(Query(products, spec)))

	// boundary values are admitted
	spec.PriceMin = 150
	spec.PriceMax = 300
	require.Equal(t, []string{"b", "c"}, ids(Query(products, spec)))
}

func TestQuerySearchIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()
	spec := DefaultFilter(5000)
	spec.Query = "macbook"
	require.Equal(t, []string{"3"}, ids(Query(fixture(), spec)))

	spec.Query = "LAPTOP"
	require.Equal(t, []string{"5"}, ids(Query(fixture(), spec)))

	spec.Query = "rocketship"
	require.Empty(t, Query(fixture(), spec))
}

func TestQueryConditions(t *testing.T) {
	t.Parallel()
	spec := DefaultFilter(5000)
	spec.Conditions[ConditionUsed] = true
	require.Equal(t, []string{"2", "4"}, ids(Query(fixture(), spec)))

	spec.Conditions[ConditionNew] = true
	require.Equal(t, []string{"2", "3", "4", "5"}, ids(Query(fixture(), spec)))
}

func TestQueryBrandExcludesUnbranded(t *testing.T) {
	t.Parallel()
	spec := DefaultFilter(5000)
	spec.Brands["Apple"] = true
	// product 5 has no brand and must not ride along
	require.Equal(t, []string{"1", "3"}, ids(Query(fixture(), spec)))
}

func TestQueryConjunction(t *testing.T) {
	t.Parallel()
	spec := DefaultFilter(5000)
	spec.Category = CategoryLaptops
	spec.Query = "macbook"
	spec.Conditions[ConditionNew] = true
	spec.Brands["Apple"] = true
	spec.PriceMin = 100
	spec.PriceMax = 200
	require.Equal(t, []string{"3"}, ids(Query(fixture(), spec)))
}

func TestQuerySortByPrice(t *testing.T) {
	t.Parallel()
	spec := DefaultFilter(5000)
	spec.Sort = SortPriceLow
	require.Equal(t, []string{"4", "3", "5", "2", "1"}, ids(Query(fixture(), spec)))

	spec.Sort = SortPriceHigh
	require.Equal(t, []string{"1", "2", "3", "5", "4"}, ids(Query(fixture(), spec)))
}

func TestQuerySortIsStableOnTies(t *testing.T) {
	t.Parallel()
	// 3 and 5 share a price; catalog order must survive both directions.
	spec := DefaultFilter(5000)
	spec.Sort = SortPriceLow
	low := ids(Query(fixture(), spec))
	require.Less(t, indexOf(low, "3"), indexOf(low, "5"))

	spec.Sort = SortPriceHigh
	high := ids(Query(fixture(), spec))
	require.Less(t, indexOf(high, "3"), indexOf(high, "5"))
}

func indexOf(xs []string, x string) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}

func TestQueryMaxPriceZeroAdmitsNothingPriced(t *testing.T) {
	t.Parallel()
	spec := DefaultFilter(0)
	got := Query(fixture(), spec)
	require.Empty(t, got)
}

func TestBrandsDistinctFirstSeen(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"Apple", "Samsung", "Lenovo"}, Brands(fixture()))
}

func TestSeededCatalogShape(t *testing.T) {
	t.Parallel()
	products := SeedProducts()

	spec := DefaultFilter(5000)
	spec.Category = CategoryPhones
	require.Len(t, Query(products, spec), 2)

	spec.Category = CategoryLaptops
	require.Len(t, Query(products, spec), 3)

	for _, p := range products {
		require.NotEmpty(t, p.Images, "product %s must carry an image", p.ID)
		require.NotNil(t, UserByID(SeedUsers(), p.SellerID), "product %s has no seller", p.ID)
	}
}

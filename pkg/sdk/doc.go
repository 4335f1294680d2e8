// Package prodex embeds the product search and recommendation engine in a
// Go program without running the HTTP service.
//
// Products are ranked by TF-IDF cosine similarity over their name,
// description and tags. The catalog is loaded once and can be replaced
// atomically with Reload; queries never block on a reload.
//
//	client, _ := prodex.New(ctx, prodex.WithCatalogFile("catalog/products.yaml"))
//	defer client.Close()
//
//	hits, _ := client.Search(ctx, "wireless headphones", prodex.Filter{
//	    Category: "Electronics",
//	    MaxPrice: prodex.Float(100),
//	})
//	recs, _ := client.Recommend(ctx, hits[0].Product.ID, 4)
//
// Results can be memoised in Valkey or Redis with WithValkeyCache or
// WithRedisCache. Cache failures are logged and never fail a query.
package prodex

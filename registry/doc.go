/*
Package registry maps index names to attribute catalog sources.

An attribute lookup used to be a conditional on the index name. The registry
replaces it with a closed set of variants: every servable index name is bound
to an AttributeSource during initialization, and the registry is sealed
before requests are served.

	reg := registry.New()
	reg.MustRegister("metadata", registry.NewStaticSource(projectsCatalog))
	reg.Seal()

	src, err := reg.Lookup("metadata")
	if err != nil {
	    // errors.IsUnknownIndex(err) == true for unregistered names
	}
	catalog, err := src.SearchAttributes(ctx, "metadata")

The registry is thread-safe. StaticSource returns a fresh copy on every call,
so callers may modify what they receive.
*/
package registry

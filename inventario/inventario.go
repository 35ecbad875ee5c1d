// Package inventario implements the persistence and validation core of the
// Sushi House inventory system: a namespaced store over a durable key/value
// backend holding the productos, categorias, proveedores and usuarios
// collections plus the configuracion document, with typed accessors, CRUD
// helpers, aggregate queries and table-driven entity validation.
//
// The store never raises to its callers: raw get/set operations report
// failure through their boolean/absent results (with the diagnostic logged),
// and the CRUD helpers return sentinel errors that distinguish a missing
// record from a persistence failure.
//
//	backend := storage.NewJSONBackend("inventario.json")
//	store := inventario.New(backend)
//	store.InitializeStorage()
//
//	if res := store.ValidarProducto(p); res.IsValid {
//	    creado, err := store.AgregarProducto(p)
//	    ...
//	}
package inventario

// Package model implements the Data Access Protocol data model: typed,
// hierarchical containers for array and tabular scientific data.
//
// The leaf type is BaseType, a thin wrapper over array-like data.
// Containers hold other variables under ordered, unique keys:
//   - StructureType: a generic grouping
//   - DatasetType: the root of a tree
//   - SequenceType: a stream of records (rows)
//   - GridType: an n-dimensional array plus one coordinate map per axis
//
// Every variable carries a name, an ordered attribute map and an id, the
// fully qualified dotted path of the variable inside its tree. Ids are
// recomputed whenever a variable is attached to a container.
//
// Example usage:
//
//	dataset := model.NewDatasetType("example")
//	s := model.NewStructureType("s")
//	if err := dataset.Set("s", s); err != nil {
//	    log.Fatal(err)
//	}
//	foo := model.NewBaseType("foo", []interface{}{1, 2, 3})
//	if err := s.Set("foo", foo); err != nil {
//	    log.Fatal(err)
//	}
//	// foo.ID() == "s.foo"; the dataset name is not part of the id.
package model

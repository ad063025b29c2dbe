// Package commands implements the riveter CLI, which declares a class from a schema
// document and runs params documents through its pipeline.
//
//	riveter describe --schema order.yaml
//	riveter clean params.yaml
//	riveter apply --schema order.yaml params.yaml
//
// Params are read from the named file, or from stdin when it is "-" or absent.
package commands

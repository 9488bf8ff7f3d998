// Package plss resolves Public Land Survey System legal descriptions
// (Section/Township/Range) found in oil-and-gas instruments into grid
// coordinates, neighboring and traversed land units, approximate
// geographic coordinates, and links to known well and property records.
//
// This package contains domain types, interfaces, and the pure PLSS
// algorithms, following Ben Johnson's Standard Package Layout.
// Implementations that talk to the outside world live in subdirectories
// named after their primary dependency (e.g., sqlite/, gjson/, http/).
package plss

// Package desktop discovers and parses freedesktop desktop entry files.
//
// Only the Name, Exec, Categories and Icon keys are read. Section headers are
// not interpreted: every key=value line of a file is considered, and later
// lines overwrite earlier ones.
package desktop

// Package build holds information stamped into the nodal binary at build time.
package build

// Version is reported by `nodal version` and `nodal --version`.
// Release builds set it with -ldflags "-X go.trai.ch/nodal/internal/build.Version=...".
var Version = "dev"

// Package pointgen generates reproducible 3D point sets.
//
// A Generator is seeded once and is safe for concurrent use. The same seed
// always yields the same points, which makes generated sets suitable as
// fixtures for the CLI, benchmarks and tests.
//
//	g := pointgen.New(42)
//	pts := g.UniformPoints(1000, -100, 100)
//	pts, err := g.Generate(pointgen.Clustered, 1000, 50)
package pointgen

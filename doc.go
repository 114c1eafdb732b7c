// Package lvmaze is a small toolkit for carving, solving and printing
// rectangular mazes.
//
// What is in the box?
//
//	• grid       – the cell lattice and its symmetric passage relation
//	• generator  – eight carving algorithms, a name registry, seeded RNG and braiding
//	• distances  – BFS distance fields, shortest paths and the maze diameter
//	• render     – ASCII and Unicode box-drawing output with distance overlays and heat maps
//	• config     – flag, environment and .env configuration for the CLI
//	• cmd/mazegen – the command-line front end
//
// Typical flow:
//
//	g, _ := grid.New(10, 10)
//	_ = generator.Generate(g, generator.DefaultOptions())
//	d, _ := distances.Build(g, grid.Cell{})
//	out, _ := render.Render(g, render.WithOverlay(d))
//
// Every generator takes its randomness from an injected grid.Rand, so a fixed
// seed always yields the same maze.
package lvmaze

// Command perft walks the action enumeration tree from the classic
// starting position and reports the leaf node count and elapsed time.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/pijersi-engine/pijersi"
	"github.com/pijersi-engine/pijersi/internal/perft"
	"github.com/pijersi-engine/pijersi/render"
	"github.com/pkg/profile"
)

func main() {
	depth := flag.Int("depth", 2, "perft depth")
	verbose := flag.Bool("verbose", false, "print per-root-action node counts")
	profileMode := flag.String("profile", "", "profiling mode: cpu, mem, or empty to disable")
	profileDir := flag.String("profile-dir", ".", "directory to write the profile into")
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir)).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profileDir)).Stop()
	case "":
		// profiling disabled
	default:
		log.Fatalf("unknown -profile mode %q: want cpu, mem, or empty", *profileMode)
	}

	g := pijersi.NewGame()

	start := time.Now()
	var nodes int
	if *verbose {
		log.Printf("Root position:\n%s", render.Board(g.Board))
		var total perft.Result
		for _, a := range g.GetActions() {
			var r perft.Result
			r.Nodes = perft.CountVerbose(g.ApplyAction(a), *depth-1, &r)
			log.Printf("%s %d (captures: %d)", pijersi.ActionName(a), r.Nodes, r.Captures)
			total.Nodes += r.Nodes
			total.Captures += r.Captures
		}
		nodes = total.Nodes
		log.Printf("Total captures: %d", total.Captures)
	} else {
		nodes = perft.Count(g, *depth)
	}
	elapsed := time.Since(start)

	log.Printf("Nodes reached: %d", nodes)
	log.Printf("Elapsed time: %s", elapsed)
}

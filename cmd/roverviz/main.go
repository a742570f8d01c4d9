// Command roverviz opens a step-through visualizer for a Rover plan.
package main

import (
	"log"
	"os"

	"gioui.org/app"

	"github.com/elektrokombinacija/roverplan/internal/vis"
)

func main() {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("roverviz"))
		if err := vis.NewApp().Run(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

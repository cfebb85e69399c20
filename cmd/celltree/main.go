// Command celltree builds a cell tree from a mesh description file and runs
// point, box, and edge location queries against it from the command line.
package main

import "github.com/arl/celltree/cmd/celltree/cmd"

func main() {
	cmd.Execute()
}

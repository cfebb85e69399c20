package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "celltree",
	Short: "query 2D polygonal meshes with a bounding-volume cell tree",
	Long: `celltree loads a mesh description (vertices and faces, as YAML)
and builds a 2D bounding-volume hierarchy over its faces, then answers:
	- point location ('locate-point'),
	- box overlap queries ('locate-box'),
	- line segment intersection queries ('locate-edge'),
	- mesh/tree summary information ('info').`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoSettingsVal string

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info MESH",
	Short: "show summary information about a mesh's cell tree",
	Long: `Load a mesh description from MESH (YAML), build its cell tree and
print a summary: face count, node count (interior and leaf) and bounding
box.`,
	Args: cobra.ExactArgs(1),
	Run:  doInfo,
}

func init() {
	RootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringVar(&infoSettingsVal, "config", "", "build settings file (optional)")
}

func doInfo(cmd *cobra.Command, args []string) {
	tree, err := buildTreeFromFile(args[0], infoSettingsVal)
	check(err)

	leaves, interior := 0, 0
	for _, n := range tree.Nodes {
		if n.IsLeaf() {
			leaves++
		} else {
			interior++
		}
	}

	fmt.Printf("faces:        %d\n", tree.NumFaces())
	fmt.Printf("nodes:        %d (%d interior, %d leaves)\n", len(tree.Nodes), interior, leaves)
	fmt.Printf("bounding box: [%g, %g] x [%g, %g]\n", tree.Bbox.Xmin, tree.Bbox.Xmax, tree.Bbox.Ymin, tree.Bbox.Ymax)
}

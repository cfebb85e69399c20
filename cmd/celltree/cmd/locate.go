package cmd

import (
	"fmt"

	"github.com/arl/celltree"
	"github.com/spf13/cobra"
)

var locateSettingsVal string

func init() {
	RootCmd.AddCommand(locatePointCmd)
	locatePointCmd.Flags().StringVar(&locateSettingsVal, "config", "", "build settings file (optional)")

	RootCmd.AddCommand(locateBoxCmd)
	locateBoxCmd.Flags().StringVar(&locateSettingsVal, "config", "", "build settings file (optional)")

	RootCmd.AddCommand(locateEdgeCmd)
	locateEdgeCmd.Flags().StringVar(&locateSettingsVal, "config", "", "build settings file (optional)")
}

var locatePointCmd = &cobra.Command{
	Use:   "locate-point MESH X Y",
	Short: "find the face containing a point",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := buildTreeFromFile(args[0], locateSettingsVal)
		check(err)

		x, y := parseFloat(args[1]), parseFloat(args[2])
		face := celltree.LocatePoint(celltree.Point{X: x, Y: y}, tree)
		if face < 0 {
			fmt.Println("no containing face")
			return
		}
		fmt.Printf("face %d\n", face)
	},
}

var locateBoxCmd = &cobra.Command{
	Use:   "locate-box MESH XMIN XMAX YMIN YMAX",
	Short: "list faces whose bounding box overlaps a query box",
	Args:  cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := buildTreeFromFile(args[0], locateSettingsVal)
		check(err)

		box := celltree.Box{
			Xmin: parseFloat(args[1]), Xmax: parseFloat(args[2]),
			Ymin: parseFloat(args[3]), Ymax: parseFloat(args[4]),
		}
		count := celltree.LocateBox(box, tree, nil)
		indices := make([]int32, count)
		celltree.LocateBox(box, tree, indices)
		fmt.Printf("%d face(s): %v\n", count, indices)
	},
}

var locateEdgeCmd = &cobra.Command{
	Use:   "locate-edge MESH AX AY BX BY",
	Short: "list faces intersected by a line segment",
	Args:  cobra.ExactArgs(5),
	Run: func(cmd *cobra.Command, args []string) {
		tree, err := buildTreeFromFile(args[0], locateSettingsVal)
		check(err)

		a := celltree.Point{X: parseFloat(args[1]), Y: parseFloat(args[2])}
		b := celltree.Point{X: parseFloat(args[3]), Y: parseFloat(args[4])}
		count, hits := celltree.LocateEdge(a, b, tree, make([]celltree.Hit, 0, 8))
		fmt.Printf("%d hit(s):\n", count)
		for _, h := range hits {
			fmt.Printf("  face %d, t=[%g, %g]\n", h.Face, h.T0, h.T1)
		}
	},
}

func parseFloat(s string) float64 {
	var f float64
	_, err := fmt.Sscanf(s, "%g", &f)
	check(err)
	return f
}

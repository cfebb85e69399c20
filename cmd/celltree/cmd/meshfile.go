package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/arl/celltree"
	yaml "gopkg.in/yaml.v2"
)

// meshFile is the on-disk YAML shape of a mesh description: a flat vertex
// coordinate list and a set of faces, each a list of indices into vertices.
// Faces with fewer vertices than their neighbours are padded with -1
// (celltree.FillValue) once loaded, mirroring the ragged face table the
// query core expects (spec'd in the celltree package itself).
type meshFile struct {
	Vertices [][2]float64 `yaml:"vertices"`
	Faces    [][]int32    `yaml:"faces"`
}

func loadMeshFile(path string) ([]celltree.Point, [][]int32, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var mf meshFile
	if err := yaml.Unmarshal(buf, &mf); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	vertices := make([]celltree.Point, len(mf.Vertices))
	for i, v := range mf.Vertices {
		vertices[i] = celltree.Point{X: v[0], Y: v[1]}
	}

	maxLen := 0
	for _, f := range mf.Faces {
		if len(f) > maxLen {
			maxLen = len(f)
		}
	}
	faces := make([][]int32, len(mf.Faces))
	for i, f := range mf.Faces {
		row := make([]int32, maxLen)
		copy(row, f)
		for j := len(f); j < maxLen; j++ {
			row[j] = celltree.FillValue
		}
		faces[i] = row
	}

	return vertices, faces, nil
}

func buildTreeFromFile(meshPath, settingsPath string) (*celltree.CellTreeData, error) {
	vertices, faces, err := loadMeshFile(meshPath)
	if err != nil {
		return nil, err
	}

	settings := defaultBuildSettings()
	if settingsPath != "" {
		if err := unmarshalYAMLFile(settingsPath, &settings); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", settingsPath, err)
		}
	}

	tree, err := celltree.BuildWithBucketSize(vertices, faces, settings.LeafBucketSize)
	if err != nil {
		return nil, fmt.Errorf("building cell tree from %s: %w", meshPath, err)
	}
	return tree, nil
}

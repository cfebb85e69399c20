package cmd

import (
	"fmt"

	"github.com/arl/celltree"
	"github.com/spf13/cobra"
)

// buildSettings mirrors the options celltree.Build currently hardcodes,
// exposed here so they can be tuned from a file without touching the
// library itself.
type buildSettings struct {
	LeafBucketSize int `yaml:"leaf_bucket_size"`
}

func defaultBuildSettings() buildSettings {
	return buildSettings{LeafBucketSize: celltree.LeafBucketSize}
}

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "write a build settings file",
	Long: `Write a build settings file in YAML format, prefilled with default
values.

If FILE is not provided, 'celltree.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "celltree.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		check(err)
		if !ok {
			fmt.Println("aborted by user")
			return
		}
		check(marshalYAMLFile(path, defaultBuildSettings()))
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}

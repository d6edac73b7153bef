/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/notargets/amr3d/convert"
)

// ExtrudeCmd represents the extrude command
var ExtrudeCmd = &cobra.Command{
	Use:   "extrude",
	Short: "Extrude the coarsest level of a 2D plotfile into 3D",
	Long: `
Keeps only level 0 of the plotfile and copies every 2D cell across nCells
cells of a new third axis. The new axis is as wide per cell as the first axis.

amr3d extrude -F plt00100 -n 16 --maxGridSize 32,32,8`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, convert.Extrude3D)
	},
}

func init() {
	rootCmd.AddCommand(ExtrudeCmd)
	addConversionFlags(ExtrudeCmd)
	ExtrudeCmd.Flags().IntP("nCells", "n", 1, "number of cells along the new axis")
}

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

// Pseudo3DCmd represents the pseudo3d command
var Pseudo3DCmd = &cobra.Command{
	Use:   "pseudo3d",
	Short: "Give every level of a 2D plotfile one cell of thickness",
	Long: `
Keeps the whole refinement hierarchy. Each level becomes one cell thick along
a new third axis, with the physical thickness of a level 0 cell.

amr3d pseudo3d -F plt00100`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, convert.Pseudo3D)
	},
}

func init() {
	rootCmd.AddCommand(Pseudo3DCmd)
	addConversionFlags(Pseudo3DCmd)
}

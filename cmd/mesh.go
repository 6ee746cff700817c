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
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/teslamesh/mesh3D"
	"github.com/notargets/teslamesh/utils"
	"github.com/notargets/teslamesh/writefiles"
)

// MeshCmd represents the mesh command
var MeshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Write a blockMeshDict for a Tesla valve loop",
	Long: `
Solves the valve cross-section, assembles its blocks, extrudes them one cell
thick and writes the blockMesh dictionary.

teslamesh mesh --variant single --diameter 1 --density 20 -o system/blockMeshDict`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		if doProfile, _ := cmd.Flags().GetBool("profile"); doProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		}
		vp, err := loadParameters(cmd)
		if err != nil {
			return
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			vp.Print()
		}
		cfg, err := vp.Config()
		if err != nil {
			return
		}
		m, err := mesh3D.Generate(cfg)
		if err != nil {
			return
		}
		if stats, _ := cmd.Flags().GetBool("stats"); stats {
			m.PrintStatistics()
		}
		sum, err := writefiles.WriteBlockMeshDictFile(vp.Output, m, vp.ConvertToMeters)
		if err != nil {
			return
		}
		fmt.Println(sum)
		utils.Logger().Debug("memory", "usage", utils.GetMemUsage())
		return
	},
}

func init() {
	rootCmd.AddCommand(MeshCmd)
	addValveFlags(MeshCmd)
	MeshCmd.Flags().Float64("convertToMeters", 1, "scale applied by blockMesh to every vertex")
	MeshCmd.Flags().StringP("output", "o", "blockMeshDict", "output file, or a directory to hold blockMeshDict")
	MeshCmd.Flags().Bool("frontAndBack", false, "add the layer faces as an empty frontAndBack patch")
	MeshCmd.Flags().Bool("stats", false, "print mesh statistics")
}

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
	"time"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/spf13/cobra"

	"github.com/notargets/teslamesh/mesh3D"
	"github.com/notargets/teslamesh/plot2D"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Display the valve cross-section and its blocks",
	Long: `
Opens a window showing the solved cross-section: block edges, arcs sampled as
polylines, every control point and optionally the point and block numbers.
Boundary edges are green (inlet), red (outlet) and black (wall).

teslamesh plot --variant double --blockLabels`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		vp, err := loadParameters(cmd)
		if err != nil {
			return
		}
		cfg, err := vp.Config()
		if err != nil {
			return
		}
		m, err := mesh3D.Generate(cfg)
		if err != nil {
			return
		}
		opts := plot2D.DefaultOptions()
		opts.PointLabels, _ = cmd.Flags().GetBool("pointLabels")
		opts.BlockLabels, _ = cmd.Flags().GetBool("blockLabels")
		opts.ArcSegments, _ = cmd.Flags().GetInt("arcSegments")
		sc := plot2D.SectionScene(m.Topology, opts)
		fmt.Printf("plotting %s bend: %d points, %d blocks, %d segments\n",
			cfg.Valve.Variant, m.NumPoints2D, len(m.Blocks), sc.NumSegments())
		PlotScene(sc)
		return
	},
}

// PlotScene renders the scene and blocks while the window is open.
func PlotScene(sc *plot2D.Scene) {
	ch := chart2d.NewChart2D(sc.XMin, sc.XMax, sc.YMin, sc.YMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	for col, line := range sc.Lines {
		ch.AddLine(line, col)
	}
	for _, txt := range sc.Text {
		tf := assets.NewTextFormatter("NotoSans",
			"Regular", txt.Pitch,
			txt.Color, true, false)
		ch.Printf(tf, txt.X, txt.Y, "%s", txt.Text)
	}
	for {
		time.Sleep(time.Second)
	}
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	addValveFlags(PlotCmd)
	PlotCmd.Flags().Bool("pointLabels", true, "label every control point with its index")
	PlotCmd.Flags().Bool("blockLabels", false, "label every block with its index")
	PlotCmd.Flags().Int("arcSegments", 16, "straight pieces drawn per arc")
}

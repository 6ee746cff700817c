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
	"log/slog"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/teslamesh/InputParameters"
	"github.com/notargets/teslamesh/geometry2D"
	"github.com/notargets/teslamesh/utils"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "teslamesh",
	Short: "Block mesh generator for Tesla valve channels",
	Long: `
Generates OpenFOAM blockMeshDict files for single and double bend Tesla valve
loops, extruded one cell thick for 2D simulation.

teslamesh mesh --variant double --bendAngle 0.785398 -o system/blockMeshDict`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			utils.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
				&slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.teslamesh.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log each pipeline stage to stderr")
	rootCmd.PersistentFlags().Bool("profile", false, "write a CPU profile to the current directory")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".teslamesh" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".teslamesh")
	}
	viper.SetEnvPrefix("TESLAMESH")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// addValveFlags registers the shape and resolution flags shared by the subcommands.
func addValveFlags(cmd *cobra.Command) {
	def := InputParameters.DefaultValveParameters()
	cmd.Flags().StringP("inputFile", "I", "", "YAML file holding valve parameters, overridden by flags")
	cmd.Flags().String("example", "", "start from a named parameter set: "+strings.Join(geometry2D.ExampleNames(), ", "))
	cmd.Flags().String("title", def.Title, "case title")
	cmd.Flags().String("variant", def.Variant, "valve variant: single or double")
	cmd.Flags().Float64("valveLength", def.ValveLength, "inner length of the straight valve segment")
	cmd.Flags().Float64("diameter", def.Diameter, "duct width")
	cmd.Flags().Float64("endLength", def.EndLength, "length of the inlet and outlet ducts")
	cmd.Flags().Float64("bendAngle", def.BendAngle, "bend angle in radians, in (0, π)")
	cmd.Flags().Float64("bendAngleDegrees", 0, "bend angle in degrees, used when --bendAngle is not given")
	cmd.Flags().Float64("density", def.Density, "cells per block side (uniform), table multiplier (tuned) or cells per unit length (graded)")
	cmd.Flags().String("resolution", def.Resolution, "resolution policy: uniform, tuned or graded")
	cmd.Flags().Float64("halfThickness", def.HalfThickness, "half thickness of the extruded layer")
}

// loadParameters layers defaults, a named example, the YAML input file, the config file,
// TESLAMESH_ environment variables and finally the command line.
func loadParameters(cmd *cobra.Command) (vp *InputParameters.ValveParameters, err error) {
	vp = InputParameters.DefaultValveParameters()
	if name, _ := cmd.Flags().GetString("example"); name != "" {
		if err = vp.UseExample(name); err != nil {
			return nil, err
		}
	}
	if file, _ := cmd.Flags().GetString("inputFile"); file != "" {
		var data []byte
		if data, err = os.ReadFile(file); err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}
		if err = vp.Parse(data); err != nil {
			return nil, fmt.Errorf("parsing input file %s: %w", file, err)
		}
	}
	if err = viper.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	vp.Override(viper.GetViper())
	return
}

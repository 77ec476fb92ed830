/*
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

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"github.com/libpkgconf/pkgconf/pkgconfig"
	"github.com/libpkgconf/pkgconf/util"
)

var (
	withPath []string
	debug    bool
	wantCflags,
	wantLibs,
	wantStatic,
	wantModVersion bool
)

func pkgconfUsage(cmd *cobra.Command, err error) {
	if err != nil {
		if pe, ok := errors.Cause(err).(*util.PkgConfigError); ok && debug {
			log.Debugf("%s", pe.StackTrace)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(1)
}

func buildConfig() pkgconfig.Config {
	paths := append([]string(nil), withPath...)
	if env := os.Getenv("PKG_CONFIG_PATH"); env != "" {
		paths = append(paths, strings.Split(env, ":")...)
	}

	disableUninstalled, err := cast.ToBoolE(os.Getenv("PKG_CONFIG_DISABLE_UNINSTALLED"))
	if err != nil {
		disableUninstalled = false
	}

	return pkgconfig.Config{SearchPaths: paths, DisableUninstalled: disableUninstalled}
}

func runQuery(cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		pkgconfUsage(cmd, util.NewPkgConfigError("Must specify at least one package name"))
	}

	printSh, _ := cmd.Flags().GetBool("print-sh")
	util.PrintSh = printSh

	facade := pkgconfig.NewFacade(buildConfig())

	if wantModVersion {
		versions, err := facade.ModVersion(args)
		if err != nil {
			pkgconfUsage(cmd, errors.Wrap(err, "resolving package version"))
		}
		for _, v := range versions {
			fmt.Println(v)
		}
		return
	}

	var result *pkgconfig.Result
	var err error
	switch {
	case wantStatic:
		result, err = facade.StaticLibs(args)
	case wantLibs:
		result, err = facade.Libs(args)
	case wantCflags:
		result, err = facade.Cflags(args)
	default:
		pkgconfUsage(cmd, util.NewPkgConfigError("Must specify one of --cflags, --libs, --static or --modversion"))
		return
	}
	if err != nil {
		pkgconfUsage(cmd, errors.Wrap(err, "resolving query"))
	}

	util.LogShellCmd(result.Flags)
	fmt.Println(strings.Join(result.Flags, " "))
}

func parseCmds() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkgconf",
		Short: "pkgconf resolves pkg-config metadata for build flags",
		Long: `pkgconf parses .pc package metadata files and reports the
compiler and linker flags needed to build against the requested packages.`,
		Run: runQuery,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.WarnLevel
			if debug {
				level = log.DebugLevel
			}
			if err := util.InitLog(level, ""); err != nil {
				pkgconfUsage(cmd, err)
			}
		},
	}

	rootCmd.PersistentFlags().IntVarP(&util.Verbosity, "verbosity", "v",
		util.VERBOSITY_DEFAULT, "How verbose pkgconf should be about its operation")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Print the captured stack trace alongside any resolution error")
	rootCmd.PersistentFlags().StringSliceVar(&withPath, "with-path", nil,
		"Add a directory to the package search path (repeatable)")

	rootCmd.Flags().BoolVar(&wantCflags, "cflags", false,
		"Print the compiler flags needed to build against the requested packages")
	rootCmd.Flags().BoolVar(&wantLibs, "libs", false,
		"Print the linker flags needed to dynamically link the requested packages")
	rootCmd.Flags().BoolVar(&wantStatic, "static", false,
		"Print the linker flags needed to statically link the requested packages")
	rootCmd.Flags().BoolVar(&wantModVersion, "modversion", false,
		"Print the resolved version of each requested package")
	rootCmd.Flags().Bool("print-sh", false,
		"Echo the resolved flags as a single shell-quoted line")

	versCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the pkgconf version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("pkgconf version:", pkgconfVersion)
		},
	}
	rootCmd.AddCommand(versCmd)

	return rootCmd
}

const pkgconfVersion = "1.0"

func main() {
	cmd := parseCmds()
	if err := cmd.Execute(); err != nil {
		pkgconfUsage(cmd, err)
	}
}

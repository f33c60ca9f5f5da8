package cmd

import (
	"fmt"
	"os"

	gncurie "github.com/gnames/gncurie/pkg"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gncurie.Version, gncurie.Build)
		os.Exit(0)
	}
}

// pathFlags registers one required string flag per input and output of a
// converter and returns the map the values are stored in.
func pathFlags(cmd *cobra.Command, flags []string, usage map[string]string) map[string]*string {
	res := make(map[string]*string, len(flags))
	for _, v := range flags {
		res[v] = cmd.Flags().String(v, "", usage[v])
		_ = cmd.MarkFlagRequired(v)
	}
	return res
}

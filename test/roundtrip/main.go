package main

import (
	"github.com/spf13/cobra"

	"github.com/CrowdHailer/gleam-http/test/roundtrip/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}

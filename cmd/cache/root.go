package cache

import "github.com/spf13/cobra"

var Command = &cobra.Command{
	Use:   "cache",
	Short: "Manage cached remote sources",
}

func init() {
	Command.AddCommand(cleanCmd)
}

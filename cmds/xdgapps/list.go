package main

import (
	"github.com/spf13/cobra"

	"github.com/safing/xdgapps/base/log"
	"github.com/safing/xdgapps/service/desktop"
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List all discovered desktop entries",
		Args:  cobra.NoArgs,
		RunE:  list,
	}

	showCmd = &cobra.Command{
		Use:   "show <file>",
		Short: "Parse a desktop entry file and print it",
		Args:  cobra.ExactArgs(1),
		RunE:  show,
	}
)

func list(cmd *cobra.Command, args []string) error {
	entries := make([]*desktop.Descriptor, 0)
	for _, path := range desktop.FindFiles(env) {
		entry, err := desktop.ParseFile(path)
		if err != nil {
			log.Warningf("skipping %s: %s", path, err)
			continue
		}
		entries = append(entries, entry)
	}

	return printJSON(cmd.OutOrStdout(), entries)
}

type shownEntry struct {
	*desktop.Descriptor

	DisplayName string   `json:"displayName"`
	Args        []string `json:"args,omitempty"`
}

func show(cmd *cobra.Command, args []string) error {
	entry, err := desktop.ParseFile(args[0])
	if err != nil {
		return err
	}

	shown := shownEntry{
		Descriptor:  entry,
		DisplayName: entry.DisplayName(),
	}
	shown.Args, err = entry.CommandArgs()
	if err != nil {
		log.Infof("no usable command in %s: %s", args[0], err)
	}

	return printJSON(cmd.OutOrStdout(), shown)
}

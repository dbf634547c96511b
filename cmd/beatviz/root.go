package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"beatviz/internal/viz"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "beatviz",
		Short:         "Tempo-synchronized audio visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCommand())
	root.AddCommand(newScenesCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var recordDir string
	var loop bool

	cmd := &cobra.Command{
		Use:   "run <playlist.toml>",
		Short: "Play a playlist and render its visuals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunDesktop(viz.RunOptions{
				Playlist:  args[0],
				RecordDir: recordDir,
				Loop:      loop,
			})
		},
	}
	cmd.Flags().StringVar(&recordDir, "record", "", "write rendered frames as PNGs into this directory")
	cmd.Flags().BoolVar(&loop, "loop", false, "restart the playlist after the last scene")
	return cmd
}

func newScenesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenes <playlist.toml>",
		Short: "List the parsed scenes of a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pl, err := viz.LoadPlaylist(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bands=%d fps=%.0f strategies=%v\n", pl.Bands, pl.FPS, pl.Strategies)
			for i, s := range pl.Scenes {
				fmt.Fprintf(out, "%2d  %-40s tempo=%.0f bg=%s strategy=%s\n",
					i+1, s.File, s.Tempo, s.Background, s.Strategy)
			}
			return nil
		},
	}
}

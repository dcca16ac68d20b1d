package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tOgg1/streamwatch/internal/channel"
)

func newFavouritesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favourites",
		Aliases: []string{"fav", "favorites"},
		Short:   "Manage favourite channels",
		Long:    "List, add and remove the channels shown on the home screen.",
	}
	cmd.AddCommand(
		newFavouritesListCmd(opts),
		newFavouritesAddCmd(opts),
		newFavouritesRemoveCmd(opts),
	)
	return cmd
}

func newFavouritesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List favourite channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			favourites, err := channel.LoadFavourites(opts.cfg.FavouritesPath())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(favourites) == 0 {
				fmt.Fprintln(out, "No favourites yet.")
				return nil
			}
			rows := make([][]string, 0, len(favourites))
			for _, c := range favourites {
				rows = append(rows, []string{c.Handle, c.FriendlyName})
			}
			return writeTable(out, []string{"HANDLE", "NAME"}, rows)
		},
	}
}

func newFavouritesAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <handle> [friendly name]",
		Short: "Add a favourite channel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle := strings.ToLower(strings.TrimSpace(args[0]))
			name := strings.TrimSpace(strings.Join(args[1:], " "))
			if name == "" {
				name = handle
			}
			c := channel.New(name, handle)
			if err := c.Validate(); err != nil {
				return err
			}

			path := opts.cfg.FavouritesPath()
			favourites, err := channel.LoadFavourites(path)
			if err != nil {
				return err
			}
			if channel.IndexOf(favourites, handle) >= 0 {
				return fmt.Errorf("%s is already a favourite", handle)
			}
			favourites = append(favourites, c)
			if err := channel.SaveToFile(path, favourites); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s).\n", name, handle)
			return nil
		},
	}
}

func newFavouritesRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <handle>",
		Aliases: []string{"rm"},
		Short:   "Remove a favourite channel",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			handle := strings.ToLower(strings.TrimSpace(args[0]))
			path := opts.cfg.FavouritesPath()
			favourites, err := channel.LoadFavourites(path)
			if err != nil {
				return err
			}
			i := channel.IndexOf(favourites, handle)
			if i < 0 {
				return fmt.Errorf("%s is not a favourite", handle)
			}
			favourites = append(favourites[:i], favourites[i+1:]...)
			if err := channel.SaveToFile(path, favourites); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", handle)
			return nil
		},
	}
}

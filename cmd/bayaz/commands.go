package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bayaz-archive/bayaz/internal/app"
	"github.com/bayaz-archive/bayaz/internal/browser"
	"github.com/bayaz-archive/bayaz/internal/lyrics"
	"github.com/bayaz-archive/bayaz/internal/panel"
	"github.com/bayaz-archive/bayaz/internal/remote"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	prefsPath  string
	poll       int
	debug      bool
}

func (o *rootOptions) app() app.Options {
	return app.Options{
		ConfigPath: o.configPath,
		PrefsPath:  o.prefsPath,
		PollEvery:  o.poll,
		Debug:      o.debug,
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "bayaz",
		Short: "Browse a community archive of song lyrics",
		Long: `bayaz is a terminal browser for a lyrics archive.

Run without arguments to open the interactive browser. The catalog comes
from the file named by "catalog" in ~/.config/bayaz/config.toml, or from
the catalog service when "api_url" is set.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts.app())
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/bayaz/config.toml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "write debug entries to the log")
	root.Flags().StringVar(&opts.prefsPath, "prefs", "", "preferences file (default ~/.config/bayaz/prefs.toml)")
	root.Flags().IntVar(&opts.poll, "poll", 0, "trending refresh interval in seconds (default 60)")

	root.AddCommand(newSearchCmd(opts), newShowCmd(opts), newTrendingCmd(opts))
	return root
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "List songs whose title, writer or singer contains the query",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Setup(cmd.Context(), opts.app())
			if err != nil {
				return err
			}
			defer env.Close()

			items := env.Search(strings.Join(args, " "))
			writeItems(cmd.OutOrStdout(), items)
			return nil
		},
	}
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <title>",
		Short: "Print the lyrics of a song",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.Setup(cmd.Context(), opts.app())
			if err != nil {
				return err
			}
			defer env.Close()

			snap, err := env.Show(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			writeLyrics(cmd.OutOrStdout(), snap)
			return nil
		},
	}
}

func newTrendingCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Show the most liked songs and writers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := app.Setup(cmd.Context(), opts.app())
			if err != nil {
				return err
			}
			defer env.Close()

			trending, err := env.Trending(cmd.Context())
			if err != nil {
				return err
			}
			writeTrending(cmd.OutOrStdout(), trending)
			return nil
		},
	}
}

func writeItems(w io.Writer, items []browser.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No songs found")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "%s [%s]\n  %s\n", item.Title, item.Lang, item.Subtitle)
	}
}

func writeLyrics(w io.Writer, snap panel.Snapshot) {
	fmt.Fprintln(w, snap.Title)
	if snap.Song != nil {
		fmt.Fprintln(w, browser.Subtitle(*snap.Song))
	}
	doc := lyrics.Document{Lines: snap.Lines}
	for _, stanza := range doc.Stanzas() {
		fmt.Fprintln(w)
		for _, text := range stanza {
			fmt.Fprintln(w, text)
		}
	}
}

func writeTrending(w io.Writer, t remote.Trending) {
	fmt.Fprintln(w, "Top songs")
	for i, s := range t.Songs {
		fmt.Fprintf(w, "%d. %s (%d likes)\n", i+1, s.Title, s.Likes)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Top writers")
	for i, wr := range t.Writers {
		fmt.Fprintf(w, "%d. %s (%d likes)\n", i+1, wr.Name, wr.TotalLikes)
	}
}

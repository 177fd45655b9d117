package commands

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/hermes/archive"
	"github.com/hupe1980/hermes/evaluator"
	"github.com/hupe1980/hermes/featurevector"
)

func newStoreCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage vectors in the configured blob store",
	}
	cmd.AddCommand(
		newStorePutCommand(a),
		newStoreGetCommand(a),
		newStoreListCommand(a),
		newStoreRemoveCommand(a),
		newStoreNearestCommand(a),
	)
	return cmd
}

func (a *app) archive(ctx context.Context, refresh bool) (*archive.Archive, error) {
	store, err := a.cfg.OpenStore(ctx)
	if err != nil {
		return nil, err
	}
	compression, err := a.cfg.CompressionKind()
	if err != nil {
		return nil, err
	}

	opts := []archive.Option{
		archive.WithPrefix(a.cfg.Prefix),
		archive.WithCompression(compression),
		archive.WithLogger(a.logger),
		archive.WithController(a.cfg.Controller()),
	}
	if !refresh {
		return archive.New(store, opts...), nil
	}
	return archive.Open(ctx, store, opts...)
}

func parseID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", s, err)
	}
	return uint32(id), nil
}

func newStorePutCommand(a *app) *cobra.Command {
	var (
		id     uint32
		token  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "put [flags] VALUES...",
		Short: "Store a vector",
		Example: `  hermes store put --id 7 1,2.5,-3
  hermes store put --token BwAAAAIAAAAAAAAAAADwPwAAAAAAAABA`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var v *featurevector.Vector
			if token != "" {
				var err error
				if v, err = decodeToken(token, format); err != nil {
					return err
				}
				if cmd.Flags().Changed("id") {
					v.SetID(id)
				}
			} else {
				values, err := parseValues(args...)
				if err != nil {
					return err
				}
				v = featurevector.New(id, values)
			}

			arc, err := a.archive(cmd.Context(), false)
			if err != nil {
				return err
			}
			if err := arc.Save(cmd.Context(), v); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", arc.BlobName(v.ID()), humanize.IBytes(uint64(v.SerializedSize())))
			return nil
		},
	}

	cmd.Flags().Uint32Var(&id, "id", 0, "vector id")
	cmd.Flags().StringVar(&token, "token", "", "store a vector given as an encoded token")
	cmd.Flags().StringVarP(&format, "format", "f", "base64", "token format (base64|hex)")
	return cmd
}

func newStoreGetCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get [flags] ID",
		Short: "Print a stored vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			arc, err := a.archive(cmd.Context(), false)
			if err != nil {
				return err
			}
			v, err := arc.Load(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "" {
				fmt.Fprintln(out, v.String())
				return nil
			}
			c, err := textCodec(format)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, c.Encode(v.Serialize()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "print as token (base64|hex) instead of elements")
	return cmd
}

func newStoreListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List stored vector ids",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			arc, err := a.archive(cmd.Context(), true)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ids := arc.IDs()
			it := ids.Iterator()
			for it.HasNext() {
				fmt.Fprintln(out, it.Next())
			}
			fmt.Fprintf(out, "# %s vectors\n", humanize.Comma(int64(ids.GetCardinality())))
			return nil
		},
	}
}

func newStoreRemoveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID...",
		Aliases: []string{"delete"},
		Short:   "Remove stored vectors",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arc, err := a.archive(cmd.Context(), false)
			if err != nil {
				return err
			}
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				if err := arc.Delete(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", arc.BlobName(id))
			}
			return nil
		},
	}
}

func newStoreNearestCommand(a *app) *cobra.Command {
	var (
		metric string
		format string
		k      int
	)

	cmd := &cobra.Command{
		Use:   "nearest [flags] QUERY",
		Short: "Rank stored vectors by distance to a query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMetrics(metric)
			if err != nil {
				return err
			}
			if len(ms) != 1 {
				return errors.New("nearest needs a single metric")
			}
			if k < 0 {
				return fmt.Errorf("invalid --k %d: must not be negative", k)
			}
			query, err := parseVector(args[0], format)
			if err != nil {
				return err
			}

			arc, err := a.archive(cmd.Context(), true)
			if err != nil {
				return err
			}
			list, err := arc.LoadList(cmd.Context())
			if err != nil {
				return err
			}
			candidates := list.Vectors()

			dists, err := evaluator.Batch(cmd.Context(), ms[0], query, candidates,
				evaluator.WithLogger(a.logger),
				evaluator.WithConcurrency(a.cfg.Concurrency),
			)
			if err != nil {
				return err
			}

			order := make([]int, len(candidates))
			for i := range order {
				order[i] = i
			}
			slices.SortFunc(order, func(i, j int) int {
				if c := cmp.Compare(dists[i], dists[j]); c != 0 {
					return c
				}
				return cmp.Compare(candidates[i].ID(), candidates[j].ID())
			})

			out := cmd.OutOrStdout()
			for _, i := range order[:min(k, len(order))] {
				fmt.Fprintf(out, "%d\t%s\n", candidates[i].ID(), formatDistance(dists[i]))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&metric, "metric", "m", "euclidean", "distance metric")
	cmd.Flags().StringVarP(&format, "format", "f", formatList, "query format (list|base64|hex)")
	cmd.Flags().IntVar(&k, "k", 10, "number of results")
	return cmd
}

package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hupe1980/hermes/featurevector"
)

func newEncodeCommand(_ *app) *cobra.Command {
	var (
		id      uint32
		format  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "encode [flags] VALUES...",
		Short: "Serialize a feature vector to a text token",
		Example: `  hermes encode --id 7 1 2
  hermes encode --format hex 1,2,-3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args...)
			if err != nil {
				return err
			}
			c, err := textCodec(format)
			if err != nil {
				return err
			}

			v := featurevector.New(id, values)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, c.Encode(v.Serialize()))
			if verbose {
				fmt.Fprintf(out, "# %d elements, %s serialized\n", v.Len(), humanize.IBytes(uint64(v.SerializedSize())))
			}
			return nil
		},
	}

	cmd.Flags().Uint32Var(&id, "id", 0, "vector id")
	cmd.Flags().StringVarP(&format, "format", "f", "base64", "token format (base64|hex)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print size information")
	return cmd
}

func newDecodeCommand(_ *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "decode [flags] TOKEN",
		Short: "Decode a text token into a feature vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := decodeToken(args[0], format)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "base64", "token format (base64|hex)")
	return cmd
}

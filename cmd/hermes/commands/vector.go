package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/hermes/codec"
	"github.com/hupe1980/hermes/featurevector"
)

// parseValues splits a comma or whitespace separated list of numbers.
func parseValues(args ...string) ([]float64, error) {
	var values []float64
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		for _, f := range fields {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid element %q: %w", f, err)
			}
			values = append(values, x)
		}
	}
	return values, nil
}

func textCodec(format string) (codec.TextCodec, error) {
	c, ok := codec.ByName(format)
	if !ok {
		return nil, fmt.Errorf("unknown format %q (want base64 or hex)", format)
	}
	return c, nil
}

// decodeToken parses a serialized vector token.
func decodeToken(token, format string) (*featurevector.Vector, error) {
	c, err := textCodec(format)
	if err != nil {
		return nil, err
	}
	data, err := c.Decode(strings.TrimSpace(token))
	if err != nil {
		return nil, err
	}
	v := &featurevector.Vector{}
	if err := v.Deserialize(data, 0); err != nil {
		return nil, err
	}
	return v, nil
}

// formatList selects plain number lists in parseVector.
const formatList = "list"

// parseVector reads a number list when format is "list" and a token otherwise.
func parseVector(arg, format string) (*featurevector.Vector, error) {
	if format != formatList {
		return decodeToken(arg, format)
	}
	values, err := parseValues(arg)
	if err != nil {
		return nil, err
	}
	return featurevector.New(0, values), nil
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/star-e/generator-sub002/pkg/path"
)

func (c *CLI) pathCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Normalize and inspect declaration paths",
	}
	cmd.AddCommand(c.pathNormalizeCommand())
	cmd.AddCommand(c.pathInfoCommand())
	return cmd
}

func (c *CLI) pathNormalizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize [path...]",
		Short: "Print the normalized form of each path",
		Long: `Normalize removes "." segments and resolves ".." against the preceding segment.
A ".." above the root yields the empty path, printed as "".`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := path.Normalize(arg)
				if err != nil {
					return fmt.Errorf("%q: %w", arg, err)
				}
				fmt.Fprintln(c.out, displayPath(p.String()))
			}
			return nil
		},
	}
}

func (c *CLI) pathInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [path]",
		Short: "Show the projections of a path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := path.Parse(args[0])
			if v.Empty() {
				return fmt.Errorf("path must not be empty")
			}
			normalized := "invalid"
			if p, err := path.Normalize(args[0]); err == nil {
				normalized = displayPath(p.String())
			}

			var segs []string
			for s := range v.Segments() {
				segs = append(segs, strconv.Quote(s))
			}

			printKeyValue(c.out, "path", v.String())
			printKeyValue(c.out, "absolute", strconv.FormatBool(v.IsAbsolute()))
			printKeyValue(c.out, "depth", strconv.Itoa(v.Depth()))
			printKeyValue(c.out, "segments", strings.Join(segs, " "))
			printKeyValue(c.out, "name", displayPath(v.Name()))
			printKeyValue(c.out, "parent", displayPath(v.Parent().String()))
			printKeyValue(c.out, "stem", displayPath(v.Stem()))
			printKeyValue(c.out, "basename", displayPath(v.Basename()))
			printKeyValue(c.out, "extension", displayPath(v.Extension()))
			printKeyValue(c.out, "normalized", normalized)
			return nil
		},
	}
}

func displayPath(s string) string {
	if s == "" {
		return `""`
	}
	return s
}

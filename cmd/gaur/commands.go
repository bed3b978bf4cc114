package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gitlab.com/kyle_anderson/gaur/pkg/set"
	"gitlab.com/kyle_anderson/gaur/pkg/setexpr"
)

const defaultLogLevel = "info"

type app struct {
	log      *zap.Logger
	setsPath string
	logLevel string
	defs     setexpr.Definitions
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "gaur",
		Short:         "Set algebra on the command line",
		Example:       "gaur union '{1,2,3}' '{2,3,4}'",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zapcore.ParseLevel(a.logLevel)
			if err != nil {
				return fmt.Errorf("unsupported value %q for --log-level: %w", a.logLevel, err)
			}
			if a.log, err = newLogger(level); err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			return a.loadDefinitions()
		},
	}
	root.PersistentFlags().StringVar(&a.setsPath, "sets", "", "path to a yaml file mapping set names to their elements")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", defaultLogLevel, "logging level (\"debug\", \"info\", \"warn\", \"error\")")

	root.AddCommand(
		a.foldCommand("union", "Union of all sets", set.Union[string]),
		a.foldCommand("difference", "First set minus every following set", set.Difference[string]),
		a.foldCommand("intersect", "Intersection of all sets", set.Intersect[string]),
		a.testCommand("subset", "Whether the first set is a subset of the second", set.IsSubsetOf[string]),
		a.testCommand("superset", "Whether the first set is a superset of the second", set.IsSupersetOf[string]),
		a.testCommand("equal", "Whether both sets hold the same elements", func(s1, s2 *set.Set[string]) (bool, error) {
			return set.Equal(s1, s2), nil
		}),
		versionCommand(),
	)
	return root
}

func (a *app) loadDefinitions() error {
	if a.setsPath == "" {
		return nil
	}
	f, err := os.Open(a.setsPath)
	if err != nil {
		return fmt.Errorf("failed to open set definitions: %w", err)
	}
	defer f.Close()
	if a.defs, err = setexpr.LoadDefinitions(f); err != nil {
		return fmt.Errorf("failed to load %s: %w", a.setsPath, err)
	}
	a.log.Debug("loaded set definitions", zap.String("path", a.setsPath), zap.Int("count", len(a.defs)))
	return nil
}

func (a *app) resolve(operands []string) ([]*set.Set[string], error) {
	sets := make([]*set.Set[string], len(operands))
	for i, operand := range operands {
		s, err := a.defs.Resolve(operand)
		if err != nil {
			return nil, fmt.Errorf("operand %d: %w", i+1, err)
		}
		sets[i] = s
	}
	return sets, nil
}

type combinator func(s1, s2 *set.Set[string]) (*set.Set[string], error)

/* Builds a command that folds op left to right over two or more operands. */
func (a *app) foldCommand(name, short string, op combinator) *cobra.Command {
	return &cobra.Command{
		Use:   name + " SET SET [SET...]",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := a.resolve(args)
			if err != nil {
				return err
			}
			result := operands[0]
			for _, operand := range operands[1:] {
				if result, err = op(result, operand); err != nil {
					return err
				}
			}
			a.log.Debug("evaluated", zap.String("command", name), zap.Int("operands", len(operands)), zap.Int("size", result.Len()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatSorted(result))
			return err
		},
	}
}

type predicate func(s1, s2 *set.Set[string]) (bool, error)

func (a *app) testCommand(name, short string, test predicate) *cobra.Command {
	return &cobra.Command{
		Use:   name + " SET SET",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := a.resolve(args)
			if err != nil {
				return err
			}
			holds, err := test(operands[0], operands[1])
			if err != nil {
				return err
			}
			a.log.Debug("evaluated", zap.String("command", name), zap.Bool("result", holds))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), holds)
			return err
		},
	}
}

/* Renders s like Set.String, with elements sorted so that output is stable. */
func formatSorted(s *set.Set[string]) string {
	items := s.Items()
	sort.Strings(items)
	return "{" + strings.Join(items, ",") + "}"
}

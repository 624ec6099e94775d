package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-lowdash/catalog"
	"github.com/hasbyte1/go-lowdash/internal/seeded"
	"github.com/hasbyte1/go-lowdash/regex"
	"github.com/hasbyte1/go-lowdash/validate"
)

const defaultConfigPath = "~/.lowdash.yml"

// app carries the root flags and the state built from them before any
// subcommand runs.
type app struct {
	configPath string
	format     string
	logFlags   []string
	seed       string

	defaults map[string]map[string]any
	log      *logrus.Logger
	registry *catalog.Registry
}

func newRootCommand() *cobra.Command {
	application := &app{}
	rootCommand := &cobra.Command{
		Use:               "lowdash",
		Short:             "Evaluate lowdash array and string helpers over JSON values",
		PersistentPreRunE: application.setup,
	}
	rootCommand.SilenceUsage = true

	flags := rootCommand.PersistentFlags()
	flags.StringVar(&application.configPath, "config", defaultConfigPath, "path to a YAML config file")
	flags.StringVar(&application.format, "format", formatJSON, "output format: json or yaml")
	flags.StringSliceVar(&application.logFlags, "log", nil, "log level (debug, info, warn, error, fatal), json, colors or nocolors")
	flags.StringVar(&application.seed, "seed", "", "seed for reproducible shuffle and scramble")

	rootCommand.AddCommand(application.newListCommand())
	rootCommand.AddCommand(application.newCallCommand())
	rootCommand.AddCommand(application.newRegexCommand())
	return rootCommand
}

// setup merges the config file under the flags, then builds the logger and
// the registry.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	fileConfig, loadConfigError := loadConfig(a.configPath, cmd.Flags().Changed("config"))
	if loadConfigError != nil {
		return fmt.Errorf("config error: %w", loadConfigError)
	}
	if !cmd.Flags().Changed("format") && fileConfig.Format != "" {
		a.format = fileConfig.Format
	}
	if !cmd.Flags().Changed("log") {
		a.logFlags = fileConfig.Log
	}
	if !cmd.Flags().Changed("seed") {
		a.seed = fileConfig.Seed
	}
	a.defaults = fileConfig.Defaults

	if a.format != formatJSON && a.format != formatYAML {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, a.format)
	}

	a.log = logrus.New()
	a.log.SetOutput(cmd.ErrOrStderr())
	if logFlagsError := applyLogFlags(a.log, a.logFlags); logFlagsError != nil {
		return logFlagsError
	}

	options := []catalog.Option{catalog.WithLogger(a.log)}
	if a.seed != "" {
		options = append(options, catalog.WithRand(seeded.NewString(a.seed)))
		a.log.WithField("seed", a.seed).Debug("using seeded random source")
	}
	a.registry = catalog.New(options...)
	return nil
}

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the signature of every catalog function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.registry.Names() {
				function, _ := a.registry.Lookup(name)
				if _, writeError := fmt.Fprintln(cmd.OutOrStdout(), function.Signature()); writeError != nil {
					return fmt.Errorf("write signature: %w", writeError)
				}
			}
			return nil
		},
	}
}

func (a *app) newCallCommand() *cobra.Command {
	var keywordFlags []string
	var replacement string
	var selection string
	callCommand := &cobra.Command{
		Use:   "call <function> [argument...]",
		Short: "Call a catalog function; arguments are JSON, bare words are text",
		Long: "Call a catalog function. Each argument is decoded as JSON; anything that is\n" +
			"not valid JSON is passed as text. Predicate and transform parameters accept a\n" +
			"regex literal such as /^a/i: the predicate matches elements, the transform\n" +
			"replaces matches with --repl.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			function, found := a.registry.Lookup(name)
			if !found {
				return fmt.Errorf("%w: %q", catalog.ErrFunctionNotFound, name)
			}

			positional := make([]any, 0, len(args)-1)
			for _, raw := range args[1:] {
				positional = append(positional, decodeArgument(raw))
			}
			keywords, keywordsError := parseKeywords(keywordFlags)
			if keywordsError != nil {
				return keywordsError
			}
			mergeDefaults(function, positional, keywords, a.defaults[name])
			if bindError := bindCallables(function, positional, keywords, replacement); bindError != nil {
				return bindError
			}

			a.log.WithFields(logrus.Fields{"function": name, "args": len(positional), "kwargs": len(keywords)}).Debug("calling")
			result, callError := a.registry.Call(name, positional, keywords)
			if callError != nil {
				return callError
			}
			selected, selectError := selectPath(result, selection)
			if selectError != nil {
				return selectError
			}
			return writeOutput(cmd.OutOrStdout(), a.format, selected)
		},
	}
	callCommand.Flags().StringArrayVar(&keywordFlags, "kw", nil, "keyword argument as name=json (repeatable)")
	callCommand.Flags().StringVar(&replacement, "repl", "", "replacement used by regex-literal transforms")
	callCommand.Flags().StringVar(&selection, "select", "", "dot-separated path into the result, e.g. 0.name")
	return callCommand
}

func (a *app) newRegexCommand() *cobra.Command {
	regexCommand := &cobra.Command{
		Use:   "regex",
		Short: "Match and replace with /pattern/flags literals",
	}
	regexCommand.AddCommand(&cobra.Command{
		Use:   "find <pattern> <text>",
		Short: "Print the first match, or every match with the g flag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression, compileError := compilePattern(args[0])
			if compileError != nil {
				return compileError
			}
			return writeOutput(cmd.OutOrStdout(), a.format, expression.Find(args[1]))
		},
	})
	regexCommand.AddCommand(&cobra.Command{
		Use:   "replace <pattern> <text> <replacement>",
		Short: "Replace the first match, or every match with the g flag",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression, compileError := compilePattern(args[0])
			if compileError != nil {
				return compileError
			}
			return writeOutput(cmd.OutOrStdout(), a.format, expression.Replace(args[1], args[2]))
		},
	})
	return regexCommand
}

// compilePattern accepts either a /pattern/flags literal or a bare pattern.
func compilePattern(pattern string) (*regex.RegExp, error) {
	if regex.IsLiteral(pattern) {
		return regex.FromLiteral(pattern)
	}
	return regex.New(pattern, false, false)
}

func parseKeywords(keywordFlags []string) (map[string]any, error) {
	keywords := make(map[string]any, len(keywordFlags))
	for _, raw := range keywordFlags {
		name, value, found := strings.Cut(raw, "=")
		if !found || name == "" {
			return nil, fmt.Errorf("--kw %q: expected name=value: %w", raw, validate.ErrInvalidArgument)
		}
		keywords[name] = decodeArgument(value)
	}
	return keywords, nil
}

// mergeDefaults fills keyword arguments from the config file for parameters
// the command line left unset.
func mergeDefaults(function *validate.Func, positional []any, keywords map[string]any, defaults map[string]any) {
	for index, param := range function.Params() {
		if param.Variadic || index < len(positional) {
			continue
		}
		if _, set := keywords[param.Name]; set {
			continue
		}
		if value, ok := defaults[param.Name]; ok {
			keywords[param.Name] = value
		}
	}
}

// bindCallables turns regex literals supplied for predicate and transform
// parameters into functions. Other values are left for validation to judge.
func bindCallables(function *validate.Func, positional []any, keywords map[string]any, replacement string) error {
	params := function.Params()
	for index := range positional {
		if index >= len(params) || params[index].Variadic {
			break
		}
		bound, bindError := callableFor(params[index].Kind, positional[index], replacement)
		if bindError != nil {
			return fmt.Errorf("parameter %q: %w", params[index].Name, bindError)
		}
		positional[index] = bound
	}
	for _, param := range params {
		value, set := keywords[param.Name]
		if !set {
			continue
		}
		bound, bindError := callableFor(param.Kind, value, replacement)
		if bindError != nil {
			return fmt.Errorf("parameter %q: %w", param.Name, bindError)
		}
		keywords[param.Name] = bound
	}
	return nil
}

func callableFor(kind validate.Kind, value any, replacement string) (any, error) {
	if kind != validate.Predicate && kind != validate.Transform {
		return value, nil
	}
	literal, isText := value.(string)
	if !isText || !regex.IsLiteral(literal) {
		return value, nil
	}
	expression, literalError := regex.FromLiteral(literal)
	if literalError != nil {
		return nil, literalError
	}
	if kind == validate.Predicate {
		return func(element any) bool { return expression.Match(fmt.Sprint(element)) }, nil
	}
	return func(element any) any { return expression.Replace(fmt.Sprint(element), replacement) }, nil
}

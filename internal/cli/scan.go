package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/pairlex/internal/logging"
	"github.com/yaklabco/pairlex/internal/ui/pretty"
	"github.com/yaklabco/pairlex/pkg/buffer"
	"github.com/yaklabco/pairlex/pkg/config"
	"github.com/yaklabco/pairlex/pkg/langdetect"
	"github.com/yaklabco/pairlex/pkg/lexer"
)

// ErrUnmatchedFound signals that the scan completed but found unmatched
// delimiters. It carries no message worth logging; it only drives the
// exit code.
var ErrUnmatchedFound = errors.New("unmatched delimiters found")

func newScanCommand() *cobra.Command {
	var language string
	var tabWidth int
	var configPath string
	var noContext bool

	cmd := &cobra.Command{
		Use:   "scan [files...]",
		Short: "Scan files and report unmatched delimiters",
		Long: `Scan lexes each file with its language's marker tables, resolves
delimiter nesting depths across the whole file, and reports every
delimiter that could not be paired.

The language is taken from --lang if given, then from the config file's
per-extension overrides, then detected from the file name and contents.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colorMode, _ := cmd.Flags().GetString("color")

			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return err
			}
			if tabWidth > 0 {
				cfg.TabWidth = tabWidth
			}

			opts := scanOptions{
				language:    language,
				config:      cfg,
				styles:      pretty.NewStyles(pretty.IsColorEnabled(colorMode, os.Stdout)),
				width:       pretty.TerminalWidth(os.Stdout, 120),
				showContext: !noContext,
			}
			return runScan(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&language, "lang", "", "force a language for all files")
	cmd.Flags().IntVar(&tabWidth, "tab-width", 0, "tab width for indentation (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	cmd.Flags().BoolVar(&noContext, "no-context", false, "omit source context lines")

	return cmd
}

// scanOptions carries the resolved settings for one scan invocation.
type scanOptions struct {
	language    string
	config      *config.Config
	styles      *pretty.Styles
	width       int
	showContext bool
}

func runScan(cmd *cobra.Command, paths []string, opts scanOptions) error {
	logger := logging.Default()

	totalFindings := 0
	scanned := 0

	for _, path := range paths {
		findings, lines, err := scanFile(path, opts)
		if err != nil {
			return err
		}
		if lines == nil {
			logger.Warn("skipping file with unknown language", logging.FieldPath, path)
			continue
		}
		scanned++
		totalFindings += len(findings)

		if len(findings) == 0 {
			continue
		}
		cmd.Println(opts.styles.FormatFileHeader(path, len(findings)))
		for _, f := range findings {
			context := ""
			if opts.showContext && f.Line < len(lines) {
				context = lines[f.Line]
			}
			cmd.Print(opts.styles.FormatFinding(f, context, opts.width))
		}
	}

	cmd.Println(opts.styles.FormatSummary(scanned, totalFindings))

	if totalFindings > 0 {
		return ErrUnmatchedFound
	}
	return nil
}

// scanFile parses one file and collects its unmatched delimiters.
// A nil lines slice with nil error means the language is unknown and
// the file was skipped.
func scanFile(path string, opts scanOptions) ([]pretty.Finding, []string, error) {
	logger := logging.Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	language := opts.language
	if language == "" {
		language = opts.config.LanguageForExtension(filepath.Ext(path))
	}
	if language == "" {
		language = langdetect.Detect(path, content)
	}
	if language == "" {
		language = opts.config.DefaultLanguage
	}
	if language == "" {
		return nil, nil, nil
	}

	lines := splitLines(content)
	buf, err := buffer.Parse(language, uint8(opts.config.TabWidth), lines)
	if err != nil {
		if errors.Is(err, buffer.ErrUnknownLanguage) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	logger.Debug("scanned file",
		logging.FieldPath, path,
		logging.FieldLanguage, language,
		logging.FieldLines, buf.LineCount(),
	)

	var findings []pretty.Finding
	for line := 0; line < buf.LineCount(); line++ {
		for _, m := range buf.LineMatches(line) {
			if m.Sym.Class != lexer.ClassDelimiter || m.Matched() {
				continue
			}
			findings = append(findings, pretty.Finding{
				FilePath: path,
				Line:     line,
				Col:      m.Col,
				Marker:   m.Marker(),
				Kind:     m.Kind.String(),
			})
		}
	}
	return findings, lines, nil
}

// splitLines splits file content into editor-style lines: the trailing
// newline does not produce a phantom final line, and CR from CRLF
// endings is stripped.
func splitLines(content []byte) []string {
	text := strings.TrimSuffix(string(content), "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

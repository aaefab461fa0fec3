package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"speakup/generator"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <prompt>",
	Short: "Show what the analyzer extracts from a prompt",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

var clarifyCmd = &cobra.Command{
	Use:   "clarify <prompt>",
	Short: "Check whether a prompt is too vague and suggest answers",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClarify,
}

var tweakCmd = &cobra.Command{
	Use:   "tweak <kind>",
	Short: "Apply a tweak (funnier, emotional, formal, shorter, real, clean) to text from a file or stdin",
	Args:  cobra.ExactArgs(1),
	RunE:  runTweak,
}

var clarifyAnswers generator.ClarifyAnswers

var tweakFlags struct {
	file   string
	prompt string
	format string
	seed   int64
}

func init() {
	clarifyCmd.Flags().StringVar(&clarifyAnswers.Occasion, "occasion", "", "answer: occasion")
	clarifyCmd.Flags().StringVar(&clarifyAnswers.Tone, "tone", "", "answer: tone")
	clarifyCmd.Flags().StringVar(&clarifyAnswers.Relationship, "relationship", "", "answer: relationship")
	clarifyCmd.Flags().StringVar(&clarifyAnswers.Details, "details", "", "answer: details about the person")

	tweakCmd.Flags().StringVarP(&tweakFlags.file, "file", "f", "", "read text from file instead of stdin")
	tweakCmd.Flags().StringVar(&tweakFlags.prompt, "prompt", "", "original prompt, used to address the recipient")
	tweakCmd.Flags().StringVar(&tweakFlags.format, "format", string(generator.FormatMessage), "original format")
	tweakCmd.Flags().Int64Var(&tweakFlags.seed, "seed", 0, "random seed for filler selection (0 uses config)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	return printJSON(cmd.OutOrStdout(), generator.Analyze(strings.Join(args, " ")))
}

func runClarify(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")
	out := cmd.OutOrStdout()
	if clarifyAnswers != (generator.ClarifyAnswers{}) {
		req := generator.Clarify(prompt, clarifyAnswers)
		content := newGenerator(0).Generate(req)
		fmt.Fprintln(out, content.Text)
		return nil
	}
	if !generator.NeedsClarification(prompt) {
		fmt.Fprintln(out, "Prompt is specific enough.")
		return nil
	}
	s := generator.SuggestionsFor(prompt)
	fmt.Fprintln(out, "Prompt is vague. Tell us more:")
	fmt.Fprintf(out, "  occasion:     %s\n", strings.Join(s.Occasions, ", "))
	fmt.Fprintf(out, "  tone:         %s\n", strings.Join(s.Tones, ", "))
	fmt.Fprintf(out, "  relationship: %s\n", strings.Join(s.Relationships, ", "))
	return nil
}

func runTweak(cmd *cobra.Command, args []string) error {
	kind, err := generator.ParseTweakKind(args[0])
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if tweakFlags.file != "" {
		f, err := os.Open(tweakFlags.file)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", tweakFlags.file, err)
		}
		defer f.Close()
		in = f
	}
	text, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read text: %w", err)
	}

	req := generator.Request{Prompt: tweakFlags.prompt, Format: generator.Format(tweakFlags.format)}
	fmt.Fprintln(cmd.OutOrStdout(), newGenerator(tweakFlags.seed).Tweak(strings.TrimSpace(string(text)), kind, req))
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

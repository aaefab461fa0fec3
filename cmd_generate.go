package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"speakup/generator"
	"speakup/publisher"
	"speakup/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>",
	Short: "Generate content for a prompt",
	Example: `  speakup generate "Wedding toast for my daughter Emily" --tone emotional --duration 3min
  speakup generate "Apology to Mike" --format message --export html > apology.html`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

var genFlags struct {
	format, tone, duration, voice string
	culture, role                 string
	occasion, relationship        string
	name, location                string
	real, private                 bool
	seed                          int64
	export                        string
	save, speak                   bool
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genFlags.format, "format", string(generator.FormatSpeech), "speech, toast, message, letter, poem, rap, prayer, email, love-letter, apology, resignation, rejection")
	f.StringVar(&genFlags.tone, "tone", string(generator.ToneHeartfelt), "heartfelt, funny, formal, emotional, romantic, casual, motivational, religious, childlike, professional")
	f.StringVar(&genFlags.duration, "duration", string(generator.Duration2Min), "15s, 30s, 1min, 2min, 3min, 5min, short, medium, long")
	f.StringVar(&genFlags.voice, "voice", string(generator.VoiceAdultFemale), "voice used for speech export")
	f.StringVar(&genFlags.culture, "culture", "", "cultural context")
	f.StringVar(&genFlags.role, "role", "", "speak as: pet, grandma, future-self, child-self, wise-elder")
	f.StringVar(&genFlags.occasion, "occasion", "", "override the detected occasion")
	f.StringVar(&genFlags.relationship, "relationship", "", "override the detected relationship")
	f.StringVar(&genFlags.name, "name", "", "recipient name")
	f.StringVar(&genFlags.location, "location", "", "where it will be delivered")
	f.BoolVar(&genFlags.real, "real", false, "casual register")
	f.BoolVar(&genFlags.private, "private", false, "private mode: never saved")
	f.Int64Var(&genFlags.seed, "seed", 0, "random seed for filler selection (0 uses config)")
	f.StringVar(&genFlags.export, "export", "", "write an export instead of plain text: txt, md, html, ssml, json")
	f.BoolVar(&genFlags.save, "save", false, "save the result to the message store")
	f.BoolVar(&genFlags.speak, "speak", false, "play the result through the speech player (writes its SSML script)")
}

// newSpeechPlayer returns the player used by --speak.
var newSpeechPlayer = func(w io.Writer) publisher.SpeechPlayer {
	return &publisher.ScriptPlayer{W: w}
}

func requestFromFlags(prompt string) generator.Request {
	return generator.Request{
		Prompt:          prompt,
		Format:          generator.Format(genFlags.format),
		Tone:            generator.Tone(genFlags.tone),
		Duration:        generator.Duration(genFlags.duration),
		Voice:           generator.Voice(genFlags.voice),
		CulturalContext: generator.CulturalContext(genFlags.culture),
		RoleVoice:       generator.RoleVoice(genFlags.role),
		IsPrivateMode:   genFlags.private,
		RealTalk:        genFlags.real,
		Occasion:        genFlags.occasion,
		Relationship:    genFlags.relationship,
		PersonName:      genFlags.name,
		Location:        genFlags.location,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	req := requestFromFlags(strings.Join(args, " "))
	if generator.NeedsClarification(req.Prompt) {
		logger.Warn("prompt is vague; try `speakup clarify` for suggestions", zap.String("prompt", req.Prompt))
	}

	content := newGenerator(genFlags.seed).Generate(req)
	logger.Info("generated",
		zap.String("template", content.Template),
		zap.Int("words", content.WordCount),
		zap.String("estimated", content.EstimatedDuration),
	)

	out := cmd.OutOrStdout()
	switch {
	case genFlags.speak:
		player := newSpeechPlayer(out)
		if err := player.Speak(cmd.Context(), content.Text, publisher.VoiceSettingsFor(req.Voice)); err != nil {
			return fmt.Errorf("failed to speak: %w", err)
		}
	case genFlags.export != "":
		format, err := publisher.ParseFormat(genFlags.export)
		if err != nil {
			return err
		}
		doc := publisher.Document{Content: content, Request: req, CreatedAt: time.Now()}
		if err := publisher.New(logger).Export(cmd.Context(), doc, format, out); err != nil {
			return err
		}
	default:
		if content.SubjectLine != "" {
			fmt.Fprintf(out, "Subject: %s\n\n", content.SubjectLine)
		}
		fmt.Fprintln(out, content.Text)
	}

	if genFlags.save {
		return saveMessage(cmd.Context(), req, content)
	}
	return nil
}

func saveMessage(ctx context.Context, req generator.Request, content generator.Content) error {
	msg, err := store.NewMessage(req, content, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	return withStore(func(s store.Store) error {
		if err := s.Save(ctx, &msg); err != nil {
			return err
		}
		logger.Info("message saved", zap.String("id", msg.ID), zap.String("backend", cfg.Store.Backend))
		return nil
	})
}

var errEphemeralStore = errors.New(`store.backend "memory" does not outlive a CLI invocation; use "sqlite" to save messages from the command line`)

// withStore opens the configured store for the length of one command.
func withStore(fn func(store.Store) error) error {
	if cfg.Store.Backend == "" || cfg.Store.Backend == "memory" {
		return errEphemeralStore
	}
	s, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

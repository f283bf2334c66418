package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/vsariola/metronome"
	"github.com/vsariola/metronome/cmd"
	"github.com/vsariola/metronome/metro"
	"github.com/vsariola/metronome/oto"
	"github.com/vsariola/metronome/version"
	"go.uber.org/zap"
)

func main() {
	bpm := flag.Int("bpm", metro.DefaultBPM, "Tempo in beats per minute.")
	beats := flag.Int("beats", metro.DefaultMaxBeats, "Beats per measure, 0 for no accent.")
	measures := flag.Int("measures", 2, "Number of measures to play. With 0 beats per measure, the number of clicks.")
	sound := flag.String("sound", metronome.Presets[0].Name, "Click sound: "+strings.Join(metronome.PresetNames(), ", ")+".")
	strong := flag.String("strong", "", "Use a .wav file as the accented click; requires -weak.")
	weak := flag.String("weak", "", "Use a .wav file as the normal click; requires -strong.")
	fps := flag.Int("fps", 60, "Simulated frame rate; clicks are quantized to frames.")
	output := flag.String("o", "", "Write a .wav file instead of playing.")
	pcm := flag.Bool("c", false, "Convert audio to 16-bit signed PCM when writing. Float files cannot be loaded back with -strong/-weak.")
	debug := flag.Bool("debug", false, "Log debug messages.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String("metronome-render"))
		os.Exit(0)
	}
	logger, err := cmd.NewLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	if *measures < 1 {
		fmt.Fprintln(os.Stderr, "-measures must be at least 1")
		os.Exit(2)
	}

	model := metro.NewModel(metro.NewBroker(), nil, logger)
	switch {
	case *strong != "" && *weak != "":
		s, err := metronome.LoadSound(*strong)
		if err != nil {
			logger.Fatal("could not load strong click", zap.Error(err))
		}
		w, err := metronome.LoadSound(*weak)
		if err != nil {
			logger.Fatal("could not load weak click", zap.Error(err))
		}
		model.AddSounds(metro.NamedSounds{Name: "custom", Sounds: metronome.ClickSounds{Strong: s, Weak: w}})
	case *strong != "" || *weak != "":
		fmt.Fprintln(os.Stderr, "-strong and -weak must be given together")
		os.Exit(2)
	default:
		preset, ok := metronome.FindPreset(*sound)
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown sound %q, available: %s\n", *sound, strings.Join(metronome.PresetNames(), ", "))
			os.Exit(2)
		}
		model.SelectSounds(preset.Name)
	}
	model.Settings().BPM = *bpm
	model.Settings().MaxBeats = *beats
	model.Settings().Clamp()
	clicks := *measures * max(model.Settings().MaxBeats, 1)
	logger.Debug("rendering",
		zap.Any("settings", *model.Settings()),
		zap.Int("clicks", clicks),
		zap.String("sound", model.Sounds().Name))

	player := metro.NewPlayer(model.Broker(), model.Sounds().Sounds)
	renderer := metro.NewRenderer(model, player, *fps, clicks)

	if *output != "" {
		buf := renderer.RenderAll()
		f, err := os.Create(*output)
		if err != nil {
			logger.Fatal("could not create output file", zap.Error(err))
		}
		if err := buf.WriteWav(f, *pcm); err != nil {
			f.Close()
			logger.Fatal("could not write wav", zap.String("file", *output), zap.Error(err))
		}
		if err := f.Close(); err != nil {
			logger.Fatal("could not close output file", zap.Error(err))
		}
		logger.Info("wrote wav", zap.String("file", *output), zap.Float64("seconds", buf.Duration()))
		return
	}

	audioContext, err := oto.NewContext()
	if err != nil {
		logger.Fatal("could not acquire audio context", zap.Error(err))
	}
	waiter := audioContext.Play(renderer.Fill)
	if err := waiter.Wait(); err != nil {
		logger.Fatal("playback failed", zap.Error(err))
	}
}

func printUsage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Metronome renderer: plays or renders a click track without a window.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}

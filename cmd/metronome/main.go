package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"gioui.org/app"
	"github.com/vsariola/metronome"
	"github.com/vsariola/metronome/cmd"
	"github.com/vsariola/metronome/metro"
	"github.com/vsariola/metronome/metro/gioui"
	"github.com/vsariola/metronome/oto"
	"github.com/vsariola/metronome/version"
	"go.uber.org/zap"
)

var cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
var bpm = flag.Int("bpm", metro.DefaultBPM, "initial tempo in beats per minute")
var beats = flag.Int("beats", metro.DefaultMaxBeats, "initial beats per measure, 0 for no accent")
var play = flag.Bool("play", false, "start playing immediately")
var sound = flag.String("sound", "", "select click sound by name")
var midiOutput = flag.String("midi-output", "", "send clicks to the MIDI output matching device name prefix")
var debug = flag.Bool("debug", false, "log debug messages")
var versionFlag = flag.Bool("v", false, "print version")

func main() {
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.String("metronome"))
		os.Exit(0)
	}
	logger, err := cmd.NewLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	var f *os.File
	if *cpuprofile != "" {
		if f, err = os.Create(*cpuprofile); err != nil {
			logger.Fatal("could not create CPU profile", zap.Error(err))
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal("could not start CPU profile", zap.Error(err))
		}
	}
	audioContext, err := oto.NewContext()
	if err != nil {
		logger.Fatal("could not acquire audio context", zap.Error(err))
	}
	broker := metro.NewBroker()
	midiContext := cmd.NewMidiContext()
	model := metro.NewModel(broker, midiContext, logger)
	player := metro.NewPlayer(broker, model.Sounds().Sounds)
	ui := gioui.NewMetronome(model)
	// flags override the preferences
	if isFlagPassed("bpm") {
		model.Settings().BPM = *bpm
	}
	if isFlagPassed("beats") {
		model.Settings().MaxBeats = *beats
	}
	model.Settings().Play = *play
	if *sound != "" && !model.SelectSounds(*sound) {
		logger.Warn("unknown sound", zap.String("sound", *sound), zap.Strings("available", model.SoundNames()))
	}
	if *midiOutput != "" {
		if d, ok := metro.FindMIDIDeviceByPrefix(midiContext, *midiOutput); ok {
			model.OpenMIDIOutput(d)
		} else {
			logger.Warn("no MIDI output found", zap.String("prefix", *midiOutput))
		}
	}
	logger.Debug("starting", zap.String("version", version.VersionOrHash), zap.Any("settings", *model.Settings()))

	audioCloser := audioContext.Play(func(buf metronome.AudioBuffer) error {
		player.Process(buf)
		return nil
	})

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go cmd.ForwardSignals(signals, broker, logger)

	go ui.Main()
	go func() {
		<-broker.FinishedGUI
		audioCloser.Close()
		if *cpuprofile != "" {
			pprof.StopCPUProfile()
			f.Close()
		}
		logger.Sync()
		os.Exit(0)
	}()
	app.Main()
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

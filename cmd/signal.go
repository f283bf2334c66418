package cmd

import (
	"os"

	"github.com/vsariola/metronome/metro"
	"go.uber.org/zap"
)

// ForwardSignals asks the GUI to close for every signal received, until
// signals is closed. Repeated signals never block.
func ForwardSignals(signals <-chan os.Signal, broker *metro.Broker, logger *zap.Logger) {
	for sig := range signals {
		logger.Info("closing on signal", zap.Stringer("signal", sig))
		metro.TrySend(broker.CloseGUI, struct{}{})
	}
}

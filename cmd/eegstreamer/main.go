// Command eegstreamer replays a recorded EEG session to a Kafka broker at
// sampling rate and renders remote classification results to the console.
//
// Usage:
//
//	eegstreamer [flags] <config.yaml> <recording.csv>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/neuroline/eegstream/pkg/builder"
	"github.com/spf13/pflag"
)

const version = "1.0.1"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "eegstreamer:", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("eegstreamer", pflag.ContinueOnError)
	id := flags.String("id", "", "streamer identifier override")
	verbose := flags.BoolP("verbose", "v", false, "enable verbose mode")
	showVersion := flags.BoolP("version", "V", false, "show program version")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eegstreamer [flags] <config.yaml> <recording.csv>\n\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}
	if *showVersion {
		fmt.Println(version)
		return nil
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return fmt.Errorf("expected a config file and a recording file")
	}

	cfg, err := builder.LoadConfig(flags.Arg(0))
	if err != nil {
		return err
	}

	sessionID := cfg.Streamer.ID
	if *id != "" {
		sessionID = *id
	}
	sessionID = strings.ReplaceAll(sessionID, " ", "_")

	level := cfg.Logging.Level
	if *verbose {
		level = "debug"
	}
	logger := builder.NewLogger(
		builder.LoggerWithLevel(level),
		builder.LoggerWithDevelopment(cfg.Logging.Development),
		builder.LoggerWithFields(map[string]interface{}{"session_id": sessionID}),
	)
	defer logger.Flush()

	recording, err := builder.LoadRecording(flags.Arg(1))
	if err != nil {
		return err
	}
	recording.Tile(cfg.Data.TileCount)
	if recording.Channels() != cfg.Streamer.Channels {
		logger.Warn(
			"Recording channel count differs from configuration",
			"recording_channels", recording.Channels(),
			"configured_channels", cfg.Streamer.Channels,
		)
	}

	telemetry := builder.NewMonitor(
		builder.MonitorWithLogger(logger),
	)

	bus := builder.NewKafkaBusClient(
		builder.KafkaClientWithBusDeps(builder.BusDeps{Brokers: cfg.Broker.Addresses}),
		builder.KafkaClientWithTopics(cfg.Broker.SampleTopic, cfg.Broker.ResultTopic),
		builder.KafkaClientWithGroupID(cfg.GroupID()),
		builder.KafkaClientWithLogger(logger),
		builder.KafkaClientWithMonitor(telemetry),
	)

	pace := builder.NewPacer(
		builder.PacerWithTargetInterval(cfg.Streamer.TargetInterval),
		builder.PacerWithSamplingRate(cfg.Streamer.SamplingRate),
		builder.PacerWithDampening(cfg.Streamer.Dampening),
		builder.PacerWithLogger(logger),
		builder.PacerWithMonitor(telemetry),
	)

	stream := builder.NewEEGStreamer(
		builder.StreamerWithBus(bus),
		builder.StreamerWithSource(recording),
		builder.StreamerWithPacer(pace),
		builder.StreamerWithRenderer(builder.NewConsole(os.Stdout)),
		builder.StreamerWithSessionID(sessionID),
		builder.StreamerWithMontage(cfg.Streamer.Montage),
		builder.StreamerWithSampleTopic(cfg.Broker.SampleTopic),
		builder.StreamerWithMaxStreamDuration(cfg.Streamer.MaxStreamDuration),
		builder.StreamerWithSamplingRate(cfg.Streamer.SamplingRate),
		builder.StreamerWithFlushInterval(cfg.Streamer.FlushInterval),
		builder.StreamerWithListenInterval(cfg.Streamer.ListenInterval),
		builder.StreamerWithLogger(logger),
		builder.StreamerWithMonitor(telemetry),
	)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info("Shutdown signal received")
		stream.Stop()
	}()

	return stream.Start(context.Background())
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nrftimer/host/monitor"
	"nrftimer/host/serial"
	"nrftimer/protocol"
)

var (
	configPath = flag.String("config", "", "YAML configuration file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config, ignored for USB CDC)")
	record     = flag.String("record", "", "Write snapshots to this CBOR file (overrides config)")
	logLevel   = flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	jsonLogs   = flag.Bool("json", false, "Log as JSON")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*monitor.Config, error) {
	cfg := monitor.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = monitor.LoadConfig(*configPath); err != nil {
			return nil, err
		}
	}
	if *device != "" {
		cfg.Serial.Device = *device
	}
	if *baud != 0 {
		cfg.Serial.Baud = *baud
	}
	if *record != "" {
		cfg.Record = *record
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *jsonLogs {
		cfg.LogJSON = true
	}
	return cfg, cfg.Validate()
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, _ := monitor.ParseLevel(cfg.LogLevel)
	monitor.SetLogLevel(level)
	monitor.SetLogOutput(os.Stderr, cfg.LogJSON)
	log := monitor.Logger(monitor.ComponentSerial)

	port, err := serial.Open(&cfg.Serial)
	if err != nil {
		return err
	}
	defer port.Close()
	if err := port.Flush(); err != nil {
		log.Warn("flush failed", "err", err)
	}
	log.Info("connected", "device", cfg.Serial.Device, "baud", cfg.Serial.Baud)

	opts := monitor.Options{Follow: true, Buffer: cfg.Buffer}
	if cfg.Record != "" {
		f, err := os.Create(cfg.Record)
		if err != nil {
			return fmt.Errorf("create recording: %w", err)
		}
		defer f.Close()
		opts.Recorder = monitor.NewRecorder(f)
		monitor.Logger(monitor.ComponentRecorder).Info("recording", "path", cfg.Record, "session", opts.Recorder.Session())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := monitor.New(port, opts)
	errc := make(chan error, 1)
	go func() { errc <- m.Run(ctx) }()

	for s := range m.Snapshots() {
		printSnapshot(s)
	}

	st := m.Stats()
	log.Info("done", "frames", st.Frames, "snapshots", st.Snapshots, "dropped", st.Dropped, "missed", st.Missed)

	if err := <-errc; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printSnapshot(s protocol.Snapshot) {
	state := "stopped"
	if s.Running {
		state = "running"
	}
	fmt.Printf("[%10d] TIMER%d %-7s %2d-bit %s", s.Time, s.Timer, s.Mode, s.Width, state)
	if f := s.Frequency(); f != 0 {
		fmt.Printf(" %d Hz", f)
	}
	w := int(s.Channels)
	fmt.Printf(" irq=%0*b pending=%0*b", w, s.Interrupts, w, s.Pending)
	for n := 0; n < int(s.Channels); n++ {
		fmt.Printf(" cc%d=%d", n, s.Compare[n])
	}
	fmt.Println()
}

// Package main provides the Soma SNN Framework CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/soma-ml/soma/backend/cpu"
	"github.com/soma-ml/soma/snn"
	"github.com/soma-ml/soma/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Soma SNN Framework %s\n", version)
			return
		case "simulate":
			if err := simulate(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Soma SNN Framework - Spiking Neural Networks for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version     Show version")
	fmt.Println("  simulate    Run a LIF neuron simulation on random input")
	fmt.Println("")
	fmt.Println("Coming soon: train, benchmark")
}

// simulate runs a batch of LIF neurons over random input and reports the
// firing rate per time step.
func simulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	steps := fs.Int("steps", 16, "Number of simulation time steps")
	batch := fs.Int("batch", 8, "Number of neurons simulated in parallel")
	tauM := fs.Float64("tau", 2.0, "Membrane time constant")
	threshold := fs.Float64("threshold", 1.0, "Firing threshold")
	if err := fs.Parse(args); err != nil {
		return err
	}

	backend := cpu.New()
	layer := snn.NewLIF(snn.LIFConfig{
		TauM:       *tauM,
		UThreshold: *threshold,
	}, backend)

	input := tensor.Rand[float32](tensor.Shape{*steps, *batch}, backend)
	spikes, err := layer.Forward(input)
	if err != nil {
		return err
	}

	fmt.Printf("LIF simulation: %d steps, %d neurons, tau_m=%.2f, threshold=%.2f\n\n",
		*steps, *batch, *tauM, *threshold)

	total := 0
	for t := 0; t < *steps; t++ {
		fired := 0
		for _, s := range spikes.Index(t).Data() {
			if s != 0 {
				fired++
			}
		}
		total += fired
		fmt.Printf("  t=%2d  rate=%.2f  %s\n", t, float64(fired)/float64(*batch), spikeBar(fired))
	}
	fmt.Printf("\nMean firing rate: %.3f\n", float64(total)/float64(*steps**batch))
	return nil
}

func spikeBar(fired int) string {
	bar := make([]byte, fired)
	for i := range bar {
		bar[i] = '|'
	}
	return string(bar)
}

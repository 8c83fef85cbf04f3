package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/is386/GoInvaders/i8080Invaders"
)

func main() {
	rom := flag.String("rom", "roms/invaders.rom", "path to the invaders rom image")
	debug := flag.Bool("debug", false, "print the cpu state before each instruction")
	mute := flag.Bool("mute", false, "disable cabinet sound")
	flag.Parse()

	data, err := os.ReadFile(*rom)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	im, err := i8080Invaders.NewInvadersMachine(data, *debug, *mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := im.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

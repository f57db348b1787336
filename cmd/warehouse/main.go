package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"warehouse/internal/config"
	"warehouse/internal/warehouse"
)

func main() {
	layout := flag.String("layout", "", "warehouse layout file (default: empty floor from env with one robot at origin)")
	flag.Parse()
	if flag.NArg() < 1 {
		log.Fatalf("usage: %s [-layout file] <script file>", os.Args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var w *warehouse.Warehouse
	if *layout != "" {
		w, err = warehouse.LoadLayout(*layout)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		w = warehouse.New(cfg.Width, cfg.Height)
		if _, err := w.CreateRobotAtOrigin(); err != nil {
			log.Fatal(err)
		}
	}

	// load the command script from disk
	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		cmds := strings.TrimSpace(sc.Text())
		if cmds == "" {
			continue
		}
		if err := w.MoveAll(cmds); err != nil {
			log.Fatalf("line %d: %v", line, err)
		}
		if cfg.Render {
			fmt.Print("\033[H\033[2J")
			if err := w.Render(os.Stdout); err != nil {
				log.Fatal(err)
			}
			time.Sleep(cfg.FrameDelay)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}

	for i, r := range w.Robots() {
		fmt.Printf("Robot %d final position: %v\n", i, r)
	}
	fmt.Printf("Crates: %v\n", w.Crates())
}

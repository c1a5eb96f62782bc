// Command greenthreads runs a few green threads that count and yield,
// printing a trace of what runs when.
//
// With -s, it waits for a key press on the terminal before every context
// switch, so the round robin can be followed one step at a time.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	tty "github.com/mattn/go-tty"

	"github.com/b97tsk/green"
)

var (
	tasksFlag   = flag.Int("n", green.DefaultCapacity, "number of green threads to spawn")
	stepFlag    = flag.Bool("s", false, "wait for a key press before every context switch")
	verboseFlag = flag.Bool("v", false, "log runtime events to stderr")
)

func main() {
	flag.Parse()

	if *tasksFlag < 0 {
		log.Fatalf("invalid number of green threads: %d", *tasksFlag)
	}

	var opts []green.Option

	if *verboseFlag {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, green.WithLogger(slog.New(h)))
	}

	if *stepFlag {
		t, err := tty.Open()
		if err != nil {
			log.Fatalf("opening terminal: %v", err)
		}
		defer t.Close()
		opts = append(opts, green.WithSwitchHook(stepper(t)))
	}

	rt := green.New(*tasksFlag, opts...)
	rt.Init()

	finished := 0

	for id := 1; id <= *tasksFlag; id++ {
		rt.Spawn(func() {
			count(id)
			finished++
		})
	}

	rt.Run()

	fmt.Println("All threads finished!")
	fmt.Printf("%d of %d tasks completed\n", finished, *tasksFlag)
}

func count(id int) {
	fmt.Printf("TASK %d STARTING\n", id)
	for i := range 4 * id {
		fmt.Printf("task: %d counter: %d\n", id, i)
		green.Yield()
	}
	fmt.Printf("TASK %d FINISHED\n", id)
}

// stepper returns a switch hook that blocks on the terminal until a key is
// pressed. Pressing q turns stepping off.
func stepper(t *tty.TTY) func(from, to int) {
	on := true
	return func(from, to int) {
		if !on {
			return
		}
		fmt.Fprintf(t.Output(), "-- switch %d -> %d (any key, q to run freely) ", from, to)
		r, err := t.ReadRune()
		fmt.Fprintln(t.Output())
		if err != nil || r == 'q' {
			on = false
		}
	}
}

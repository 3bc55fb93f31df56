// Command main walks through the core channel disciplines: bounded
// backpressure, unbounded buffering, the single-handle binding, and a
// detached task that never touches a channel.
package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/baxromumarov/tasked"
	"github.com/baxromumarov/tasked/pipe"
)

var log = logrus.New()

func main() {
	boundedDemo()
	unboundedDemo()
	singleHandleDemo()
	detachedDemo()
}

// boundedDemo streams three values through a capacity-2 channel; the
// third send waits for the first receive.
func boundedDemo() {
	log.Info("bounded channel, capacity 2")

	sender, receiver, err := pipe.New[int](2)
	if err != nil {
		log.WithError(err).Fatal("create channel")
	}

	tasked.Spawn(context.Background(), "producer", func(ctx context.Context) error {
		for _, v := range []int{1, 2, 3} {
			if err := sender.Send(v); err != nil {
				return err
			}
			fmt.Printf("<- %d\n", v)
		}
		sender.Close()
		return nil
	})

	for {
		v, ok := receiver.Recv()
		if !ok {
			break
		}
		fmt.Printf("%d <-\n", v)
	}

	st := receiver.Stats()
	log.WithFields(logrus.Fields{
		"sent":     st.Sent,
		"received": st.Received,
	}).Info("bounded done")
}

// unboundedDemo shows that without a capacity the producer finishes all
// sends before the consumer reads anything.
func unboundedDemo() {
	log.Info("unbounded channel")

	sender, receiver := pipe.NewUnbounded[int]()
	for _, v := range []int{1, 2, 3} {
		if err := sender.Send(v); err != nil {
			log.WithError(err).Fatal("send")
		}
	}
	sender.Close()

	for {
		v, ok := receiver.Recv()
		if !ok {
			break
		}
		fmt.Printf("%d <-\n", v)
	}
}

// singleHandleDemo passes one value through a Chan captured by a
// spawned producer.
func singleHandleDemo() {
	log.Info("single-handle channel")

	ch := pipe.NewUnboundedChan[int]()
	tasked.Spawn(context.Background(), "producer", func(ctx context.Context) error {
		return ch.Send(42)
	})

	v, _ := ch.Recv()
	fmt.Println(v)
}

// detachedDemo spawns a task that only prints; the caller does not wait
// and the two lines may appear in either order.
func detachedDemo() {
	log.Info("detached task")

	task := tasked.Spawn(context.Background(), "greeter", func(ctx context.Context) error {
		fmt.Println(42)
		return nil
	})

	fmt.Println("done")
	<-task.Done()
}

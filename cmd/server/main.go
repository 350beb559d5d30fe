// Command server runs the membership request API.
//
// Usage:
//
//	server [-env]
//
// With -env it prints the environment variables it reads and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/accessgraph-backend/internal/app"
	"github.com/heartmarshall/accessgraph-backend/internal/config"
)

func main() {
	describe := flag.Bool("env", false, "print the environment variables the server reads and exit")
	flag.Parse()

	if *describe {
		text, err := config.Describe()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(text)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
